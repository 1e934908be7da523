package calc

import "github.com/Mjmurray03/smart-deal-analyzer-sub001/model"

// scalarFormulas maps every scalar metric to its formula. Asset analyses are
// dispatched separately by property type in the engine.
var scalarFormulas = map[model.MetricID]func(*model.PropertyData) *float64{
	model.MetricCapRate:               CapRate,
	model.MetricCashOnCash:            CashOnCash,
	model.MetricDSCR:                  DSCR,
	model.MetricLTV:                   LTV,
	model.MetricGRM:                   GRM,
	model.MetricDebtYield:             DebtYield,
	model.MetricLoanConstant:          LoanConstant,
	model.MetricPricePerSF:            PricePerSF,
	model.MetricPricePerUnit:          PricePerUnit,
	model.MetricOperatingExpenseRatio: OperatingExpenseRatio,
	model.MetricBreakEvenOccupancy:    BreakEvenOccupancy,
	model.MetricEffectiveGrossIncome:  EffectiveGrossIncome,
	model.MetricIRR:                   IRR,
	model.MetricEquityMultiple:        EquityMultiple,
	model.MetricPaybackPeriod:         PaybackPeriod,
}

// assign writes a computed scalar into the output record.
var scalarTargets = map[model.MetricID]func(*model.CalculatedMetrics, *float64){
	model.MetricCapRate:               func(m *model.CalculatedMetrics, v *float64) { m.CapRate = v },
	model.MetricCashOnCash:            func(m *model.CalculatedMetrics, v *float64) { m.CashOnCash = v },
	model.MetricDSCR:                  func(m *model.CalculatedMetrics, v *float64) { m.DSCR = v },
	model.MetricLTV:                   func(m *model.CalculatedMetrics, v *float64) { m.LTV = v },
	model.MetricGRM:                   func(m *model.CalculatedMetrics, v *float64) { m.GRM = v },
	model.MetricDebtYield:             func(m *model.CalculatedMetrics, v *float64) { m.DebtYield = v },
	model.MetricLoanConstant:          func(m *model.CalculatedMetrics, v *float64) { m.LoanConstant = v },
	model.MetricPricePerSF:            func(m *model.CalculatedMetrics, v *float64) { m.PricePerSF = v },
	model.MetricPricePerUnit:          func(m *model.CalculatedMetrics, v *float64) { m.PricePerUnit = v },
	model.MetricOperatingExpenseRatio: func(m *model.CalculatedMetrics, v *float64) { m.OperatingExpenseRatio = v },
	model.MetricBreakEvenOccupancy:    func(m *model.CalculatedMetrics, v *float64) { m.BreakEvenOccupancy = v },
	model.MetricEffectiveGrossIncome:  func(m *model.CalculatedMetrics, v *float64) { m.EffectiveGrossIncome = v },
	model.MetricIRR:                   func(m *model.CalculatedMetrics, v *float64) { m.IRR = v },
	model.MetricEquityMultiple:        func(m *model.CalculatedMetrics, v *float64) { m.EquityMultiple = v },
	model.MetricPaybackPeriod:         func(m *model.CalculatedMetrics, v *float64) { m.PaybackPeriod = v },
}
