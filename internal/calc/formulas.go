// Package calc implements the metric calculation engine: pure formulas over
// a property record, required-field validation, sanity policy checks and the
// orchestrating Engine.
//
// Every formula follows the same contract: it returns a value when the
// inputs it needs are present and the result is finite, and nil otherwise.
// Missing data is an ordinary case, not an error. Results are not rounded;
// rounding is a presentation concern.
package calc

import (
	"math"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

// ratio guards a division: nil unless denom is positive and the quotient is
// finite.
func ratio(num, denom float64) *float64 {
	if denom <= 0 {
		return nil
	}
	v := num / denom
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func pct(num, denom float64) *float64 {
	r := ratio(num, denom)
	if r == nil {
		return nil
	}
	v := *r * 100
	return &v
}

// CapRate returns NOI / purchase price as a percentage.
func CapRate(p *model.PropertyData) *float64 {
	if p.CurrentNOI == nil || p.PurchasePrice == nil {
		return nil
	}
	return pct(*p.CurrentNOI, *p.PurchasePrice)
}

// CashOnCash returns annual cash flow / total investment as a percentage.
func CashOnCash(p *model.PropertyData) *float64 {
	if p.AnnualCashFlow == nil || p.TotalInvestment == nil {
		return nil
	}
	return pct(*p.AnnualCashFlow, *p.TotalInvestment)
}

// AnnualDebtService returns the explicit annual debt service when given,
// otherwise the monthly-amortized payment total derived from loan amount,
// interest rate and term.
func AnnualDebtService(p *model.PropertyData) *float64 {
	if p.AnnualDebtService != nil {
		v := *p.AnnualDebtService
		return &v
	}
	if p.LoanAmount == nil || p.InterestRate == nil || p.LoanTerm == nil {
		return nil
	}
	loan, rate, term := *p.LoanAmount, *p.InterestRate, *p.LoanTerm
	if loan <= 0 || term <= 0 || rate < 0 {
		return nil
	}
	n := term * 12
	if rate == 0 {
		v := loan / term
		return &v
	}
	r := rate / 100 / 12
	pmt := loan * r / (1 - math.Pow(1+r, -n))
	v := pmt * 12
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// DSCR returns NOI / annual debt service. Zero debt service means the metric
// is unavailable, never infinity.
func DSCR(p *model.PropertyData) *float64 {
	ads := AnnualDebtService(p)
	if p.CurrentNOI == nil || ads == nil {
		return nil
	}
	return ratio(*p.CurrentNOI, *ads)
}

// LTV returns loan amount / purchase price as a percentage. Values over the
// policy maximum are kept and flagged by the sanity check, not clamped here.
func LTV(p *model.PropertyData) *float64 {
	if p.LoanAmount == nil || p.PurchasePrice == nil {
		return nil
	}
	return pct(*p.LoanAmount, *p.PurchasePrice)
}

// GRM returns purchase price / gross annual income.
func GRM(p *model.PropertyData) *float64 {
	if p.PurchasePrice == nil || p.GrossIncome == nil {
		return nil
	}
	return ratio(*p.PurchasePrice, *p.GrossIncome)
}

// DebtYield returns NOI / loan amount as a percentage.
func DebtYield(p *model.PropertyData) *float64 {
	if p.CurrentNOI == nil || p.LoanAmount == nil {
		return nil
	}
	return pct(*p.CurrentNOI, *p.LoanAmount)
}

// LoanConstant returns annual debt service / loan amount as a percentage.
func LoanConstant(p *model.PropertyData) *float64 {
	ads := AnnualDebtService(p)
	if ads == nil || p.LoanAmount == nil {
		return nil
	}
	return pct(*ads, *p.LoanAmount)
}

// PricePerSF returns purchase price / square footage.
func PricePerSF(p *model.PropertyData) *float64 {
	if p.PurchasePrice == nil || p.SquareFootage == nil {
		return nil
	}
	return ratio(*p.PurchasePrice, *p.SquareFootage)
}

// PricePerUnit returns purchase price / number of units.
func PricePerUnit(p *model.PropertyData) *float64 {
	if p.PurchasePrice == nil || p.NumberOfUnits == nil {
		return nil
	}
	return ratio(*p.PurchasePrice, float64(*p.NumberOfUnits))
}

// OperatingExpenseRatio returns operating expenses / gross income as a
// percentage.
func OperatingExpenseRatio(p *model.PropertyData) *float64 {
	if p.OperatingExpenses == nil || p.GrossIncome == nil {
		return nil
	}
	return pct(*p.OperatingExpenses, *p.GrossIncome)
}

// BreakEvenOccupancy returns (operating expenses + annual debt service) /
// gross income as a percentage.
func BreakEvenOccupancy(p *model.PropertyData) *float64 {
	ads := AnnualDebtService(p)
	if p.OperatingExpenses == nil || ads == nil || p.GrossIncome == nil {
		return nil
	}
	return pct(*p.OperatingExpenses+*ads, *p.GrossIncome)
}

// EffectiveGrossIncome returns gross income net of vacancy. A missing
// vacancy rate is treated as fully occupied.
func EffectiveGrossIncome(p *model.PropertyData) *float64 {
	if p.GrossIncome == nil {
		return nil
	}
	vac := 0.0
	if p.VacancyRate != nil {
		vac = *p.VacancyRate
	}
	if vac < 0 || vac > 100 {
		return nil
	}
	v := *p.GrossIncome * (1 - vac/100)
	return &v
}
