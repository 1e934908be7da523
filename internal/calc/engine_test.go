package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/packages"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/utils"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

func fixedClockEngine() *Engine {
	e := NewEngine(DefaultPolicy(), nil)
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return asOf }
	return e
}

func fullOfficeProperty() *model.PropertyData {
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &model.PropertyData{
		PurchasePrice:   utils.F64Ptr(10_000_000),
		CurrentNOI:      utils.F64Ptr(700_000),
		GrossIncome:     utils.F64Ptr(1_000_000),
		SquareFootage:   utils.F64Ptr(50_000),
		LoanAmount:      utils.F64Ptr(6_500_000),
		InterestRate:    utils.F64Ptr(6),
		LoanTerm:        utils.F64Ptr(30),
		AnnualCashFlow:  utils.F64Ptr(230_000),
		TotalInvestment: utils.F64Ptr(3_500_000),
		HoldPeriod:      utils.F64Ptr(5),
		ExitCapRate:     utils.F64Ptr(7),
		OfficeTenants: []model.OfficeTenant{
			{Name: "Acme Legal", SquareFeet: 30_000, AnnualRent: 600_000, LeaseExpiry: asOf.AddDate(6, 0, 0), CreditRating: "BBB"},
			{Name: "Beta Insurance", SquareFeet: 20_000, AnnualRent: 400_000, LeaseExpiry: asOf.AddDate(3, 0, 0), CreditRating: "A"},
		},
	}
}

func TestAnalyzeBasicPackage(t *testing.T) {
	e := fixedClockEngine()
	p := &model.PropertyData{
		PurchasePrice: utils.F64Ptr(1_000_000),
		CurrentNOI:    utils.F64Ptr(70_000),
		GrossIncome:   utils.F64Ptr(120_000),
		SquareFootage: utils.F64Ptr(10_000),
	}

	res := e.Analyze("office-basic", model.Office, p)
	require.True(t, res.Success)
	require.Empty(t, res.ValidationErrors)
	require.NotNil(t, res.Metrics.CapRate)
	require.InDelta(t, 7.0, *res.Metrics.CapRate, 1e-9)
	require.NotNil(t, res.Metrics.GRM)
	require.NotNil(t, res.Metrics.PricePerSF)
}

func TestAnalyzeUnknownPackage(t *testing.T) {
	e := fixedClockEngine()
	res := e.Analyze("no-such-package", model.Office, &model.PropertyData{})
	require.False(t, res.Success)
	require.Contains(t, res.Error, "package not found")
}

func TestAnalyzePackageTypeMismatch(t *testing.T) {
	e := fixedClockEngine()
	res := e.Analyze("retail-basic", model.Office, &model.PropertyData{})
	require.False(t, res.Success)
	require.Contains(t, res.Error, "package not found")
}

func TestAnalyzeInvalidPropertyType(t *testing.T) {
	e := fixedClockEngine()
	res := e.Analyze("office-basic", model.PropertyType("warehouse"), &model.PropertyData{})
	require.False(t, res.Success)
	require.Contains(t, res.Error, "invalid property type")
}

func TestAnalyzeMissingRequiredField(t *testing.T) {
	e := fixedClockEngine()
	// Financing package without NOI: DSCR inputs incomplete, must be rejected.
	p := &model.PropertyData{
		PurchasePrice: utils.F64Ptr(1_500_000),
		GrossIncome:   utils.F64Ptr(200_000),
		LoanAmount:    utils.F64Ptr(1_000_000),
		InterestRate:  utils.F64Ptr(6),
		LoanTerm:      utils.F64Ptr(30),
	}

	res := e.Analyze("office-financing", model.Office, p)
	require.False(t, res.Success)
	require.Contains(t, res.ValidationErrors, "currentNOI")
	require.Nil(t, res.Metrics)
}

func TestAnalyzeIdempotent(t *testing.T) {
	e := fixedClockEngine()
	p := fullOfficeProperty()

	first := e.Analyze("office-advanced", model.Office, p)
	second := e.Analyze("office-advanced", model.Office, p)

	require.True(t, first.Success)
	require.Equal(t, first, second)
}

// metricPresent reports whether the output record carries a value for id.
func metricPresent(m *model.CalculatedMetrics, id model.MetricID) bool {
	switch id {
	case model.MetricCapRate:
		return m.CapRate != nil
	case model.MetricCashOnCash:
		return m.CashOnCash != nil
	case model.MetricDSCR:
		return m.DSCR != nil
	case model.MetricLTV:
		return m.LTV != nil
	case model.MetricGRM:
		return m.GRM != nil
	case model.MetricDebtYield:
		return m.DebtYield != nil
	case model.MetricLoanConstant:
		return m.LoanConstant != nil
	case model.MetricPricePerSF:
		return m.PricePerSF != nil
	case model.MetricPricePerUnit:
		return m.PricePerUnit != nil
	case model.MetricOperatingExpenseRatio:
		return m.OperatingExpenseRatio != nil
	case model.MetricBreakEvenOccupancy:
		return m.BreakEvenOccupancy != nil
	case model.MetricEffectiveGrossIncome:
		return m.EffectiveGrossIncome != nil
	case model.MetricIRR:
		return m.IRR != nil
	case model.MetricEquityMultiple:
		return m.EquityMultiple != nil
	case model.MetricPaybackPeriod:
		return m.PaybackPeriod != nil
	case model.MetricOfficeAnalysis:
		return m.Office != nil
	case model.MetricRetailAnalysis:
		return m.Retail != nil
	case model.MetricIndustrialAnalysis:
		return m.Industrial != nil
	case model.MetricMultifamilyAnalysis:
		return m.Multifamily != nil
	case model.MetricMixedUseAnalysis:
		return m.MixedUse != nil
	}
	return false
}

func TestAnalyzeNoSilentlyDroppedMetric(t *testing.T) {
	e := fixedClockEngine()
	p := fullOfficeProperty()
	p.OfficeTenants = nil // Force the analyzer into the omitted map.

	pkg, err := packages.Lookup("office-advanced", model.Office)
	require.NoError(t, err)

	res := e.Analyze("office-advanced", model.Office, p)
	require.True(t, res.Success)

	for _, id := range pkg.IncludedMetrics {
		if metricPresent(res.Metrics, id) {
			continue
		}
		if _, explained := res.Omitted[string(id)]; !explained {
			t.Errorf("metric %s neither computed nor explained", id)
		}
	}

	require.Contains(t, res.Omitted, string(model.MetricOfficeAnalysis))
	// No expense data was supplied, so expense-driven metrics must be explained.
	require.Contains(t, res.Omitted, string(model.MetricOperatingExpenseRatio))
}

func TestAnalyzeSanityFindings(t *testing.T) {
	e := fixedClockEngine()
	p := &model.PropertyData{
		PurchasePrice: utils.F64Ptr(1_000_000),
		CurrentNOI:    utils.F64Ptr(70_000),
		GrossIncome:   utils.F64Ptr(120_000),
		LoanAmount:    utils.F64Ptr(1_200_000), // Loan above price: LTV 120%.
		InterestRate:  utils.F64Ptr(6),
		LoanTerm:      utils.F64Ptr(30),
	}

	res := e.Analyze("office-financing", model.Office, p)
	require.True(t, res.Success)
	require.NotNil(t, res.Metrics.LTV)
	require.InDelta(t, 120.0, *res.Metrics.LTV, 1e-9)
	require.NotEmpty(t, res.Errors, "LTV over 100%% must be flagged")
}

func TestAnalyzeIsolatesPanics(t *testing.T) {
	e := fixedClockEngine()
	// A nil formula dereference cannot happen through the public surface, so
	// exercise the recover path directly.
	v := e.computeScalar(model.MetricCapRate, func(*model.PropertyData) *float64 {
		panic("boom")
	}, &model.PropertyData{})
	require.Nil(t, v)
}
