package calc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/utils"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

func TestIRR(t *testing.T) {
	// Flat NOI bought and sold at the same cap rate: IRR equals the cap rate.
	p := model.PropertyData{
		PurchasePrice: utils.F64Ptr(1_000_000),
		CurrentNOI:    utils.F64Ptr(70_000),
		HoldPeriod:    utils.F64Ptr(5),
		ExitCapRate:   utils.F64Ptr(7),
	}
	got := IRR(&p)
	require.NotNil(t, got)
	require.InDelta(t, 7.0, *got, 0.05)
}

func TestIRRWithGrowth(t *testing.T) {
	p := model.PropertyData{
		PurchasePrice: utils.F64Ptr(1_000_000),
		CurrentNOI:    utils.F64Ptr(70_000),
		HoldPeriod:    utils.F64Ptr(5),
		ExitCapRate:   utils.F64Ptr(7),
		NOIGrowthRate: utils.F64Ptr(3),
	}
	got := IRR(&p)
	require.NotNil(t, got)
	// Growing NOI sold at the entry cap must beat the flat case.
	require.Greater(t, *got, 7.0)
	require.Less(t, *got, 20.0)
}

func TestIRRMissingInputs(t *testing.T) {
	p := model.PropertyData{
		PurchasePrice: utils.F64Ptr(1_000_000),
		CurrentNOI:    utils.F64Ptr(70_000),
	}
	if got := IRR(&p); got != nil {
		t.Errorf("want nil without hold period and exit cap, got %v", *got)
	}
}

func TestEquityMultiple(t *testing.T) {
	p := model.PropertyData{
		PurchasePrice: utils.F64Ptr(1_000_000),
		CurrentNOI:    utils.F64Ptr(70_000),
		HoldPeriod:    utils.F64Ptr(5),
		ExitCapRate:   utils.F64Ptr(7),
	}
	got := EquityMultiple(&p)
	require.NotNil(t, got)
	// 5 years of 70k plus a 1M sale over 1M equity.
	require.InDelta(t, 1.35, *got, 0.001)
}

func TestPaybackPeriod(t *testing.T) {
	p := model.PropertyData{
		TotalInvestment: utils.F64Ptr(250_000),
		AnnualCashFlow:  utils.F64Ptr(25_000),
	}
	got := PaybackPeriod(&p)
	require.NotNil(t, got)
	require.InDelta(t, 10.0, *got, 1e-9)

	negative := model.PropertyData{
		TotalInvestment: utils.F64Ptr(250_000),
		AnnualCashFlow:  utils.F64Ptr(-5_000),
	}
	if got := PaybackPeriod(&negative); got != nil {
		t.Errorf("want nil for negative cash flow, got %v", *got)
	}
}
