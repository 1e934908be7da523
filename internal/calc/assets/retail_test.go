package assets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

func TestAnalyzeRetail(t *testing.T) {
	tenants := []model.RetailTenant{
		{Name: "GroceryCo", SquareFeet: 60_000, AnnualRent: 900_000, AnnualSales: 18_000_000, LeaseExpiry: asOf.AddDate(10, 0, 0), Anchor: true},
		{Name: "Coffee Bar", SquareFeet: 10_000, AnnualRent: 400_000, AnnualSales: 4_000_000, LeaseExpiry: asOf.AddDate(4, 0, 0)},
	}
	a := AnalyzeRetail(tenants, asOf)
	require.NotNil(t, a)
	require.Equal(t, 2, a.TenantCount)
	require.Equal(t, 1, a.AnchorCount)
	require.InDelta(t, 22_000_000.0/70_000, a.SalesPerSF, 1e-6)
	require.InDelta(t, 1_300_000.0/22_000_000*100, a.OccupancyCostRatio, 1e-6)
	require.InDelta(t, 60.0/70*100, a.AnchorSFShare, 1e-6)
	// One anchor over half the leasable SF.
	require.Equal(t, "high", a.CoTenancyRisk)
}

func TestAnalyzeRetailCoTenancyTiers(t *testing.T) {
	moderate := []model.RetailTenant{
		{Name: "Anchor", SquareFeet: 40_000, AnnualRent: 500_000, LeaseExpiry: asOf.AddDate(8, 0, 0), Anchor: true},
		{Name: "Anchor2", SquareFeet: 10_000, AnnualRent: 200_000, LeaseExpiry: asOf.AddDate(6, 0, 0), Anchor: true},
		{Name: "Inline", SquareFeet: 60_000, AnnualRent: 800_000, LeaseExpiry: asOf.AddDate(3, 0, 0)},
	}
	a := AnalyzeRetail(moderate, asOf)
	require.NotNil(t, a)
	require.Equal(t, "moderate", a.CoTenancyRisk)

	low := []model.RetailTenant{
		{Name: "Shop A", SquareFeet: 2_000, AnnualRent: 80_000, LeaseExpiry: asOf.AddDate(3, 0, 0)},
		{Name: "Shop B", SquareFeet: 2_500, AnnualRent: 90_000, LeaseExpiry: asOf.AddDate(5, 0, 0)},
	}
	a = AnalyzeRetail(low, asOf)
	require.NotNil(t, a)
	require.Equal(t, "low", a.CoTenancyRisk)
}

func TestAnalyzeRetailNoSalesReported(t *testing.T) {
	tenants := []model.RetailTenant{
		{Name: "Quiet Tenant", SquareFeet: 5_000, AnnualRent: 150_000, LeaseExpiry: asOf.AddDate(5, 0, 0)},
	}
	a := AnalyzeRetail(tenants, asOf)
	require.NotNil(t, a)
	require.Equal(t, 0.0, a.SalesPerSF)
	require.Equal(t, 0.0, a.OccupancyCostRatio)
}

func TestAnalyzeRetailEmpty(t *testing.T) {
	if a := AnalyzeRetail(nil, asOf); a != nil {
		t.Error("want nil for empty tenant list")
	}
}
