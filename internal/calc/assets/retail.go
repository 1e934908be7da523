package assets

import (
	"time"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

// AnalyzeRetail builds the retail tenancy report: sales productivity,
// occupancy cost, anchor exposure and co-tenancy risk.
func AnalyzeRetail(tenants []model.RetailTenant, asOf time.Time) *model.RetailTenantAnalysis {
	if len(tenants) == 0 {
		return nil
	}

	var totalRent, totalSales, salesSF, leasedSF, anchorSF, weightedYears float64
	anchors := 0
	for _, t := range tenants {
		if t.AnnualRent <= 0 {
			continue
		}
		totalRent += t.AnnualRent
		leasedSF += t.SquareFeet
		weightedYears += t.AnnualRent * yearsUntil(asOf, t.LeaseExpiry)
		if t.AnnualSales > 0 {
			totalSales += t.AnnualSales
			salesSF += t.SquareFeet
		}
		if t.Anchor {
			anchors++
			anchorSF += t.SquareFeet
		}
	}
	if totalRent == 0 {
		return nil
	}

	a := &model.RetailTenantAnalysis{
		TenantCount: len(tenants),
		WALT:        weightedYears / totalRent,
		AnchorCount: anchors,
	}
	if salesSF > 0 {
		a.SalesPerSF = totalSales / salesSF
	}
	if totalSales > 0 {
		a.OccupancyCostRatio = totalRent / totalSales * 100
	}
	if leasedSF > 0 {
		a.AnchorSFShare = anchorSF / leasedSF * 100
	}

	// Co-tenancy exposure: a single anchor holding most of the center's SF
	// means its departure likely triggers co-tenancy clauses.
	switch {
	case anchors == 1 && a.AnchorSFShare > 50:
		a.CoTenancyRisk = "high"
	case anchors >= 1 && a.AnchorSFShare > 30:
		a.CoTenancyRisk = "moderate"
	default:
		a.CoTenancyRisk = "low"
	}

	switch {
	case a.OccupancyCostRatio > 0 && a.OccupancyCostRatio < 10 && a.WALT >= 4:
		a.Assessment = "strong: healthy occupancy cost and lease term"
	case a.OccupancyCostRatio >= 15:
		a.Assessment = "watch: occupancy cost ratio leaves tenants little margin"
	default:
		a.Assessment = "stable: tenancy metrics within typical retail ranges"
	}
	return a
}
