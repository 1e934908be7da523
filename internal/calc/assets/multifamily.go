package assets

import "github.com/Mjmurray03/smart-deal-analyzer-sub001/model"

// AnalyzeMultifamily builds the unit-economics report from the unit mix.
// marketAvgRent (USD/month per unit) positions the property against comps;
// nil means position is reported as unknown.
func AnalyzeMultifamily(mix []model.UnitGroup, marketAvgRent *float64) *model.MultifamilyAnalysis {
	if len(mix) == 0 {
		return nil
	}

	var totalUnits, occupied int
	var monthlyRevenue, rentSF float64
	var sfUnits int
	for _, g := range mix {
		if g.Units <= 0 {
			continue
		}
		totalUnits += g.Units
		occ := g.OccupiedUnits
		if occ > g.Units {
			occ = g.Units
		}
		occupied += occ
		monthlyRevenue += float64(occ) * g.AvgMonthlyRent
		if g.AvgSquareFeet > 0 {
			rentSF += g.AvgMonthlyRent / g.AvgSquareFeet * float64(g.Units)
			sfUnits += g.Units
		}
	}
	if totalUnits == 0 {
		return nil
	}

	a := &model.MultifamilyAnalysis{
		TotalUnits:        totalUnits,
		AnnualRevPerUnit:  monthlyRevenue * 12 / float64(totalUnits),
		EconomicOccupancy: float64(occupied) / float64(totalUnits) * 100,
	}
	if sfUnits > 0 {
		a.AvgRentPerSF = rentSF / float64(sfUnits)
	}

	a.MarketPosition = "unknown"
	if marketAvgRent != nil && *marketAvgRent > 0 && occupied > 0 {
		avgRent := monthlyRevenue / float64(occupied)
		switch {
		case avgRent > *marketAvgRent*1.05:
			a.MarketPosition = "above market"
		case avgRent < *marketAvgRent*0.95:
			a.MarketPosition = "below market"
		default:
			a.MarketPosition = "at market"
		}
	}
	return a
}
