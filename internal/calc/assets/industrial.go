package assets

import "github.com/Mjmurray03/smart-deal-analyzer-sub001/model"

// Functionality score weights. Clear height dominates because it decides
// racking density, the main driver of modern logistics rents.
const (
	weightClearHeight = 0.5
	weightLoading     = 0.3
	weightOfficeRatio = 0.2
)

func scoreClearHeight(feet float64) float64 {
	switch {
	case feet >= 36:
		return 100
	case feet >= 32:
		return 90
	case feet >= 28:
		return 75
	case feet >= 24:
		return 60
	case feet >= 20:
		return 40
	default:
		return 20
	}
}

// scoreLoading rates dock doors per 10k SF; ~1 per 10k SF is the modern
// distribution benchmark.
func scoreLoading(doors int, sf float64) float64 {
	if sf <= 0 {
		return 0
	}
	per10k := float64(doors) / (sf / 10_000)
	return clamp(per10k*100, 0, 100)
}

// scoreOfficeRatio rates the office build-out share; 5-15% is functional,
// heavy build-out is costly to convert back to warehouse.
func scoreOfficeRatio(pct float64) float64 {
	switch {
	case pct >= 5 && pct <= 15:
		return 100
	case pct < 5:
		return 80
	case pct <= 25:
		return 60
	default:
		return 30
	}
}

// AnalyzeIndustrial scores building functionality from the flat industrial
// fields. Nil when none of them were supplied.
func AnalyzeIndustrial(p *model.PropertyData) *model.IndustrialAnalysis {
	if p.ClearHeight == nil && p.DockDoors == nil && p.OfficeBuildOut == nil {
		return nil
	}

	a := &model.IndustrialAnalysis{}
	if p.ClearHeight != nil {
		a.ClearHeightScore = scoreClearHeight(*p.ClearHeight)
	}
	if p.DockDoors != nil && p.SquareFootage != nil {
		a.LoadingScore = scoreLoading(*p.DockDoors, *p.SquareFootage)
	}
	if p.OfficeBuildOut != nil {
		a.OfficeRatioScore = scoreOfficeRatio(*p.OfficeBuildOut)
	}

	a.FunctionalityScore = weightClearHeight*a.ClearHeightScore +
		weightLoading*a.LoadingScore +
		weightOfficeRatio*a.OfficeRatioScore

	switch {
	case a.FunctionalityScore >= 85:
		a.Grade = "A"
	case a.FunctionalityScore >= 65:
		a.Grade = "B"
	case a.FunctionalityScore >= 45:
		a.Grade = "C"
	default:
		a.Grade = "D"
	}
	return a
}
