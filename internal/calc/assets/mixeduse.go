package assets

import "github.com/Mjmurray03/smart-deal-analyzer-sub001/model"

// synergyPairs lists use combinations that reinforce each other;
// conflictPairs lists combinations that fight over access, noise or hours.
// Keys are ordered alphabetically.
var synergyPairs = map[[2]string]bool{
	{"office", "retail"}:      true,
	{"residential", "retail"}: true,
	{"hotel", "retail"}:       true,
	{"office", "residential"}: true,
}

var conflictPairs = map[[2]string]string{
	{"industrial", "residential"}: "industrial traffic and noise next to residential units",
	{"hotel", "residential"}:      "hotel turnover and residential quiet hours compete",
	{"industrial", "retail"}:      "truck courts and storefront access conflict",
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// AnalyzeMixedUse builds the component balance report: NOI shares,
// diversification and pairwise synergy/conflict heuristics.
func AnalyzeMixedUse(components []model.MixedUseComponent) *model.MixedUseAnalysis {
	if len(components) == 0 {
		return nil
	}

	var totalNOI, dominantNOI float64
	dominantUse := ""
	nois := make([]float64, 0, len(components))
	for _, c := range components {
		if c.NOI <= 0 {
			continue
		}
		totalNOI += c.NOI
		nois = append(nois, c.NOI)
		if c.NOI > dominantNOI {
			dominantNOI, dominantUse = c.NOI, c.Use
		}
	}
	if totalNOI == 0 {
		return nil
	}

	a := &model.MixedUseAnalysis{
		ComponentCount:  len(components),
		DominantUse:     dominantUse,
		DominantShare:   dominantNOI / totalNOI * 100,
		Diversification: 1 - herfindahl(nois),
	}

	score := 50.0
	seen := make(map[[2]string]bool)
	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			key := pairKey(components[i].Use, components[j].Use)
			if seen[key] {
				continue
			}
			seen[key] = true
			if synergyPairs[key] {
				score += 10
			}
			if reason, ok := conflictPairs[key]; ok {
				score -= 10
				a.Conflicts = append(a.Conflicts, reason)
			}
		}
	}
	a.SynergyScore = clamp(score+a.Diversification*20, 0, 100)

	switch {
	case len(a.Conflicts) > 0:
		a.Assessment = "watch: conflicting uses reduce combined value"
	case a.SynergyScore >= 65:
		a.Assessment = "strong: complementary uses with diversified income"
	default:
		a.Assessment = "stable: limited synergy but no conflicts"
	}
	return a
}
