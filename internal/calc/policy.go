package calc

import (
	"fmt"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

// Policy holds the sanity thresholds applied to computed results. These are
// heuristics, not business rules; operators may override them through the
// server config file.
type Policy struct {
	CapRateWarnAbove   float64 // Percent; soft warning above this.
	DSCRWarnBelow      float64 // Ratio; soft warning below this.
	LTVMax             float64 // Percent; hard error above this.
	VacancyWarnAbove   float64 // Percent; soft warning above this.
	BreakEvenWarnAbove float64 // Percent; soft warning above this.
	OpExRatioWarnAbove float64 // Percent; soft warning above this.
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{
		CapRateWarnAbove:   20,
		DSCRWarnBelow:      1.0,
		LTVMax:             100,
		VacancyWarnAbove:   25,
		BreakEvenWarnAbove: 100,
		OpExRatioWarnAbove: 80,
	}
}

// CheckSanity inspects computed metrics against the policy. Hard findings
// (physically impossible values) go to errors, atypical-but-possible values
// go to warnings. Metric values are reported, never clamped or removed.
func (pol Policy) CheckSanity(m *model.CalculatedMetrics, p *model.PropertyData) (warnings, errors []string) {
	if m.CapRate != nil {
		switch {
		case *m.CapRate < 0:
			errors = append(errors, fmt.Sprintf("cap rate %.2f%% is negative: NOI and purchase price are inconsistent", *m.CapRate))
		case *m.CapRate > pol.CapRateWarnAbove:
			warnings = append(warnings, fmt.Sprintf("cap rate %.2f%% is above the typical range (over %.0f%%): verify NOI and price", *m.CapRate, pol.CapRateWarnAbove))
		}
	}

	if m.LTV != nil && *m.LTV > pol.LTVMax {
		errors = append(errors, fmt.Sprintf("LTV %.2f%% exceeds %.0f%%: loan amount is larger than the purchase price", *m.LTV, pol.LTVMax))
	}

	if m.DSCR != nil && *m.DSCR < pol.DSCRWarnBelow {
		warnings = append(warnings, fmt.Sprintf("DSCR %.2f is below %.2f: NOI does not cover debt service", *m.DSCR, pol.DSCRWarnBelow))
	}

	if m.BreakEvenOccupancy != nil && *m.BreakEvenOccupancy > pol.BreakEvenWarnAbove {
		warnings = append(warnings, fmt.Sprintf("break-even occupancy %.1f%% exceeds %.0f%%: property cannot cover costs even fully leased", *m.BreakEvenOccupancy, pol.BreakEvenWarnAbove))
	}

	if m.OperatingExpenseRatio != nil && *m.OperatingExpenseRatio > pol.OpExRatioWarnAbove {
		warnings = append(warnings, fmt.Sprintf("operating expense ratio %.1f%% is above %.0f%%", *m.OperatingExpenseRatio, pol.OpExRatioWarnAbove))
	}

	if p.VacancyRate != nil && *p.VacancyRate > pol.VacancyWarnAbove {
		warnings = append(warnings, fmt.Sprintf("vacancy rate %.1f%% is above %.0f%%", *p.VacancyRate, pol.VacancyWarnAbove))
	}

	return warnings, errors
}
