package calc

import "github.com/Mjmurray03/smart-deal-analyzer-sub001/model"

// fieldCheck validates one PropertyData field: present reports whether the
// field was supplied, reason returns a human-readable problem with the
// supplied value ("" when fine).
type fieldCheck struct {
	present func(*model.PropertyData) bool
	reason  func(*model.PropertyData) string
}

func positiveF64(get func(*model.PropertyData) *float64, label string) fieldCheck {
	return fieldCheck{
		present: func(p *model.PropertyData) bool { return get(p) != nil },
		reason: func(p *model.PropertyData) string {
			if v := get(p); v != nil && *v <= 0 {
				return label + " must be greater than zero"
			}
			return ""
		},
	}
}

func nonNegativeF64(get func(*model.PropertyData) *float64, label string) fieldCheck {
	return fieldCheck{
		present: func(p *model.PropertyData) bool { return get(p) != nil },
		reason: func(p *model.PropertyData) string {
			if v := get(p); v != nil && *v < 0 {
				return label + " must not be negative"
			}
			return ""
		},
	}
}

func percentF64(get func(*model.PropertyData) *float64, label string) fieldCheck {
	return fieldCheck{
		present: func(p *model.PropertyData) bool { return get(p) != nil },
		reason: func(p *model.PropertyData) string {
			if v := get(p); v != nil && (*v < 0 || *v > 100) {
				return label + " must be between 0 and 100"
			}
			return ""
		},
	}
}

// fieldRegistry maps JSON field names (the names packages use in their
// RequiredFields lists) to their checks. A package naming a field not in
// this registry is a programming error and is caught by the catalog test.
var fieldRegistry = map[string]fieldCheck{
	"purchasePrice":     positiveF64(func(p *model.PropertyData) *float64 { return p.PurchasePrice }, "purchase price"),
	"currentNOI":        nonNegativeF64(func(p *model.PropertyData) *float64 { return p.CurrentNOI }, "current NOI"),
	"grossIncome":       positiveF64(func(p *model.PropertyData) *float64 { return p.GrossIncome }, "gross income"),
	"operatingExpenses": nonNegativeF64(func(p *model.PropertyData) *float64 { return p.OperatingExpenses }, "operating expenses"),
	"annualCashFlow": {
		present: func(p *model.PropertyData) bool { return p.AnnualCashFlow != nil },
		reason:  func(p *model.PropertyData) string { return "" }, // Negative cash flow is a valid input.
	},
	"totalInvestment": positiveF64(func(p *model.PropertyData) *float64 { return p.TotalInvestment }, "total investment"),
	"loanAmount":      positiveF64(func(p *model.PropertyData) *float64 { return p.LoanAmount }, "loan amount"),
	"interestRate":    nonNegativeF64(func(p *model.PropertyData) *float64 { return p.InterestRate }, "interest rate"),
	"loanTerm":        positiveF64(func(p *model.PropertyData) *float64 { return p.LoanTerm }, "loan term"),
	"squareFootage":   positiveF64(func(p *model.PropertyData) *float64 { return p.SquareFootage }, "square footage"),
	"numberOfUnits": {
		present: func(p *model.PropertyData) bool { return p.NumberOfUnits != nil },
		reason: func(p *model.PropertyData) string {
			if p.NumberOfUnits != nil && *p.NumberOfUnits <= 0 {
				return "number of units must be greater than zero"
			}
			return ""
		},
	},
	"vacancyRate":   percentF64(func(p *model.PropertyData) *float64 { return p.VacancyRate }, "vacancy rate"),
	"occupancyRate": percentF64(func(p *model.PropertyData) *float64 { return p.OccupancyRate }, "occupancy rate"),
	"holdPeriod":    positiveF64(func(p *model.PropertyData) *float64 { return p.HoldPeriod }, "hold period"),
	"exitCapRate":   positiveF64(func(p *model.PropertyData) *float64 { return p.ExitCapRate }, "exit cap rate"),
	"noiGrowthRate": {
		present: func(p *model.PropertyData) bool { return p.NOIGrowthRate != nil },
		reason:  func(p *model.PropertyData) string { return "" },
	},
	"clearHeight": positiveF64(func(p *model.PropertyData) *float64 { return p.ClearHeight }, "clear height"),
	"dockDoors": {
		present: func(p *model.PropertyData) bool { return p.DockDoors != nil },
		reason: func(p *model.PropertyData) string {
			if p.DockDoors != nil && *p.DockDoors < 0 {
				return "dock doors must not be negative"
			}
			return ""
		},
	},
}

// KnownField reports whether name is a validatable PropertyData field.
func KnownField(name string) bool {
	_, ok := fieldRegistry[name]
	return ok
}

// ValidateRequired checks that every required field is present and sane.
// Returns a field -> reason map, empty when validation passes.
func ValidateRequired(p *model.PropertyData, required []string) map[string]string {
	problems := make(map[string]string)
	for _, name := range required {
		check, ok := fieldRegistry[name]
		if !ok {
			problems[name] = "unknown field in package definition"
			continue
		}
		if !check.present(p) {
			problems[name] = "required field is missing"
			continue
		}
		if reason := check.reason(p); reason != "" {
			problems[name] = reason
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}
