// Package packages holds the static calculation package catalog: which
// metrics each analysis tier runs and which property fields it requires.
// Pure data defined at build time; the only behavior is lookup.
package packages

import (
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/errs"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

// Package is one catalog entry.
type Package struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	PropertyType    model.PropertyType `json:"propertyType"`
	IncludedMetrics []model.MetricID   `json:"includedMetrics"`
	RequiredFields  []string           `json:"requiredFields"`
}

// Flags derives the metric switches for this package.
func (pkg *Package) Flags() model.MetricFlags {
	flags := make(model.MetricFlags, len(pkg.IncludedMetrics))
	for _, id := range pkg.IncludedMetrics {
		flags[id] = true
	}
	return flags
}

// Shared tier templates; every property type gets the same basic, financing
// and returns tiers plus one type-specific advanced tier.
var (
	basicMetrics = []model.MetricID{
		model.MetricCapRate, model.MetricGRM, model.MetricPricePerSF,
		model.MetricOperatingExpenseRatio, model.MetricEffectiveGrossIncome,
	}
	basicFields = []string{"purchasePrice", "currentNOI", "grossIncome", "squareFootage"}

	financingMetrics = []model.MetricID{
		model.MetricDSCR, model.MetricLTV, model.MetricDebtYield,
		model.MetricLoanConstant, model.MetricBreakEvenOccupancy,
	}
	financingFields = []string{"purchasePrice", "currentNOI", "grossIncome", "loanAmount", "interestRate", "loanTerm"}

	returnsMetrics = []model.MetricID{
		model.MetricCashOnCash, model.MetricIRR, model.MetricEquityMultiple,
		model.MetricPaybackPeriod,
	}
	returnsFields = []string{"purchasePrice", "currentNOI", "annualCashFlow", "totalInvestment", "holdPeriod", "exitCapRate"}
)

// advanced tiers: everything from the shared tiers plus the asset analyzer.
var advancedByType = map[model.PropertyType]struct {
	metric model.MetricID
	fields []string
	desc   string
}{
	model.Office:      {model.MetricOfficeAnalysis, nil, "Adds rent roll analysis: WALT, tenant credit, concentration and rollover."},
	model.Retail:      {model.MetricRetailAnalysis, nil, "Adds tenancy analysis: sales per SF, occupancy cost and co-tenancy risk."},
	model.Industrial:  {model.MetricIndustrialAnalysis, []string{"clearHeight"}, "Adds building functionality scoring: clear height, loading and office ratio."},
	model.Multifamily: {model.MetricMultifamilyAnalysis, []string{"numberOfUnits"}, "Adds unit economics: revenue per unit, rent per SF and market position."},
	model.MixedUse:    {model.MetricMixedUseAnalysis, nil, "Adds component analysis: NOI mix, diversification, synergies and conflicts."},
}

var catalog = buildCatalog()

func buildCatalog() []Package {
	types := []model.PropertyType{model.Office, model.Retail, model.Industrial, model.Multifamily, model.MixedUse}

	var out []Package
	for _, pt := range types {
		out = append(out,
			Package{
				ID:              string(pt) + "-basic",
				Name:            "Basic Analysis",
				Description:     "Core pricing metrics: cap rate, GRM, price per SF, expense ratio.",
				PropertyType:    pt,
				IncludedMetrics: basicMetrics,
				RequiredFields:  basicFields,
			},
			Package{
				ID:              string(pt) + "-financing",
				Name:            "Financing Analysis",
				Description:     "Debt metrics: DSCR, LTV, debt yield, loan constant, break-even occupancy.",
				PropertyType:    pt,
				IncludedMetrics: financingMetrics,
				RequiredFields:  financingFields,
			},
			Package{
				ID:              string(pt) + "-returns",
				Name:            "Return Analysis",
				Description:     "Return metrics: cash-on-cash, IRR, equity multiple, payback period.",
				PropertyType:    pt,
				IncludedMetrics: returnsMetrics,
				RequiredFields:  returnsFields,
			},
			advancedPackage(pt),
		)
	}
	return out
}

func advancedPackage(pt model.PropertyType) Package {
	adv := advancedByType[pt]

	metrics := make([]model.MetricID, 0, len(basicMetrics)+len(financingMetrics)+len(returnsMetrics)+1)
	metrics = append(metrics, basicMetrics...)
	metrics = append(metrics, financingMetrics...)
	metrics = append(metrics, returnsMetrics...)
	metrics = append(metrics, adv.metric)

	fields := dedupe(basicFields, financingFields, returnsFields, adv.fields)

	return Package{
		ID:              string(pt) + "-advanced",
		Name:            "Advanced Analysis",
		Description:     "All metrics. " + adv.desc,
		PropertyType:    pt,
		IncludedMetrics: metrics,
		RequiredFields:  fields,
	}
}

func dedupe(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, f := range list {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// All returns the full catalog.
func All() []Package {
	return catalog
}

// ByType returns the packages available for one property type.
func ByType(pt model.PropertyType) []Package {
	var out []Package
	for _, pkg := range catalog {
		if pkg.PropertyType == pt {
			out = append(out, pkg)
		}
	}
	return out
}

// Lookup resolves a package by id and checks it fits the property type.
func Lookup(id string, pt model.PropertyType) (*Package, error) {
	for i := range catalog {
		if catalog[i].ID == id {
			if catalog[i].PropertyType != pt {
				return nil, errs.ErrPackageNotFound
			}
			return &catalog[i], nil
		}
	}
	return nil, errs.ErrPackageNotFound
}
