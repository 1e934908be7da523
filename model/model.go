// Package model contains core data types for the project.
package model

import "time"

// PropertyType defines the asset class of a property under analysis.
type PropertyType string

const (
	Office      PropertyType = "office"
	Retail      PropertyType = "retail"
	Industrial  PropertyType = "industrial"
	Multifamily PropertyType = "multifamily"
	MixedUse    PropertyType = "mixed-use"
)

// ValidPropertyType reports whether t is one of the supported asset classes.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case Office, Retail, Industrial, Multifamily, MixedUse:
		return true
	}
	return false
}

// PropertyData is a single property's financial inputs. All flat fields are
// optional; which ones must be present is decided by the selected package.
type PropertyData struct {
	PurchasePrice     *float64 `json:"purchasePrice,omitempty"`     // Acquisition price, USD.
	CurrentNOI        *float64 `json:"currentNOI,omitempty"`        // Net operating income, USD/year.
	ProjectedNOI      *float64 `json:"projectedNOI,omitempty"`      // Stabilized NOI, USD/year.
	GrossIncome       *float64 `json:"grossIncome,omitempty"`       // Gross annual income, USD/year.
	OperatingExpenses *float64 `json:"operatingExpenses,omitempty"` // USD/year.
	AnnualCashFlow    *float64 `json:"annualCashFlow,omitempty"`    // Pre-tax cash flow, USD/year.
	TotalInvestment   *float64 `json:"totalInvestment,omitempty"`   // Equity invested, USD.
	LoanAmount        *float64 `json:"loanAmount,omitempty"`        // USD.
	InterestRate      *float64 `json:"interestRate,omitempty"`      // Percent per year.
	LoanTerm          *float64 `json:"loanTerm,omitempty"`          // Years.
	AnnualDebtService *float64 `json:"annualDebtService,omitempty"` // USD/year; derived from loan terms when absent.
	SquareFootage     *float64 `json:"squareFootage,omitempty"`     // Rentable SF.
	NumberOfUnits     *int     `json:"numberOfUnits,omitempty"`
	ParkingSpaces     *int     `json:"parkingSpaces,omitempty"`
	YearBuilt         *int     `json:"yearBuilt,omitempty"`
	OccupancyRate     *float64 `json:"occupancyRate,omitempty"` // Percent, 0-100.
	VacancyRate       *float64 `json:"vacancyRate,omitempty"`   // Percent, 0-100.
	MarketAvgRent     *float64 `json:"marketAvgRent,omitempty"` // USD/month per unit, multifamily comps.
	HoldPeriod        *float64 `json:"holdPeriod,omitempty"`    // Years.
	ExitCapRate       *float64 `json:"exitCapRate,omitempty"`   // Percent.
	NOIGrowthRate     *float64 `json:"noiGrowthRate,omitempty"` // Percent per year.

	// Industrial-specific fields.
	ClearHeight    *float64 `json:"clearHeight,omitempty"` // Feet.
	DockDoors      *int     `json:"dockDoors,omitempty"`
	PowerCapacity  *float64 `json:"powerCapacity,omitempty"`  // Amps.
	OfficeBuildOut *float64 `json:"officeBuildOut,omitempty"` // Percent of SF finished as office.

	// Nested per-asset-type records; a missing array means the matching
	// analyzer is skipped, never an error.
	OfficeTenants []OfficeTenant      `json:"officeTenants,omitempty"`
	RetailTenants []RetailTenant      `json:"retailTenants,omitempty"`
	UnitMix       []UnitGroup         `json:"unitMix,omitempty"`
	Components    []MixedUseComponent `json:"components,omitempty"`
}

// OfficeTenant describes one office lease.
type OfficeTenant struct {
	Name         string    `json:"name"`
	SquareFeet   float64   `json:"squareFeet"`
	AnnualRent   float64   `json:"annualRent"`
	LeaseExpiry  time.Time `json:"leaseExpiry"`
	CreditRating string    `json:"creditRating,omitempty"` // AAA..CCC, empty treated as NR.
	Industry     string    `json:"industry,omitempty"`
}

// RetailTenant describes one retail lease.
type RetailTenant struct {
	Name        string    `json:"name"`
	SquareFeet  float64   `json:"squareFeet"`
	AnnualRent  float64   `json:"annualRent"`
	AnnualSales float64   `json:"annualSales,omitempty"`
	LeaseExpiry time.Time `json:"leaseExpiry"`
	Category    string    `json:"category,omitempty"`
	Anchor      bool      `json:"anchor,omitempty"`
}

// UnitGroup describes one multifamily unit type (e.g. "1BR").
type UnitGroup struct {
	Type           string  `json:"type"`
	Units          int     `json:"units"`
	OccupiedUnits  int     `json:"occupiedUnits"`
	AvgSquareFeet  float64 `json:"avgSquareFeet,omitempty"`
	AvgMonthlyRent float64 `json:"avgMonthlyRent"`
}

// MixedUseComponent describes one use within a mixed-use property.
type MixedUseComponent struct {
	Use           string  `json:"use"` // office, retail, residential, hotel, industrial.
	SquareFeet    float64 `json:"squareFeet"`
	NOI           float64 `json:"noi"`
	OccupancyRate float64 `json:"occupancyRate,omitempty"` // Percent, 0-100.
}
