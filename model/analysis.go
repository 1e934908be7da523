package model

import (
	"time"

	"github.com/google/uuid"
)

// MetricID names one computable metric. Typed keys keep package definitions
// and the formula registry in sync at compile time.
type MetricID string

const (
	MetricCapRate               MetricID = "capRate"
	MetricCashOnCash            MetricID = "cashOnCash"
	MetricDSCR                  MetricID = "dscr"
	MetricLTV                   MetricID = "ltv"
	MetricGRM                   MetricID = "grm"
	MetricDebtYield             MetricID = "debtYield"
	MetricLoanConstant          MetricID = "loanConstant"
	MetricPricePerSF            MetricID = "pricePerSF"
	MetricPricePerUnit          MetricID = "pricePerUnit"
	MetricOperatingExpenseRatio MetricID = "operatingExpenseRatio"
	MetricBreakEvenOccupancy    MetricID = "breakEvenOccupancy"
	MetricEffectiveGrossIncome  MetricID = "effectiveGrossIncome"
	MetricIRR                   MetricID = "irr"
	MetricEquityMultiple        MetricID = "equityMultiple"
	MetricPaybackPeriod         MetricID = "paybackPeriod"

	MetricOfficeAnalysis      MetricID = "officeTenantAnalysis"
	MetricRetailAnalysis      MetricID = "retailTenantAnalysis"
	MetricIndustrialAnalysis  MetricID = "industrialAnalysis"
	MetricMultifamilyAnalysis MetricID = "multifamilyAnalysis"
	MetricMixedUseAnalysis    MetricID = "mixedUseAnalysis"
)

// MetricFlags switches individual metrics on for one calculation request.
// Derived from the selected package, never persisted on its own.
type MetricFlags map[MetricID]bool

// CalculatedMetrics is the output record of one analysis. A field is set
// only when its flag was on and the computation produced a finite value.
type CalculatedMetrics struct {
	CapRate               *float64 `json:"capRate,omitempty"`
	CashOnCash            *float64 `json:"cashOnCash,omitempty"`
	DSCR                  *float64 `json:"dscr,omitempty"`
	LTV                   *float64 `json:"ltv,omitempty"`
	GRM                   *float64 `json:"grm,omitempty"`
	DebtYield             *float64 `json:"debtYield,omitempty"`
	LoanConstant          *float64 `json:"loanConstant,omitempty"`
	PricePerSF            *float64 `json:"pricePerSF,omitempty"`
	PricePerUnit          *float64 `json:"pricePerUnit,omitempty"`
	OperatingExpenseRatio *float64 `json:"operatingExpenseRatio,omitempty"`
	BreakEvenOccupancy    *float64 `json:"breakEvenOccupancy,omitempty"`
	EffectiveGrossIncome  *float64 `json:"effectiveGrossIncome,omitempty"`
	IRR                   *float64 `json:"irr,omitempty"`
	EquityMultiple        *float64 `json:"equityMultiple,omitempty"`
	PaybackPeriod         *float64 `json:"paybackPeriod,omitempty"`

	Office      *OfficeTenantAnalysis `json:"officeTenantAnalysis,omitempty"`
	Retail      *RetailTenantAnalysis `json:"retailTenantAnalysis,omitempty"`
	Industrial  *IndustrialAnalysis   `json:"industrialAnalysis,omitempty"`
	Multifamily *MultifamilyAnalysis  `json:"multifamilyAnalysis,omitempty"`
	MixedUse    *MixedUseAnalysis     `json:"mixedUseAnalysis,omitempty"`
}

// OfficeTenantAnalysis summarizes office rent roll health.
type OfficeTenantAnalysis struct {
	TenantCount        int     `json:"tenantCount"`
	WALT               float64 `json:"walt"` // Years, rent-weighted.
	TotalAnnualRent    float64 `json:"totalAnnualRent"`
	LeasedSF           float64 `json:"leasedSF"`
	AvgCreditScore     float64 `json:"avgCreditScore"`     // 0-100, rent-weighted.
	RentConcentration  float64 `json:"rentConcentration"`  // Herfindahl index over rent shares, 0-1.
	LargestTenantShare float64 `json:"largestTenantShare"` // Percent of rent.
	RolloverWithin3Y   float64 `json:"rolloverWithin3Y"`   // Percent of rent expiring inside 3 years.
	Assessment         string  `json:"assessment"`
}

// RetailTenantAnalysis summarizes retail tenancy and sales performance.
type RetailTenantAnalysis struct {
	TenantCount        int     `json:"tenantCount"`
	WALT               float64 `json:"walt"`
	SalesPerSF         float64 `json:"salesPerSF"`
	OccupancyCostRatio float64 `json:"occupancyCostRatio"` // Rent / sales, percent.
	AnchorCount        int     `json:"anchorCount"`
	AnchorSFShare      float64 `json:"anchorSFShare"` // Percent of leased SF.
	CoTenancyRisk      string  `json:"coTenancyRisk"` // low, moderate, high.
	Assessment         string  `json:"assessment"`
}

// IndustrialAnalysis scores building functionality for modern logistics use.
type IndustrialAnalysis struct {
	ClearHeightScore   float64 `json:"clearHeightScore"`
	LoadingScore       float64 `json:"loadingScore"`
	OfficeRatioScore   float64 `json:"officeRatioScore"`
	FunctionalityScore float64 `json:"functionalityScore"` // Weighted 0-100.
	Grade              string  `json:"grade"`              // A, B, C, D.
}

// MultifamilyAnalysis summarizes unit economics and market positioning.
type MultifamilyAnalysis struct {
	TotalUnits        int     `json:"totalUnits"`
	AnnualRevPerUnit  float64 `json:"annualRevPerUnit"`
	AvgRentPerSF      float64 `json:"avgRentPerSF"`      // USD/SF/month.
	EconomicOccupancy float64 `json:"economicOccupancy"` // Percent, occupied-unit weighted.
	MarketPosition    string  `json:"marketPosition"`    // above market, at market, below market, unknown.
}

// MixedUseAnalysis summarizes component balance, synergies and conflicts.
type MixedUseAnalysis struct {
	ComponentCount  int      `json:"componentCount"`
	DominantUse     string   `json:"dominantUse"`
	DominantShare   float64  `json:"dominantShare"`   // Percent of NOI.
	Diversification float64  `json:"diversification"` // 1 - Herfindahl over NOI shares, 0-1.
	SynergyScore    float64  `json:"synergyScore"`    // 0-100.
	Conflicts       []string `json:"conflicts,omitempty"`
	Assessment      string   `json:"assessment"`
}

// AnalysisResult is the structured outcome of one calculation request.
// Anticipated bad input never surfaces as an error return or panic; it is
// reported through ValidationErrors / Omitted / Warnings / Errors.
type AnalysisResult struct {
	Success          bool               `json:"success"`
	Metrics          *CalculatedMetrics `json:"metrics,omitempty"`
	ValidationErrors map[string]string  `json:"validationErrors,omitempty"` // Field name -> reason.
	Omitted          map[string]string  `json:"omitted,omitempty"`          // Metric ID -> reason it is absent.
	Warnings         []string           `json:"warnings,omitempty"`         // Soft sanity findings.
	Errors           []string           `json:"errors,omitempty"`           // Hard sanity findings.
	Error            string             `json:"error,omitempty"`            // Fatal failure (unknown package, internal).
}

// Analysis is one stored calculation: the inputs plus the result.
type Analysis struct {
	ID           uuid.UUID       `json:"id"`
	CreatedAt    time.Time       `json:"createdAt"`
	PackageID    string          `json:"packageId"`
	PropertyType PropertyType    `json:"propertyType"`
	Property     *PropertyData   `json:"property"`
	Result       *AnalysisResult `json:"result"`
}

// AnalyzeRequest is the analyze endpoint's request body.
type AnalyzeRequest struct {
	PackageID    string        `json:"packageId"`
	PropertyType PropertyType  `json:"propertyType"`
	Property     *PropertyData `json:"property"`
}
