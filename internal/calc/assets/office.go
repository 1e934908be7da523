package assets

import (
	"time"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

// creditScores maps agency-style ratings to a 0-100 score. Unknown or empty
// ratings score as not-rated.
var creditScores = map[string]float64{
	"AAA": 100,
	"AA":  90,
	"A":   80,
	"BBB": 70,
	"BB":  55,
	"B":   40,
	"CCC": 25,
	"NR":  50,
}

func creditScore(rating string) float64 {
	if s, ok := creditScores[rating]; ok {
		return s
	}
	return creditScores["NR"]
}

// AnalyzeOffice builds the office rent-roll report: WALT, rent-weighted
// credit quality, concentration and near-term rollover, as of the given
// analysis date.
func AnalyzeOffice(tenants []model.OfficeTenant, asOf time.Time) *model.OfficeTenantAnalysis {
	if len(tenants) == 0 {
		return nil
	}

	var totalRent, leasedSF, weightedYears, weightedCredit, rollover, largest float64
	rents := make([]float64, 0, len(tenants))
	for _, t := range tenants {
		if t.AnnualRent <= 0 {
			continue
		}
		years := yearsUntil(asOf, t.LeaseExpiry)
		totalRent += t.AnnualRent
		leasedSF += t.SquareFeet
		weightedYears += t.AnnualRent * years
		weightedCredit += t.AnnualRent * creditScore(t.CreditRating)
		if years <= 3 {
			rollover += t.AnnualRent
		}
		if t.AnnualRent > largest {
			largest = t.AnnualRent
		}
		rents = append(rents, t.AnnualRent)
	}
	if totalRent == 0 {
		return nil
	}

	a := &model.OfficeTenantAnalysis{
		TenantCount:        len(tenants),
		WALT:               weightedYears / totalRent,
		TotalAnnualRent:    totalRent,
		LeasedSF:           leasedSF,
		AvgCreditScore:     weightedCredit / totalRent,
		RentConcentration:  herfindahl(rents),
		LargestTenantShare: largest / totalRent * 100,
		RolloverWithin3Y:   rollover / totalRent * 100,
	}

	switch {
	case a.WALT >= 5 && a.AvgCreditScore >= 70 && a.RentConcentration < 0.3:
		a.Assessment = "strong: long WALT, credit tenants, diversified rent roll"
	case a.WALT >= 3 && a.AvgCreditScore >= 50:
		a.Assessment = "stable: adequate lease term and tenant quality"
	default:
		a.Assessment = "watch: short WALT, weak credit or concentrated rent roll"
	}
	return a
}
