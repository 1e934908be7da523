package calc

import (
	"math"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

// projection is an unlevered hold-period cash flow model: equity out at year
// zero, NOI in each year with growth, sale proceeds at exit cap in the final
// year. All return metrics (IRR, equity multiple, payback) read from it so
// they agree with each other.
type projection struct {
	equity float64
	flows  []float64 // One entry per hold year; the last includes sale proceeds.
}

func buildProjection(p *model.PropertyData) *projection {
	if p.PurchasePrice == nil || p.CurrentNOI == nil || p.HoldPeriod == nil || p.ExitCapRate == nil {
		return nil
	}
	price, noi, hold, exitCap := *p.PurchasePrice, *p.CurrentNOI, *p.HoldPeriod, *p.ExitCapRate
	if price <= 0 || hold <= 0 || exitCap <= 0 {
		return nil
	}
	growth := 0.0
	if p.NOIGrowthRate != nil {
		growth = *p.NOIGrowthRate / 100
	}

	equity := price
	if p.TotalInvestment != nil && *p.TotalInvestment > 0 {
		equity = *p.TotalInvestment
	}

	years := int(math.Round(hold))
	if years < 1 {
		years = 1
	}
	flows := make([]float64, years)
	for t := 1; t <= years; t++ {
		flows[t-1] = noi * math.Pow(1+growth, float64(t))
	}
	// Sale at exit: next year's NOI capitalized at the exit rate.
	saleNOI := noi * math.Pow(1+growth, float64(years+1))
	flows[years-1] += saleNOI / (exitCap / 100)

	return &projection{equity: equity, flows: flows}
}

func (pr *projection) npv(rate float64) float64 {
	v := -pr.equity
	for t, cf := range pr.flows {
		v += cf / math.Pow(1+rate, float64(t+1))
	}
	return v
}

// irr solves NPV(rate) == 0 by bisection on (-0.99, 10). Returns ok=false
// when no sign change exists in that interval.
func (pr *projection) irr() (float64, bool) {
	lo, hi := -0.99, 10.0
	fLo, fHi := pr.npv(lo), pr.npv(hi)
	if math.IsNaN(fLo) || math.IsNaN(fHi) || fLo*fHi > 0 {
		return 0, false
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fMid := pr.npv(mid)
		if math.Abs(fMid) < 1e-9 {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return (lo + hi) / 2, true
}

// IRR returns the unlevered internal rate of return over the hold period as
// a percentage.
func IRR(p *model.PropertyData) *float64 {
	pr := buildProjection(p)
	if pr == nil || pr.equity <= 0 {
		return nil
	}
	r, ok := pr.irr()
	if !ok {
		return nil
	}
	v := r * 100
	return &v
}

// EquityMultiple returns total projected distributions over invested equity.
func EquityMultiple(p *model.PropertyData) *float64 {
	pr := buildProjection(p)
	if pr == nil || pr.equity <= 0 {
		return nil
	}
	total := 0.0
	for _, cf := range pr.flows {
		total += cf
	}
	return ratio(total, pr.equity)
}

// PaybackPeriod returns years of annual cash flow needed to recover the
// total investment.
func PaybackPeriod(p *model.PropertyData) *float64 {
	if p.TotalInvestment == nil || p.AnnualCashFlow == nil {
		return nil
	}
	if *p.TotalInvestment <= 0 || *p.AnnualCashFlow <= 0 {
		return nil
	}
	return ratio(*p.TotalInvestment, *p.AnnualCashFlow)
}
