package calc

import (
	"time"

	"go.uber.org/zap"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/calc/assets"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/errs"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/packages"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

// Engine runs one calculation request: resolve package, validate required
// fields, compute flagged metrics with per-metric failure isolation, run
// sanity checks. Stateless apart from policy and clock; results for a fixed
// clock are deterministic.
type Engine struct {
	policy Policy
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewEngine returns an engine with the given sanity policy.
func NewEngine(policy Policy, logger *zap.SugaredLogger) *Engine {
	return &Engine{policy: policy, logger: logger, now: time.Now}
}

// Analyze maps a package id plus property record to a structured result.
// Anticipated bad input (unknown package, missing fields, uncomputable
// metrics) is reported inside the result; Analyze itself never fails.
func (e *Engine) Analyze(pkgID string, pt model.PropertyType, p *model.PropertyData) *model.AnalysisResult {
	res := &model.AnalysisResult{}

	if p == nil {
		res.Error = "property data is required"
		return res
	}
	if !model.ValidPropertyType(pt) {
		res.Error = errs.ErrInvalidPropertyType.Error() + ": " + string(pt)
		return res
	}

	pkg, err := packages.Lookup(pkgID, pt)
	if err != nil {
		res.Error = errs.ErrPackageNotFound.Error() + ": " + pkgID
		return res
	}

	if problems := ValidateRequired(p, pkg.RequiredFields); problems != nil {
		res.ValidationErrors = problems
		return res
	}

	flags := pkg.Flags()
	asOf := e.now()
	metrics := &model.CalculatedMetrics{}
	omitted := make(map[string]string)

	// IncludedMetrics gives a deterministic order; each metric is isolated
	// so one failure cannot abort the batch.
	for _, id := range pkg.IncludedMetrics {
		if !flags[id] {
			continue
		}
		if fn, ok := scalarFormulas[id]; ok {
			v := e.computeScalar(id, fn, p)
			if v == nil {
				omitted[string(id)] = "required inputs missing or result not finite"
				continue
			}
			scalarTargets[id](metrics, v)
			continue
		}
		e.computeAsset(id, metrics, p, asOf, omitted)
	}

	res.Success = true
	res.Metrics = metrics
	if len(omitted) > 0 {
		res.Omitted = omitted
	}
	res.Warnings, res.Errors = e.policy.CheckSanity(metrics, p)
	return res
}

// computeScalar runs one formula, converting a panic into an absent metric.
func (e *Engine) computeScalar(id model.MetricID, fn func(*model.PropertyData) *float64, p *model.PropertyData) (v *float64) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Errorf("metric %s panicked: %v", id, r)
			}
			v = nil
		}
	}()
	return fn(p)
}

func (e *Engine) computeAsset(id model.MetricID, m *model.CalculatedMetrics, p *model.PropertyData, asOf time.Time, omitted map[string]string) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Errorf("analyzer %s panicked: %v", id, r)
			}
			omitted[string(id)] = "analyzer failed"
		}
	}()

	switch id {
	case model.MetricOfficeAnalysis:
		m.Office = assets.AnalyzeOffice(p.OfficeTenants, asOf)
		if m.Office == nil {
			omitted[string(id)] = "no office tenant records supplied"
		}
	case model.MetricRetailAnalysis:
		m.Retail = assets.AnalyzeRetail(p.RetailTenants, asOf)
		if m.Retail == nil {
			omitted[string(id)] = "no retail tenant records supplied"
		}
	case model.MetricIndustrialAnalysis:
		m.Industrial = assets.AnalyzeIndustrial(p)
		if m.Industrial == nil {
			omitted[string(id)] = "no industrial building fields supplied"
		}
	case model.MetricMultifamilyAnalysis:
		m.Multifamily = assets.AnalyzeMultifamily(p.UnitMix, p.MarketAvgRent)
		if m.Multifamily == nil {
			omitted[string(id)] = "no unit mix records supplied"
		}
	case model.MetricMixedUseAnalysis:
		m.MixedUse = assets.AnalyzeMixedUse(p.Components)
		if m.MixedUse == nil {
			omitted[string(id)] = "no component records supplied"
		}
	default:
		omitted[string(id)] = "unknown metric"
	}
}
