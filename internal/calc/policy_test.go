package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/utils"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

func TestCheckSanity(t *testing.T) {
	pol := DefaultPolicy()

	tests := []struct {
		name         string
		metrics      model.CalculatedMetrics
		property     model.PropertyData
		wantWarnings int
		wantErrors   int
	}{
		{"clean", model.CalculatedMetrics{CapRate: utils.F64Ptr(7)}, model.PropertyData{}, 0, 0},
		{"negative_cap_rate_is_hard", model.CalculatedMetrics{CapRate: utils.F64Ptr(-2)}, model.PropertyData{}, 0, 1},
		{"high_cap_rate_is_soft", model.CalculatedMetrics{CapRate: utils.F64Ptr(25)}, model.PropertyData{}, 1, 0},
		{"ltv_over_max_is_hard", model.CalculatedMetrics{LTV: utils.F64Ptr(120)}, model.PropertyData{}, 0, 1},
		{"low_dscr_is_soft", model.CalculatedMetrics{DSCR: utils.F64Ptr(0.85)}, model.PropertyData{}, 1, 0},
		{"high_vacancy_is_soft", model.CalculatedMetrics{}, model.PropertyData{VacancyRate: utils.F64Ptr(40)}, 1, 0},
		{
			"mixed",
			model.CalculatedMetrics{CapRate: utils.F64Ptr(25), LTV: utils.F64Ptr(110), DSCR: utils.F64Ptr(0.9)},
			model.PropertyData{},
			2, 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings, errors := pol.CheckSanity(&tt.metrics, &tt.property)
			require.Len(t, warnings, tt.wantWarnings)
			require.Len(t, errors, tt.wantErrors)
		})
	}
}

func TestCheckSanityOverriddenThreshold(t *testing.T) {
	pol := DefaultPolicy()
	pol.CapRateWarnAbove = 10

	warnings, errors := pol.CheckSanity(&model.CalculatedMetrics{CapRate: utils.F64Ptr(12)}, &model.PropertyData{})
	require.Empty(t, errors)
	require.Len(t, warnings, 1)
	if !strings.Contains(warnings[0], "cap rate") {
		t.Errorf("unexpected warning: %s", warnings[0])
	}
}
