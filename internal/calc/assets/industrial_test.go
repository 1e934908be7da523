package assets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/utils"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

func TestAnalyzeIndustrial(t *testing.T) {
	p := model.PropertyData{
		SquareFootage:  utils.F64Ptr(200_000),
		ClearHeight:    utils.F64Ptr(36),
		DockDoors:      utils.IntPtr(20),
		OfficeBuildOut: utils.F64Ptr(10),
	}
	a := AnalyzeIndustrial(&p)
	require.NotNil(t, a)
	require.Equal(t, 100.0, a.ClearHeightScore)
	require.Equal(t, 100.0, a.LoadingScore) // 1 door per 10k SF
	require.Equal(t, 100.0, a.OfficeRatioScore)
	require.Equal(t, 100.0, a.FunctionalityScore)
	require.Equal(t, "A", a.Grade)
}

func TestAnalyzeIndustrialLowSpec(t *testing.T) {
	p := model.PropertyData{ClearHeight: utils.F64Ptr(22)}
	a := AnalyzeIndustrial(&p)
	require.NotNil(t, a)
	require.Equal(t, 40.0, a.ClearHeightScore)
	require.InDelta(t, 20.0, a.FunctionalityScore, 1e-9)
	require.Equal(t, "D", a.Grade)
}

func TestScoreClearHeight(t *testing.T) {
	tests := []struct {
		feet float64
		want float64
	}{
		{40, 100}, {36, 100}, {32, 90}, {28, 75}, {24, 60}, {20, 40}, {16, 20},
	}
	for _, tt := range tests {
		if got := scoreClearHeight(tt.feet); got != tt.want {
			t.Errorf("scoreClearHeight(%v) = %v, want %v", tt.feet, got, tt.want)
		}
	}
}

func TestScoreOfficeRatio(t *testing.T) {
	tests := []struct {
		pct  float64
		want float64
	}{
		{10, 100}, {5, 100}, {15, 100}, {3, 80}, {20, 60}, {40, 30},
	}
	for _, tt := range tests {
		if got := scoreOfficeRatio(tt.pct); got != tt.want {
			t.Errorf("scoreOfficeRatio(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestAnalyzeIndustrialNoFields(t *testing.T) {
	p := model.PropertyData{SquareFootage: utils.F64Ptr(200_000)}
	if a := AnalyzeIndustrial(&p); a != nil {
		t.Error("want nil when no industrial fields supplied")
	}
}
