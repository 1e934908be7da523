package assets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

func TestAnalyzeMixedUseSynergy(t *testing.T) {
	components := []model.MixedUseComponent{
		{Use: "office", SquareFeet: 80_000, NOI: 600_000},
		{Use: "retail", SquareFeet: 20_000, NOI: 400_000},
	}
	a := AnalyzeMixedUse(components)
	require.NotNil(t, a)
	require.Equal(t, 2, a.ComponentCount)
	require.Equal(t, "office", a.DominantUse)
	require.InDelta(t, 60.0, a.DominantShare, 1e-9)
	// HHI of 60/40 split is 0.52.
	require.InDelta(t, 0.48, a.Diversification, 1e-9)
	// 50 base + 10 synergy + 0.48*20.
	require.InDelta(t, 69.6, a.SynergyScore, 1e-9)
	require.Empty(t, a.Conflicts)
	if a.Assessment[:6] != "strong" {
		t.Errorf("want strong assessment, got %q", a.Assessment)
	}
}

func TestAnalyzeMixedUseConflict(t *testing.T) {
	components := []model.MixedUseComponent{
		{Use: "industrial", SquareFeet: 100_000, NOI: 800_000},
		{Use: "residential", SquareFeet: 40_000, NOI: 500_000},
	}
	a := AnalyzeMixedUse(components)
	require.NotNil(t, a)
	require.Len(t, a.Conflicts, 1)
	if a.Assessment[:5] != "watch" {
		t.Errorf("want watch assessment, got %q", a.Assessment)
	}
}

func TestAnalyzeMixedUseDuplicatePairCountedOnce(t *testing.T) {
	components := []model.MixedUseComponent{
		{Use: "office", NOI: 300_000},
		{Use: "retail", NOI: 300_000},
		{Use: "retail", NOI: 300_000},
	}
	a := AnalyzeMixedUse(components)
	require.NotNil(t, a)
	// One office/retail synergy, even split across three components.
	hhi := 3.0 * (1.0 / 3) * (1.0 / 3)
	require.InDelta(t, 50+10+(1-hhi)*20, a.SynergyScore, 1e-9)
}

func TestAnalyzeMixedUseEmpty(t *testing.T) {
	if a := AnalyzeMixedUse(nil); a != nil {
		t.Error("want nil for empty component list")
	}
	zeroNOI := []model.MixedUseComponent{{Use: "office", NOI: 0}}
	if a := AnalyzeMixedUse(zeroNOI); a != nil {
		t.Error("want nil when no component produces NOI")
	}
}
