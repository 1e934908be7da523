package assets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/utils"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

func testUnitMix() []model.UnitGroup {
	return []model.UnitGroup{
		{Type: "1BR", Units: 60, OccupiedUnits: 55, AvgSquareFeet: 700, AvgMonthlyRent: 1_500},
		{Type: "2BR", Units: 40, OccupiedUnits: 38, AvgSquareFeet: 950, AvgMonthlyRent: 1_900},
	}
}

func TestAnalyzeMultifamily(t *testing.T) {
	a := AnalyzeMultifamily(testUnitMix(), nil)
	require.NotNil(t, a)
	require.Equal(t, 100, a.TotalUnits)
	// 55*1500 + 38*1900 = 154700 per month.
	require.InDelta(t, 154_700.0*12/100, a.AnnualRevPerUnit, 1e-6)
	require.InDelta(t, 93.0, a.EconomicOccupancy, 1e-9)
	require.Equal(t, "unknown", a.MarketPosition)
}

func TestAnalyzeMultifamilyMarketPosition(t *testing.T) {
	// Achieved rent is 154700/93 ~= 1663.
	tests := []struct {
		name   string
		market float64
		want   string
	}{
		{"at_market", 1_650, "at market"},
		{"above_market", 1_500, "above market"},
		{"below_market", 1_800, "below market"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AnalyzeMultifamily(testUnitMix(), utils.F64Ptr(tt.market))
			require.NotNil(t, a)
			require.Equal(t, tt.want, a.MarketPosition)
		})
	}
}

func TestAnalyzeMultifamilyOverOccupied(t *testing.T) {
	// Occupied above total is clamped, not an error.
	mix := []model.UnitGroup{{Type: "studio", Units: 10, OccupiedUnits: 12, AvgMonthlyRent: 1_000}}
	a := AnalyzeMultifamily(mix, nil)
	require.NotNil(t, a)
	require.InDelta(t, 100.0, a.EconomicOccupancy, 1e-9)
}

func TestAnalyzeMultifamilyEmpty(t *testing.T) {
	if a := AnalyzeMultifamily(nil, nil); a != nil {
		t.Error("want nil for empty unit mix")
	}
	zeroUnits := []model.UnitGroup{{Type: "1BR", Units: 0}}
	if a := AnalyzeMultifamily(zeroUnits, nil); a != nil {
		t.Error("want nil when mix has no units")
	}
}
