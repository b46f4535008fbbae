package scale

import (
	"testing"

	"power-cost/core/types"
)

func TestAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		axis     Axis
		baseline int
		actual   int
		expected int
	}{
		{"same level", Range, RangeClose, RangeClose, 0},
		{"close to ranged", Range, RangeClose, RangeRanged, 1},
		{"ranged to personal", Range, RangeRanged, RangePersonal, -2},
		{"standard to reaction", Action, ActionStandard, ActionReaction, 3},
		{"none costs like free", Action, ActionFree, ActionNone, 0},
		{"standard to none", Action, ActionStandard, ActionNone, 2},
		{"permanent costs like activated", Duration, DurationActivated, DurationPermanent, 0},
		{"instant to permanent", Duration, DurationInstant, DurationPermanent, 3},
		{"permanent to sustained", Duration, DurationPermanent, DurationSustained, -1},
		{"level beyond table clamps", Range, RangePersonal, 42, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adjustment(tt.baseline, tt.actual, tt.axis)
			if got != tt.expected {
				t.Errorf("Adjustment(%d, %d, %s) = %d, want %d", tt.baseline, tt.actual, tt.axis, got, tt.expected)
			}
		})
	}
}

func TestBaseline(t *testing.T) {
	if got := Baseline(nil); got != (types.Parameters{}) {
		t.Fatalf("empty baseline should be zero, got %+v", got)
	}

	got := Baseline([]types.Parameters{
		{Action: 2, Range: 1, Duration: 3},
		{Action: 0, Range: 2, Duration: 4},
		{Action: 1, Range: 3, Duration: 1},
	})
	want := types.Parameters{Action: 0, Range: 1, Duration: 1}
	if got != want {
		t.Errorf("Baseline = %+v, want %+v", got, want)
	}
}

func TestTotalAdjustment(t *testing.T) {
	baseline := types.Parameters{Action: ActionStandard, Range: RangeClose, Duration: DurationActivated}
	actual := types.Parameters{Action: ActionMove, Range: RangeRanged, Duration: DurationPermanent}

	if got := TotalAdjustment(baseline, actual); got != 2 {
		t.Errorf("TotalAdjustment = %d, want 2", got)
	}
	if got := TotalAdjustment(baseline, baseline); got != 0 {
		t.Errorf("TotalAdjustment on identical parameters = %d, want 0", got)
	}
}

func TestLevelName(t *testing.T) {
	if got := LevelName(Duration, DurationPermanent); got != "permanent" {
		t.Errorf("LevelName = %q", got)
	}
	if got := LevelName(Action, -3); got != "standard" {
		t.Errorf("negative level should clamp to first, got %q", got)
	}
}
