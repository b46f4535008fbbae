// Package scale implements the parameter equivalence scale.
// Each axis maps a discrete level to the rank that drives its cost. Some
// levels share a rank with another level and cost the same.
package scale

import "power-cost/core/types"

// Axis is one of the three power parameters
type Axis int

const (
	Action Axis = iota
	Range
	Duration
)

// Axes lists every axis in evaluation order
var Axes = []Axis{Action, Range, Duration}

// String returns string representation
func (a Axis) String() string {
	switch a {
	case Action:
		return "action"
	case Range:
		return "range"
	case Duration:
		return "duration"
	default:
		return "unknown"
	}
}

// Level is one step of an axis
type Level struct {
	Name string
	Rank int
}

// Action levels
const (
	ActionStandard = iota
	ActionMove
	ActionFree
	ActionReaction
	ActionNone
)

// Range levels
const (
	RangePersonal = iota
	RangeClose
	RangeRanged
	RangePerception
)

// Duration levels
const (
	DurationInstant = iota
	DurationConcentration
	DurationSustained
	DurationActivated
	DurationPermanent
)

// "None" action costs the same as "Free"; "Permanent" duration costs the same as "Activated".
var levels = map[Axis][]Level{
	Action: {
		ActionStandard: {Name: "standard", Rank: 0},
		ActionMove:     {Name: "move", Rank: 1},
		ActionFree:     {Name: "free", Rank: 2},
		ActionReaction: {Name: "reaction", Rank: 3},
		ActionNone:     {Name: "none", Rank: 2},
	},
	Range: {
		RangePersonal:   {Name: "personal", Rank: 0},
		RangeClose:      {Name: "close", Rank: 1},
		RangeRanged:     {Name: "ranged", Rank: 2},
		RangePerception: {Name: "perception", Rank: 3},
	},
	Duration: {
		DurationInstant:       {Name: "instant", Rank: 0},
		DurationConcentration: {Name: "concentration", Rank: 1},
		DurationSustained:     {Name: "sustained", Rank: 2},
		DurationActivated:     {Name: "activated", Rank: 3},
		DurationPermanent:     {Name: "permanent", Rank: 3},
	},
}

func level(axis Axis, value int) Level {
	table := levels[axis]
	if len(table) == 0 {
		return Level{}
	}
	if value < 0 {
		value = 0
	}
	if value >= len(table) {
		value = len(table) - 1
	}
	return table[value]
}

// Rank returns the cost rank of a level. Out-of-table levels clamp to the nearest end.
func Rank(axis Axis, value int) int {
	return level(axis, value).Rank
}

// LevelName returns the display name of a level
func LevelName(axis Axis, value int) string {
	return level(axis, value).Name
}

// Adjustment returns the signed per-grade delta of moving an axis from baseline to actual
func Adjustment(baseline, actual int, axis Axis) int {
	return Rank(axis, actual) - Rank(axis, baseline)
}

// Get returns the level of an axis from a parameter set
func Get(p types.Parameters, axis Axis) int {
	switch axis {
	case Action:
		return p.Action
	case Range:
		return p.Range
	case Duration:
		return p.Duration
	default:
		return 0
	}
}

// Baseline takes the lowest default level of each axis. No defaults yield 0/0/0.
func Baseline(defaults []types.Parameters) types.Parameters {
	if len(defaults) == 0 {
		return types.Parameters{}
	}
	base := defaults[0]
	for _, d := range defaults[1:] {
		base.Action = min(base.Action, d.Action)
		base.Range = min(base.Range, d.Range)
		base.Duration = min(base.Duration, d.Duration)
	}
	return base
}

// TotalAdjustment sums the adjustment of every axis, once each
func TotalAdjustment(baseline, actual types.Parameters) int {
	total := 0
	for _, axis := range Axes {
		total += Adjustment(Get(baseline, axis), Get(actual, axis), axis)
	}
	return total
}
