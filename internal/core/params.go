package core

import (
	"strconv"
	"time"

	"life-tiles/pkg/session"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
)

// ParameterControl describes an adjustable value exposed by a presentation
// layer. Steps and bounds are interpreted based on the parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// IntervalControl is the speed control: milliseconds between generations.
var IntervalControl = ParameterControl{
	Key:    "interval_ms",
	Label:  "Interval (ms)",
	Type:   ParamTypeInt,
	Step:   50,
	Min:    float64(session.MinInterval / time.Millisecond),
	Max:    float64(session.MaxInterval / time.Millisecond),
	HasMin: true,
	HasMax: true,
}

// Clamp bounds v to the control's limits.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		return c.Min
	}
	if c.HasMax && v > c.Max {
		return c.Max
	}
	return v
}

// Nudge moves v by delta steps and clamps the result.
func (c ParameterControl) Nudge(v float64, delta int) float64 {
	return c.Clamp(v + c.Step*float64(delta))
}

// Format renders v for display.
func (c ParameterControl) Format(v float64) string {
	if c.Type == ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatInterval renders d through IntervalControl, e.g. "200ms".
func FormatInterval(d time.Duration) string {
	return IntervalControl.Format(float64(d/time.Millisecond)) + "ms"
}

// NudgeInterval applies delta steps of IntervalControl to d.
func NudgeInterval(d time.Duration, delta int) time.Duration {
	ms := IntervalControl.Nudge(float64(d/time.Millisecond), delta)
	return time.Duration(ms) * time.Millisecond
}
