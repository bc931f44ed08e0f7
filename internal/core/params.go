package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeText denotes free-form status values.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD as a slider. Bounds are inclusive.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64
	Min  float64
	Max  float64
}

// Clamp limits v to the control bounds and snaps it to the step grid
// anchored at Min.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.Max < c.Min {
		return c.Min
	}
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	if c.Step > 0 {
		steps := int((v-c.Min)/c.Step + 0.5)
		v = c.Min + float64(steps)*c.Step
		if v > c.Max {
			v = c.Max
		}
	}
	return v
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// IntParameterGetter reads back an integer parameter for display.
type IntParameterGetter interface {
	IntParameter(key string) (int, bool)
}
