package profile

// Sensation is a self-reported body sensation attached to an answer.
type Sensation string

const (
	SensationNeutral  Sensation = "s0"
	SensationTension  Sensation = "s1"
	SensationWarmth   Sensation = "s2"
	SensationRestless Sensation = "s3"
	SensationFreeze   Sensation = "s4"
)

// AllSensations returns the sensations in picker order.
func AllSensations() []Sensation {
	return []Sensation{
		SensationNeutral,
		SensationTension,
		SensationWarmth,
		SensationRestless,
		SensationFreeze,
	}
}

// IsBlock reports whether the sensation counts as a somatic block.
func (s Sensation) IsBlock() bool {
	return s == SensationTension || s == SensationFreeze
}

// IsResource reports whether the sensation counts as a somatic resource.
func (s Sensation) IsResource() bool {
	return s == SensationWarmth
}

// Label returns a short human-readable name.
func (s Sensation) Label() string {
	switch s {
	case SensationNeutral:
		return "Nothing in particular"
	case SensationTension:
		return "Tension / tightness"
	case SensationWarmth:
		return "Warmth / expansion"
	case SensationRestless:
		return "Restlessness"
	case SensationFreeze:
		return "Freeze / numbness"
	default:
		return string(s)
	}
}
