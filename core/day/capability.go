package day

// Capability is an opt-in feature registered on an Engine.
type Capability uint8

const (
	// Duration enables constructing and comparing spans ("in 3 hours").
	Duration Capability = iota + 1
	// RelativeTime enables "5 minutes ago" style rendering.
	RelativeTime
	// Timezone enables conversion to named IANA zones.
	Timezone
	// UTC enables treating an instant as UTC regardless of the local zone.
	UTC
)

func (c Capability) String() string {
	switch c {
	case Duration:
		return "duration"
	case RelativeTime:
		return "relative-time"
	case Timezone:
		return "timezone"
	case UTC:
		return "utc"
	default:
		return "unknown"
	}
}
