package ucd

// ErrKind classifies oracle failures so callers can branch on intent rather
// than text.
type ErrKind int

const (
	ErrKindPropertyNotFound      ErrKind = iota // unknown property name
	ErrKindPropertyValueNotFound                // known property, unknown value
	ErrKindPerlClassNotFound                    // perl class data unavailable
)

// Error is a typed lookup failure carrying the name that failed to resolve.
type Error struct {
	Kind ErrKind
	Name string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrKindPropertyNotFound:
		return "unicode property not found: " + e.Name
	case ErrKindPropertyValueNotFound:
		return "unicode property value not found: " + e.Name
	case ErrKindPerlClassNotFound:
		return "perl character class data not available: " + e.Name
	}
	return "unicode data lookup failed: " + e.Name
}
