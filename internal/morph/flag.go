package morph

// Flag is a tri-state attribute. The zero value means "not specified".
type Flag uint8

const (
	Unset Flag = iota
	No
	Yes
)

// FlagOf converts a bool into a set Flag.
func FlagOf(b bool) Flag {
	if b {
		return Yes
	}
	return No
}

// Or returns f if it is set, otherwise other.
func (f Flag) Or(other Flag) Flag {
	if f != Unset {
		return f
	}
	return other
}

// IsTrue reports whether the flag is explicitly set to true.
func (f Flag) IsTrue() bool { return f == Yes }

// IsSet reports whether the flag carries a value.
func (f Flag) IsSet() bool { return f != Unset }

func (f Flag) String() string {
	switch f {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unset"
	}
}
