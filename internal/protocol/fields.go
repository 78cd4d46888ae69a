package protocol

import (
	"strconv"

	"github.com/danmuck/cbusctl/internal/protocol/schema"
)

// Get returns the decoded value for a field name.
func (m Message) Get(name string) (Value, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Uint returns a numeric field that was fully decoded.
func (m Message) Uint(name string) (uint64, bool) {
	v, ok := m.Get(name)
	if !ok || v.Insufficient || v.Kind != schema.Numeric {
		return 0, false
	}
	return v.Uint, true
}

// Text returns a hex-string or ascii field that was fully decoded.
func (m Message) Text(name string) (string, bool) {
	v, ok := m.Get(name)
	if !ok || v.Insufficient || v.Kind == schema.Numeric {
		return "", false
	}
	return v.Text, true
}

// Known reports whether the opcode was found in the registry.
func (m Message) Known() bool {
	return m.Outcome != OutcomeUnknownOpcode
}

// Interface returns the value as uint64 or string. Truncated fields yield
// the InsufficientData marker.
func (v Value) Interface() any {
	if v.Insufficient {
		return InsufficientData
	}
	if v.Kind == schema.Numeric {
		return v.Uint
	}
	return v.Text
}

func (v Value) String() string {
	if v.Insufficient {
		return "<" + InsufficientData + ">"
	}
	switch v.Kind {
	case schema.Numeric:
		return strconv.FormatUint(v.Uint, 10)
	case schema.Ascii:
		return strconv.Quote(v.Text)
	default:
		return v.Text
	}
}
