package protocol

import (
	"github.com/danmuck/cbusctl/internal/protocol/header"
	"github.com/danmuck/cbusctl/internal/protocol/schema"
)

const (
	MnemonicUnknown  = "UNKNOWN"
	KeyOpcode        = "opcode"
	KeyExtraData     = "extra_data"
	InsufficientData = "insufficient data"
)

// Outcome classifies a decode that did not fail outright.
type Outcome uint8

const (
	OutcomeComplete Outcome = iota
	// OutcomeUnknownOpcode means the opcode is not registered. No fields are decoded.
	OutcomeUnknownOpcode
	// OutcomeInsufficientData means the body ended inside a declared field.
	OutcomeInsufficientData
	// OutcomeExtraData means digits remained after the declared fields.
	OutcomeExtraData
)

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeUnknownOpcode:
		return "unknown_opcode"
	case OutcomeInsufficientData:
		return "insufficient_data"
	case OutcomeExtraData:
		return "extra_data"
	default:
		return "invalid"
	}
}

// Value is one decoded field value.
type Value struct {
	Kind         schema.Kind
	Uint         uint64
	Text         string
	Insufficient bool
}

// Field is a named value in layout order.
type Field struct {
	Name  string
	Value Value
}

// Message is a decoded frame body. Header is zero when the body was decoded
// without a frame.
type Message struct {
	Header   header.Header
	Opcode   byte
	Mnemonic string
	Fields   []Field
	Extra    string
	Outcome  Outcome
}
