package header

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/danmuck/cbusctl/internal/protocol/schema"
)

// HexLen is the width of a standard header on the wire.
const HexLen = 4

// Major priority levels. MajorNormal is used unless a caller escalates.
const (
	MajorHighest uint8 = 0
	MajorHigh    uint8 = 1
	MajorNormal  uint8 = 2
	MajorLow     uint8 = 3
)

const (
	MaxPriority uint8 = 3
	MaxCANID    uint8 = 127

	majorShift = 14
	minorShift = 12
	canIDShift = 5
)

var (
	ErrMalformedHeader = errors.New("header: malformed header")
	ErrInvalidPriority = errors.New("header: priority out of range")
	ErrInvalidCANID    = errors.New("header: can id out of range")
)

// Header is the unpacked 16-bit standard frame header.
type Header struct {
	Major uint8
	Minor uint8
	CANID uint8
}

// ForOpcode returns a header at the given major priority whose minor
// priority is the default registered for op.
func ForOpcode(op byte, major, canID uint8) (Header, error) {
	minor, err := schema.PriorityOf(op)
	if err != nil {
		return Header{}, err
	}
	h := Header{Major: major, Minor: minor, CANID: canID}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func (h Header) Validate() error {
	if h.Major > MaxPriority {
		return fmt.Errorf("%w: major=%d", ErrInvalidPriority, h.Major)
	}
	if h.Minor > MaxPriority {
		return fmt.Errorf("%w: minor=%d", ErrInvalidPriority, h.Minor)
	}
	if h.CANID > MaxCANID {
		return fmt.Errorf("%w: %d", ErrInvalidCANID, h.CANID)
	}
	return nil
}

// Pack returns the packed header value.
func Pack(h Header) (uint16, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}
	return uint16(h.Major)<<majorShift | uint16(h.Minor)<<minorShift | uint16(h.CANID)<<canIDShift, nil
}

// Unpack splits a packed header value. The low five bits are not part of a
// standard header and are dropped.
func Unpack(v uint16) Header {
	return Header{
		Major: uint8(v>>majorShift) & 0x03,
		Minor: uint8(v>>minorShift) & 0x03,
		CANID: uint8(v>>canIDShift) & 0x7F,
	}
}

// Encode packs h into four upper-case hex characters.
func Encode(h Header) (string, error) {
	v, err := Pack(h)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04X", v), nil
}

// Decode parses four hex characters into a Header.
func Decode(s string) (Header, error) {
	if len(s) != HexLen {
		return Header{}, fmt.Errorf("%w: length %d", ErrMalformedHeader, len(s))
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %q", ErrMalformedHeader, s)
	}
	return Unpack(uint16(v)), nil
}

func (h Header) String() string {
	return fmt.Sprintf("major=%d minor=%d can_id=%d", h.Major, h.Minor, h.CANID)
}
