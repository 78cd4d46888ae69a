// Package command builds ready-to-send frames for CBUS control operations.
// Every method is a pure function of the Builder value and its arguments.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danmuck/cbusctl/internal/protocol/frame"
	"github.com/danmuck/cbusctl/internal/protocol/header"
)

var (
	ErrInvalidAddress       = errors.New("command: invalid loco address")
	ErrInvalidSpeed         = errors.New("command: speed step out of range")
	ErrInvalidFunction      = errors.New("command: function number out of range")
	ErrInvalidFunctionGroup = errors.New("command: function group out of range")
	ErrInvalidFunctionMask  = errors.New("command: function mask outside group")
)

const (
	// MaxShortAddress is the first address that requires long addressing.
	MaxShortAddress uint16 = 127
	MaxLongAddress  uint16 = 10239
	MaxSpeedStep    uint8  = 126
	MaxFunction     uint8  = 28

	longAddressBits uint16 = 0xC000
	directionBit    uint8  = 0x80
	speedEStop      uint8  = 0x01

	GLOCSteal uint8 = 0x01
	GLOCShare uint8 = 0x02
)

// Builder carries the bus identity stamped into every frame.
type Builder struct {
	CANID      uint8
	NodeNumber uint16
	Major      uint8
}

// New returns a Builder for canID at normal major priority.
func New(canID uint8) Builder {
	return Builder{CANID: canID, Major: header.MajorNormal}
}

// WithNodeNumber returns a copy that sends short events as nn.
func (b Builder) WithNodeNumber(nn uint16) Builder {
	b.NodeNumber = nn
	return b
}

func (b Builder) build(op byte, fields ...string) (string, error) {
	h, err := header.ForOpcode(op, b.Major, b.CANID)
	if err != nil {
		return "", err
	}
	var body strings.Builder
	body.Grow(2 + 2*len(fields))
	fmt.Fprintf(&body, "%02X", op)
	for _, f := range fields {
		body.WriteString(f)
	}
	return frame.Build(h, body.String())
}

func hex8(v uint8) string   { return fmt.Sprintf("%02X", v) }
func hex16(v uint16) string { return fmt.Sprintf("%04X", v) }
func hex32(v uint32) string { return fmt.Sprintf("%08X", v) }

// LocoAddress returns the 16-bit wire form of a DCC address.
func LocoAddress(addr uint16, long bool) (uint16, error) {
	if long {
		if addr > MaxLongAddress {
			return 0, fmt.Errorf("%w: long address %d > %d", ErrInvalidAddress, addr, MaxLongAddress)
		}
		return addr | longAddressBits, nil
	}
	if addr >= MaxShortAddress {
		return 0, fmt.Errorf("%w: short address %d >= %d", ErrInvalidAddress, addr, MaxShortAddress)
	}
	return addr, nil
}
