package command

import (
	"fmt"

	"github.com/danmuck/cbusctl/internal/protocol/schema"
)

// AllocateLoco requests a new session for addr (RLOC).
func (b Builder) AllocateLoco(addr uint16, long bool) (string, error) {
	wire, err := LocoAddress(addr, long)
	if err != nil {
		return "", err
	}
	return b.build(schema.OpRLOC, hex16(wire))
}

// StealLoco takes over a session held by another cab (GLOC).
func (b Builder) StealLoco(addr uint16, long bool) (string, error) {
	return b.getLoco(addr, long, GLOCSteal)
}

// ShareLoco joins a session held by another cab (GLOC).
func (b Builder) ShareLoco(addr uint16, long bool) (string, error) {
	return b.getLoco(addr, long, GLOCShare)
}

func (b Builder) getLoco(addr uint16, long bool, mode uint8) (string, error) {
	wire, err := LocoAddress(addr, long)
	if err != nil {
		return "", err
	}
	return b.build(schema.OpGLOC, hex16(wire), hex8(mode))
}

func (b Builder) ReleaseLoco(session uint8) (string, error) {
	return b.build(schema.OpKLOC, hex8(session))
}

func (b Builder) KeepAlive(session uint8) (string, error) {
	return b.build(schema.OpDKEEP, hex8(session))
}

func (b Builder) QueryLoco(session uint8) (string, error) {
	return b.build(schema.OpQLOC, hex8(session))
}

func (b Builder) SetSessionMode(session, mode uint8) (string, error) {
	return b.build(schema.OpSTMOD, hex8(session), hex8(mode))
}

// SetSpeed sends speed step 0..126. Steps above zero are shifted by one on
// the wire because 1 is the emergency stop value.
func (b Builder) SetSpeed(session, step uint8, forward bool) (string, error) {
	if step > MaxSpeedStep {
		return "", fmt.Errorf("%w: %d > %d", ErrInvalidSpeed, step, MaxSpeedStep)
	}
	wire := step
	if step > 0 {
		wire = step + 1
	}
	return b.build(schema.OpDSPD, hex8(session), hex8(SpeedDir(wire, forward)))
}

// EmergencyStopLoco stops one session immediately, keeping its direction.
func (b Builder) EmergencyStopLoco(session uint8, forward bool) (string, error) {
	return b.build(schema.OpDSPD, hex8(session), hex8(SpeedDir(speedEStop, forward)))
}

// SpeedDir packs a raw 7-bit wire speed with the direction bit.
func SpeedDir(wire uint8, forward bool) uint8 {
	v := wire &^ directionBit
	if forward {
		v |= directionBit
	}
	return v
}

// SetFunctionGroup sends one DFUN range with its bitmask.
func (b Builder) SetFunctionGroup(session, group, mask uint8) (string, error) {
	limit, err := groupMask(group)
	if err != nil {
		return "", err
	}
	if mask&^limit != 0 {
		return "", fmt.Errorf("%w: group %d mask %02X", ErrInvalidFunctionMask, group, mask)
	}
	return b.build(schema.OpDFUN, hex8(session), hex8(group), hex8(mask))
}

func (b Builder) FunctionOn(session, fn uint8) (string, error) {
	return b.function(schema.OpDFNON, session, fn)
}

func (b Builder) FunctionOff(session, fn uint8) (string, error) {
	return b.function(schema.OpDFNOF, session, fn)
}

func (b Builder) function(op byte, session, fn uint8) (string, error) {
	if fn > MaxFunction {
		return "", fmt.Errorf("%w: F%d", ErrInvalidFunction, fn)
	}
	return b.build(op, hex8(session), hex8(fn))
}

// FunctionBit maps F0..F28 to its DFUN group and bit.
func FunctionBit(fn uint8) (group, mask uint8, err error) {
	switch {
	case fn == 0:
		return 1, 0x10, nil
	case fn <= 4:
		return 1, 1 << (fn - 1), nil
	case fn <= 8:
		return 2, 1 << (fn - 5), nil
	case fn <= 12:
		return 3, 1 << (fn - 9), nil
	case fn <= 20:
		return 4, 1 << (fn - 13), nil
	case fn <= MaxFunction:
		return 5, 1 << (fn - 21), nil
	default:
		return 0, 0, fmt.Errorf("%w: F%d", ErrInvalidFunction, fn)
	}
}

func groupMask(group uint8) (uint8, error) {
	switch group {
	case 1:
		return 0x1F, nil
	case 2, 3:
		return 0x0F, nil
	case 4, 5:
		return 0xFF, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidFunctionGroup, group)
	}
}
