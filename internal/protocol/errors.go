package protocol

import (
	"errors"

	"github.com/danmuck/cbusctl/internal/protocol/command"
	"github.com/danmuck/cbusctl/internal/protocol/frame"
	"github.com/danmuck/cbusctl/internal/protocol/header"
	"github.com/danmuck/cbusctl/internal/protocol/schema"
)

// Hard failures. Unknown opcodes and truncated bodies during decode are
// reported through Message.Outcome instead.
var (
	ErrTooShort             = frame.ErrTooShort
	ErrMissingMarker        = frame.ErrMissingMarker
	ErrUnsupportedFrameType = frame.ErrUnsupportedFrameType
	ErrMalformedBody        = frame.ErrMalformedBody
	ErrMalformedHeader      = header.ErrMalformedHeader
	ErrInvalidPriority      = header.ErrInvalidPriority
	ErrInvalidCANID         = header.ErrInvalidCANID
	ErrUnknownOpcode        = schema.ErrUnknownOpcode
	ErrInvalidAddress       = command.ErrInvalidAddress
	ErrInvalidSpeed         = command.ErrInvalidSpeed
	ErrInvalidFunction      = command.ErrInvalidFunction
	ErrInvalidFunctionGroup = command.ErrInvalidFunctionGroup
	ErrInvalidFunctionMask  = command.ErrInvalidFunctionMask
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrTooShort, "too_short"},
	{ErrMissingMarker, "missing_marker"},
	{ErrUnsupportedFrameType, "unsupported_frame_type"},
	{ErrMalformedBody, "malformed_body"},
	{ErrMalformedHeader, "malformed_header"},
	{ErrInvalidPriority, "invalid_priority"},
	{ErrInvalidCANID, "invalid_can_id"},
	{ErrUnknownOpcode, "unknown_opcode"},
	{ErrInvalidAddress, "invalid_address"},
	{ErrInvalidSpeed, "invalid_speed"},
	{ErrInvalidFunction, "invalid_function"},
	{ErrInvalidFunctionGroup, "invalid_function_group"},
	{ErrInvalidFunctionMask, "invalid_function_mask"},
}

// ErrorKind names the taxonomy member err wraps, for metric labels and logs.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "other"
}
