package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danmuck/cbusctl/internal/protocol/header"
)

const (
	StartMarker  byte = ':'
	EndMarker    byte = ';'
	TypeStandard byte = 'S'
	TypeExtended byte = 'X'
	FlagNormal   byte = 'N'
	FlagRemote   byte = 'R'

	// MinLen covers markers, type, header, flag and a one-byte opcode.
	MinLen = 1 + 1 + header.HexLen + 1 + 2 + 1
	// MaxBodyLen is eight CAN data bytes as hex.
	MaxBodyLen = 16

	bodyOffset = 2 + header.HexLen + 1
)

var (
	ErrTooShort             = errors.New("frame: too short")
	ErrMissingMarker        = errors.New("frame: missing start or end marker")
	ErrUnsupportedFrameType = errors.New("frame: unsupported frame type")
	ErrMalformedBody        = errors.New("frame: malformed body")
)

// Frame is one parsed wire frame.
type Frame struct {
	Raw    string
	Header header.Header
	Flag   byte
	Body   string
}

// Remote reports whether the frame carried the remote-request flag.
func (f Frame) Remote() bool {
	return f.Flag == FlagRemote
}

// Parse validates raw and splits it into header and body.
func Parse(raw string) (Frame, error) {
	if len(raw) < 2 {
		return Frame{}, fmt.Errorf("%w: length %d", ErrTooShort, len(raw))
	}
	if raw[0] != StartMarker || raw[len(raw)-1] != EndMarker {
		return Frame{}, ErrMissingMarker
	}
	if raw[1] != TypeStandard {
		return Frame{}, fmt.Errorf("%w: %q", ErrUnsupportedFrameType, raw[1])
	}
	if len(raw) < MinLen {
		return Frame{}, fmt.Errorf("%w: length %d < %d", ErrTooShort, len(raw), MinLen)
	}
	h, err := header.Decode(raw[2 : 2+header.HexLen])
	if err != nil {
		return Frame{}, err
	}
	body := raw[bodyOffset : len(raw)-1]
	if err := ValidateBody(body); err != nil {
		return Frame{}, err
	}
	return Frame{
		Raw:    raw,
		Header: h,
		Flag:   raw[2+header.HexLen],
		Body:   body,
	}, nil
}

// ValidateBody checks that body is an even run of at most MaxBodyLen hex digits.
func ValidateBody(body string) error {
	if len(body)%2 != 0 {
		return fmt.Errorf("%w: odd length %d", ErrMalformedBody, len(body))
	}
	if len(body) > MaxBodyLen {
		return fmt.Errorf("%w: length %d > %d", ErrMalformedBody, len(body), MaxBodyLen)
	}
	for i := 0; i < len(body); i++ {
		if !isHex(body[i]) {
			return fmt.Errorf("%w: non-hex %q at %d", ErrMalformedBody, body[i], i)
		}
	}
	return nil
}

// Prefix renders the start marker, type, header and normal flag.
func Prefix(h header.Header) (string, error) {
	hex, err := header.Encode(h)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(bodyOffset)
	b.WriteByte(StartMarker)
	b.WriteByte(TypeStandard)
	b.WriteString(hex)
	b.WriteByte(FlagNormal)
	return b.String(), nil
}

// Build returns the complete frame string for h and body.
func Build(h header.Header, body string) (string, error) {
	if len(body) < 2 {
		return "", fmt.Errorf("%w: body length %d", ErrTooShort, len(body))
	}
	if err := ValidateBody(body); err != nil {
		return "", err
	}
	prefix, err := Prefix(h)
	if err != nil {
		return "", err
	}
	return prefix + strings.ToUpper(body) + string(EndMarker), nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}
