package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/cbusctl/internal/protocol/frame"
	"github.com/danmuck/cbusctl/internal/protocol/schema"
	"github.com/rs/zerolog/log"
)

// DecodeFrame parses one complete wire frame and decodes its body.
func DecodeFrame(raw string) (Message, error) {
	f, err := frame.Parse(raw)
	if err != nil {
		return Message{}, err
	}
	msg, err := DecodeBody(f.Body)
	if err != nil {
		return Message{}, err
	}
	msg.Header = f.Header
	return msg, nil
}

// DecodeBody decodes a hex body whose first two digits are the opcode.
func DecodeBody(body string) (Message, error) {
	if len(body) < 2 {
		return Message{}, fmt.Errorf("%w: body length %d", ErrTooShort, len(body))
	}
	op, err := strconv.ParseUint(body[:2], 16, 8)
	if err != nil {
		return Message{}, fmt.Errorf("%w: opcode %q", ErrMalformedBody, body[:2])
	}
	return Decode(byte(op), body[2:])
}

// Decode walks the registered layout for op over data. Unknown opcodes and
// short or overlong data are reported through Outcome. Non-hex data fails.
func Decode(op byte, data string) (Message, error) {
	if err := checkHex(data); err != nil {
		return Message{}, err
	}
	entry, ok := schema.Lookup(op)
	if !ok {
		log.Debug().Str("opcode", fmt.Sprintf("%02X", op)).Msg("protocol.Decode unknown opcode")
		return Message{Opcode: op, Mnemonic: MnemonicUnknown, Outcome: OutcomeUnknownOpcode}, nil
	}

	msg := Message{
		Opcode:   op,
		Mnemonic: entry.Mnemonic,
		Fields:   make([]Field, 0, len(entry.Fields)),
	}
	rest := data
	for _, name := range entry.Fields {
		format, _ := schema.FormatOf(name)
		if len(rest) < format.Width {
			msg.Fields = append(msg.Fields, Field{Name: name, Value: Value{Kind: format.Kind, Insufficient: true}})
			msg.Outcome = OutcomeInsufficientData
			return msg, nil
		}
		msg.Fields = append(msg.Fields, Field{Name: name, Value: decodeValue(format, rest[:format.Width])})
		rest = rest[format.Width:]
	}
	if rest != "" {
		msg.Extra = strings.ToUpper(rest)
		msg.Outcome = OutcomeExtraData
	}
	return msg, nil
}

func decodeValue(format schema.Format, digits string) Value {
	v := Value{Kind: format.Kind}
	switch format.Kind {
	case schema.Numeric:
		// digits are validated hex and the width is bounded by the schema.
		v.Uint, _ = strconv.ParseUint(digits, 16, 64)
	case schema.HexString:
		v.Text = strings.ToUpper(digits)
	case schema.Ascii:
		// Each byte is one character code. Codes above 0x7F are read as Latin-1
		// so Text is always valid UTF-8.
		var b strings.Builder
		b.Grow(len(digits) / 2)
		for i := 0; i+2 <= len(digits); i += 2 {
			c, _ := strconv.ParseUint(digits[i:i+2], 16, 8)
			b.WriteRune(rune(c))
		}
		v.Text = b.String()
	}
	return v
}

func checkHex(data string) error {
	for i := 0; i < len(data); i++ {
		c := data[i]
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f') {
			continue
		}
		return fmt.Errorf("%w: non-hex %q at %d", ErrMalformedBody, c, i)
	}
	return nil
}
