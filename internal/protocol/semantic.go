package protocol

import (
	"fmt"
	"strings"
)

// Map renders the message as a flat field map keyed by field name, with the
// mnemonic under KeyOpcode and leftover digits under KeyExtraData.
func (m Message) Map() map[string]any {
	out := make(map[string]any, len(m.Fields)+2)
	out[KeyOpcode] = m.Mnemonic
	for _, f := range m.Fields {
		out[f.Name] = f.Value.Interface()
	}
	if m.Extra != "" {
		out[KeyExtraData] = m.Extra
	}
	return out
}

// String renders the message on one line in layout order.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Mnemonic)
	if !m.Known() {
		fmt.Fprintf(&b, "(%02X)", m.Opcode)
	}
	for _, f := range m.Fields {
		b.WriteByte(' ')
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(f.Value.String())
	}
	if m.Extra != "" {
		b.WriteString(" ")
		b.WriteString(KeyExtraData)
		b.WriteString("=")
		b.WriteString(m.Extra)
	}
	return b.String()
}
