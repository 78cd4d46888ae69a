package schema

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

var ErrUnknownOpcode = errors.New("schema: unknown opcode")

// Kind selects how a field's hex digits are interpreted.
type Kind uint8

const (
	// Numeric parses the digits as an unsigned big-endian integer.
	Numeric Kind = iota + 1
	// HexString keeps the digits verbatim.
	HexString
	// Ascii decodes each 2-digit pair as one character.
	Ascii
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case HexString:
		return "hex"
	case Ascii:
		return "ascii"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Format is the fixed layout of one named field. Width counts hex characters.
type Format struct {
	Width int
	Kind  Kind
}

// Entry describes one opcode's body layout.
type Entry struct {
	Opcode      byte
	Mnemonic    string
	Fields      []string
	Priority    uint8
	Description string
}

// Width is the number of hex characters the entry's fields occupy after the opcode.
func (e Entry) Width() int {
	total := 0
	for _, name := range e.Fields {
		total += formats[name].Width
	}
	return total
}

// clone detaches Fields from the registry so callers cannot edit the table.
func (e Entry) clone() Entry {
	e.Fields = slices.Clone(e.Fields)
	return e
}

type ValidationError struct {
	Opcode byte
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema: opcode=%02X: %s", e.Opcode, e.Reason)
	}
	return fmt.Sprintf("schema: opcode=%02X field=%s: %s", e.Opcode, e.Field, e.Reason)
}

var byMnemonic map[string]byte

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
	byMnemonic = make(map[string]byte, len(opcodes))
	for op, entry := range opcodes {
		byMnemonic[entry.Mnemonic] = op
	}
}

// Lookup returns a copy of the registry entry for op.
func Lookup(op byte) (Entry, bool) {
	entry, ok := opcodes[op]
	if !ok {
		return Entry{}, false
	}
	return entry.clone(), true
}

// LookupMnemonic resolves a mnemonic such as "rloc" or "DSPD".
func LookupMnemonic(name string) (Entry, bool) {
	op, ok := byMnemonic[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, false
	}
	return opcodes[op].clone(), true
}

// FormatOf returns the layout for a field name.
func FormatOf(name string) (Format, bool) {
	f, ok := formats[name]
	return f, ok
}

// PriorityOf returns the default minor priority declared for op.
func PriorityOf(op byte) (uint8, error) {
	entry, ok := opcodes[op]
	if !ok {
		return 0, fmt.Errorf("%w: %02X", ErrUnknownOpcode, op)
	}
	return entry.Priority, nil
}

// Entries returns every registered opcode ordered by value.
func Entries() []Entry {
	out := make([]Entry, 0, len(opcodes))
	for _, entry := range opcodes {
		out = append(out, entry.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Opcode < out[j].Opcode
	})
	return out
}

// Validate checks the registry against the field format table.
// Entries are visited in opcode order so the first reported failure is stable.
func Validate() error {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := formats[name]
		if f.Width < 2 || f.Width%2 != 0 {
			return ValidationError{Field: name, Reason: "width must be even and at least 2"}
		}
		if f.Kind < Numeric || f.Kind > Ascii {
			return ValidationError{Field: name, Reason: "unknown kind"}
		}
		if f.Kind == Numeric && f.Width > 16 {
			return ValidationError{Field: name, Reason: "numeric width exceeds 64 bits"}
		}
	}
	if len(opcodes) != len(table) {
		return ValidationError{Reason: "duplicate opcode in table"}
	}
	seen := make(map[string]byte, len(opcodes))
	for _, entry := range Entries() {
		if err := validateEntry(entry, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateEntry(entry Entry, seen map[string]byte) error {
	if entry.Mnemonic == "" {
		return ValidationError{Opcode: entry.Opcode, Reason: "missing mnemonic"}
	}
	if entry.Mnemonic != strings.ToUpper(entry.Mnemonic) {
		return ValidationError{Opcode: entry.Opcode, Reason: "mnemonic must be upper case"}
	}
	if prev, dup := seen[entry.Mnemonic]; dup {
		return ValidationError{Opcode: entry.Opcode, Reason: fmt.Sprintf("mnemonic %s already used by %02X", entry.Mnemonic, prev)}
	}
	seen[entry.Mnemonic] = entry.Opcode
	if entry.Priority > 3 {
		return ValidationError{Opcode: entry.Opcode, Reason: "priority out of range"}
	}
	for _, name := range entry.Fields {
		if _, ok := formats[name]; !ok {
			return ValidationError{Opcode: entry.Opcode, Field: name, Reason: "field has no format"}
		}
	}
	// CBUS encodes the data length in the top three opcode bits.
	if want := 2 * int(entry.Opcode>>5); entry.Width() != want {
		return ValidationError{
			Opcode: entry.Opcode,
			Reason: fmt.Sprintf("layout width %d does not match opcode data length %d", entry.Width(), want),
		}
	}
	return nil
}
