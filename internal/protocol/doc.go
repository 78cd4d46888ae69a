// Package protocol owns the CBUS line-protocol decode path.
//
// Ownership boundary:
// - table-driven body decode into Message values
// - frame-to-message decode entry points
// - the shared error taxonomy re-exported from the sub-packages
//
// Sub-packages:
// - schema: opcode registry and field format table
// - header: 16-bit priority/CAN id header codec
// - frame: wire framing, stream tokenizer
// - command: frame builders for control operations
package protocol
