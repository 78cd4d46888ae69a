package command

import "github.com/danmuck/cbusctl/internal/protocol/schema"

// Discover asks every node to report its node number (QNN).
func (b Builder) Discover() (string, error) {
	return b.build(schema.OpQNN)
}

func (b Builder) RequestNodeParameters() (string, error) {
	return b.build(schema.OpRQNP)
}

func (b Builder) RequestModuleName() (string, error) {
	return b.build(schema.OpRQMN)
}

func (b Builder) ReadNodeParameter(nn uint16, index uint8) (string, error) {
	return b.build(schema.OpRQNPN, hex16(nn), hex8(index))
}

func (b Builder) RequestStatus() (string, error) {
	return b.build(schema.OpRSTAT)
}

func (b Builder) TrackOn() (string, error) {
	return b.build(schema.OpRTON)
}

func (b Builder) TrackOff() (string, error) {
	return b.build(schema.OpRTOF)
}

func (b Builder) EmergencyStopAll() (string, error) {
	return b.build(schema.OpRESTP)
}

// AccessoryOn sends a short event from this node when event fits in 16 bits,
// otherwise a long event carrying the full 32-bit id.
func (b Builder) AccessoryOn(event uint32) (string, error) {
	return b.accessory(event, schema.OpASON, schema.OpACON)
}

func (b Builder) AccessoryOff(event uint32) (string, error) {
	return b.accessory(event, schema.OpASOF, schema.OpACOF)
}

func (b Builder) accessory(event uint32, short, long byte) (string, error) {
	if event <= 0xFFFF {
		return b.build(short, hex16(b.NodeNumber), hex16(uint16(event)))
	}
	return b.build(long, hex32(event))
}
