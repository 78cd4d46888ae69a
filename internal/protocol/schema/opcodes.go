package schema

// Opcode values referenced by builders and consumers.
const (
	OpACK   byte = 0x00
	OpHLT   byte = 0x02
	OpBON   byte = 0x03
	OpTOF   byte = 0x04
	OpTON   byte = 0x05
	OpESTOP byte = 0x06
	OpRTOF  byte = 0x08
	OpRTON  byte = 0x09
	OpRESTP byte = 0x0A
	OpRSTAT byte = 0x0C
	OpQNN   byte = 0x0D
	OpRQNP  byte = 0x10
	OpRQMN  byte = 0x11
	OpKLOC  byte = 0x21
	OpQLOC  byte = 0x22
	OpDKEEP byte = 0x23
	OpRLOC  byte = 0x40
	OpSTMOD byte = 0x44
	OpDSPD  byte = 0x47
	OpDFNON byte = 0x49
	OpDFNOF byte = 0x4A
	OpDFUN  byte = 0x60
	OpGLOC  byte = 0x61
	OpPLOC  byte = 0xE1
	OpRQNPN byte = 0x73
	OpACON  byte = 0x90
	OpACOF  byte = 0x91
	OpASON  byte = 0x98
	OpASOF  byte = 0x99
	OpERR   byte = 0x63
	OpSTAT  byte = 0xE3
)

var table = []Entry{
	{Opcode: 0x00, Mnemonic: "ACK", Priority: 2, Description: "General acknowledgement"},
	{Opcode: 0x01, Mnemonic: "NAK", Priority: 2, Description: "General no acknowledgement"},
	{Opcode: 0x02, Mnemonic: "HLT", Priority: 0, Description: "Bus halt"},
	{Opcode: 0x03, Mnemonic: "BON", Priority: 0, Description: "Bus on"},
	{Opcode: 0x04, Mnemonic: "TOF", Priority: 0, Description: "Track off"},
	{Opcode: 0x05, Mnemonic: "TON", Priority: 0, Description: "Track on"},
	{Opcode: 0x06, Mnemonic: "ESTOP", Priority: 0, Description: "Emergency stop"},
	{Opcode: 0x07, Mnemonic: "ARST", Priority: 0, Description: "System reset"},
	{Opcode: 0x08, Mnemonic: "RTOF", Priority: 0, Description: "Request track off"},
	{Opcode: 0x09, Mnemonic: "RTON", Priority: 0, Description: "Request track on"},
	{Opcode: 0x0A, Mnemonic: "RESTP", Priority: 0, Description: "Request emergency stop all"},
	{Opcode: 0x0C, Mnemonic: "RSTAT", Priority: 2, Description: "Request command station status"},
	{Opcode: 0x0D, Mnemonic: "QNN", Priority: 3, Description: "Query node number"},
	{Opcode: 0x10, Mnemonic: "RQNP", Priority: 3, Description: "Request node parameters"},
	{Opcode: 0x11, Mnemonic: "RQMN", Priority: 3, Description: "Request module name"},
	{Opcode: 0x21, Mnemonic: "KLOC", Fields: []string{FieldSession}, Priority: 2, Description: "Release engine"},
	{Opcode: 0x22, Mnemonic: "QLOC", Fields: []string{FieldSession}, Priority: 2, Description: "Query engine"},
	{Opcode: 0x23, Mnemonic: "DKEEP", Fields: []string{FieldSession}, Priority: 2, Description: "Session keep alive"},
	{Opcode: 0x30, Mnemonic: "DBG1", Fields: []string{FieldDebugStatus}, Priority: 2, Description: "Debug with one data byte"},
	{Opcode: 0x3F, Mnemonic: "EXTC", Fields: []string{FieldExtOpcode}, Priority: 3, Description: "Extended opcode with no additional bytes"},
	{Opcode: 0x40, Mnemonic: "RLOC", Fields: []string{FieldAddress}, Priority: 2, Description: "Request engine session"},
	{Opcode: 0x41, Mnemonic: "QCON", Fields: []string{FieldConsistID, FieldIndex}, Priority: 2, Description: "Query consist"},
	{Opcode: 0x42, Mnemonic: "SNN", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Set node number"},
	{Opcode: 0x43, Mnemonic: "ALOC", Fields: []string{FieldSession, FieldAllocCode}, Priority: 2, Description: "Allocate loco to activity"},
	{Opcode: 0x44, Mnemonic: "STMOD", Fields: []string{FieldSession, FieldMode}, Priority: 2, Description: "Set throttle mode"},
	{Opcode: 0x45, Mnemonic: "PCON", Fields: []string{FieldSession, FieldConsistAddr}, Priority: 2, Description: "Consist engine"},
	{Opcode: 0x46, Mnemonic: "KCON", Fields: []string{FieldSession, FieldConsistAddr}, Priority: 2, Description: "Remove engine from consist"},
	{Opcode: 0x47, Mnemonic: "DSPD", Fields: []string{FieldSession, FieldSpeedDir}, Priority: 2, Description: "Set engine speed and direction"},
	{Opcode: 0x48, Mnemonic: "DFLG", Fields: []string{FieldSession, FieldFlags}, Priority: 2, Description: "Set engine flags"},
	{Opcode: 0x49, Mnemonic: "DFNON", Fields: []string{FieldSession, FieldFnNum}, Priority: 2, Description: "Set engine function on"},
	{Opcode: 0x4A, Mnemonic: "DFNOF", Fields: []string{FieldSession, FieldFnNum}, Priority: 2, Description: "Set engine function off"},
	{Opcode: 0x4C, Mnemonic: "SSTAT", Fields: []string{FieldSession, FieldStatus}, Priority: 2, Description: "Service mode status"},
	{Opcode: 0x4F, Mnemonic: "NNRSM", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Reset to manufacturer defaults"},
	{Opcode: 0x50, Mnemonic: "RQNN", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Request node number"},
	{Opcode: 0x51, Mnemonic: "NNREL", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Node number release"},
	{Opcode: 0x52, Mnemonic: "NNACK", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Node number acknowledge"},
	{Opcode: 0x53, Mnemonic: "NNLRN", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Set node into learn mode"},
	{Opcode: 0x54, Mnemonic: "NNULN", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Release node from learn mode"},
	{Opcode: 0x55, Mnemonic: "NNCLR", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Clear all events from a node"},
	{Opcode: 0x56, Mnemonic: "NNEVN", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Read number of events available in a node"},
	{Opcode: 0x57, Mnemonic: "NERD", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Read back all stored events in a node"},
	{Opcode: 0x58, Mnemonic: "RQEVN", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Request to read number of stored events"},
	{Opcode: 0x59, Mnemonic: "WRACK", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Write acknowledge"},
	{Opcode: 0x5A, Mnemonic: "RQDAT", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Request node data event"},
	{Opcode: 0x5B, Mnemonic: "RQDDS", Fields: []string{FieldDeviceNumber}, Priority: 3, Description: "Request device data short mode"},
	{Opcode: 0x5C, Mnemonic: "BOOTM", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Put node into bootload mode"},
	{Opcode: 0x5D, Mnemonic: "ENUM", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Force self enumeration for CAN_ID"},
	{Opcode: 0x5E, Mnemonic: "NNRST", Fields: []string{FieldNodeNumber}, Priority: 3, Description: "Restart node"},
	{Opcode: 0x5F, Mnemonic: "EXTC1", Fields: []string{FieldExtOpcode, FieldByte1}, Priority: 3, Description: "Extended opcode with one additional byte"},
	{Opcode: 0x60, Mnemonic: "DFUN", Fields: []string{FieldSession, FieldFn1, FieldFn2}, Priority: 2, Description: "Set engine functions"},
	{Opcode: 0x61, Mnemonic: "GLOC", Fields: []string{FieldAddress, FieldFlags}, Priority: 2, Description: "Get engine session"},
	{Opcode: 0x63, Mnemonic: "ERR", Fields: []string{FieldDat1, FieldDat2, FieldDat3}, Priority: 2, Description: "Command station error report"},
	{Opcode: 0x6F, Mnemonic: "CMDERR", Fields: []string{FieldNodeNumber, FieldError}, Priority: 3, Description: "Error messages from nodes during configuration"},
	{Opcode: 0x70, Mnemonic: "EVNLF", Fields: []string{FieldNodeNumber, FieldEVSpace}, Priority: 3, Description: "Event space left reply"},
	{Opcode: 0x71, Mnemonic: "NVRD", Fields: []string{FieldNodeNumber, FieldNVIndex}, Priority: 3, Description: "Request read of a node variable"},
	{Opcode: 0x72, Mnemonic: "NENRD", Fields: []string{FieldNodeNumber, FieldENIndex}, Priority: 3, Description: "Request read of stored event by index"},
	{Opcode: 0x73, Mnemonic: "RQNPN", Fields: []string{FieldNodeNumber, FieldParaIndex}, Priority: 3, Description: "Request read of a node parameter by index"},
	{Opcode: 0x74, Mnemonic: "NUMEV", Fields: []string{FieldNodeNumber, FieldNumEvents}, Priority: 3, Description: "Number of events stored in node"},
	{Opcode: 0x75, Mnemonic: "CANID", Fields: []string{FieldNodeNumber, FieldCANID}, Priority: 3, Description: "Set a CAN_ID in existing FLiM node"},
	{Opcode: 0x7F, Mnemonic: "EXTC2", Fields: []string{FieldExtOpcode, FieldByte1, FieldByte2}, Priority: 3, Description: "Extended opcode with two additional bytes"},
	{Opcode: 0x80, Mnemonic: "RDCC3", Fields: []string{FieldRepeat, FieldByte1, FieldByte2, FieldByte3}, Priority: 2, Description: "Request 3-byte DCC packet"},
	{Opcode: 0x82, Mnemonic: "WCVO", Fields: []string{FieldSession, FieldCV, FieldCVValue}, Priority: 2, Description: "Write CV in ops mode"},
	{Opcode: 0x83, Mnemonic: "WCVB", Fields: []string{FieldSession, FieldCV, FieldCVValue}, Priority: 2, Description: "Write CV bit in ops mode"},
	{Opcode: 0x84, Mnemonic: "QCVS", Fields: []string{FieldSession, FieldCV, FieldMode}, Priority: 2, Description: "Read CV"},
	{Opcode: 0x85, Mnemonic: "PCVS", Fields: []string{FieldSession, FieldCV, FieldCVValue}, Priority: 2, Description: "Report CV"},
	{Opcode: 0x90, Mnemonic: "ACON", Fields: []string{FieldNodeNumber, FieldEventNumber}, Priority: 3, Description: "Accessory on long event"},
	{Opcode: 0x91, Mnemonic: "ACOF", Fields: []string{FieldNodeNumber, FieldEventNumber}, Priority: 3, Description: "Accessory off long event"},
	{Opcode: 0x92, Mnemonic: "AREQ", Fields: []string{FieldNodeNumber, FieldEventNumber}, Priority: 3, Description: "Accessory request event"},
	{Opcode: 0x93, Mnemonic: "ARON", Fields: []string{FieldNodeNumber, FieldEventNumber}, Priority: 3, Description: "Accessory response event on"},
	{Opcode: 0x94, Mnemonic: "AROF", Fields: []string{FieldNodeNumber, FieldEventNumber}, Priority: 3, Description: "Accessory response event off"},
	{Opcode: 0x95, Mnemonic: "EVULN", Fields: []string{FieldNodeNumber, FieldEventNumber}, Priority: 3, Description: "Unlearn an event in learn mode"},
	{Opcode: 0x96, Mnemonic: "NVSET", Fields: []string{FieldNodeNumber, FieldNVIndex, FieldNVValue}, Priority: 3, Description: "Set a node variable"},
	{Opcode: 0x97, Mnemonic: "NVANS", Fields: []string{FieldNodeNumber, FieldNVIndex, FieldNVValue}, Priority: 3, Description: "Response to a request for a node variable value"},
	{Opcode: 0x98, Mnemonic: "ASON", Fields: []string{FieldNodeNumber, FieldDeviceNumber}, Priority: 3, Description: "Accessory short on"},
	{Opcode: 0x99, Mnemonic: "ASOF", Fields: []string{FieldNodeNumber, FieldDeviceNumber}, Priority: 3, Description: "Accessory short off"},
	{Opcode: 0x9A, Mnemonic: "ASRQ", Fields: []string{FieldNodeNumber, FieldDeviceNumber}, Priority: 3, Description: "Accessory short request event"},
	{Opcode: 0x9B, Mnemonic: "PARAN", Fields: []string{FieldNodeNumber, FieldParaIndex, FieldParaValue}, Priority: 3, Description: "Response to request for individual node parameter"},
	{Opcode: 0x9C, Mnemonic: "REVAL", Fields: []string{FieldNodeNumber, FieldENIndex, FieldEVIndex}, Priority: 3, Description: "Request for read of an event variable"},
	{Opcode: 0x9D, Mnemonic: "ARSON", Fields: []string{FieldNodeNumber, FieldDeviceNumber}, Priority: 3, Description: "Accessory short response event on"},
	{Opcode: 0x9E, Mnemonic: "ARSOF", Fields: []string{FieldNodeNumber, FieldDeviceNumber}, Priority: 3, Description: "Accessory short response event off"},
	{Opcode: 0x9F, Mnemonic: "EXTC3", Fields: []string{FieldExtOpcode, FieldByte1, FieldByte2, FieldByte3}, Priority: 3, Description: "Extended opcode with three additional bytes"},
	{Opcode: 0xA0, Mnemonic: "RDCC4", Fields: []string{FieldRepeat, FieldByte1, FieldByte2, FieldByte3, FieldByte4}, Priority: 2, Description: "Request 4-byte DCC packet"},
	{Opcode: 0xA2, Mnemonic: "WCVS", Fields: []string{FieldSession, FieldCV, FieldMode, FieldCVValue}, Priority: 2, Description: "Write CV in service mode"},
	{Opcode: 0xB0, Mnemonic: "ACON1", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1}, Priority: 3, Description: "Accessory on long event with one data byte"},
	{Opcode: 0xB1, Mnemonic: "ACOF1", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1}, Priority: 3, Description: "Accessory off long event with one data byte"},
	{Opcode: 0xB2, Mnemonic: "REQEV", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldEVIndex}, Priority: 3, Description: "Read event variable in learn mode"},
	{Opcode: 0xB3, Mnemonic: "ARON1", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1}, Priority: 3, Description: "Accessory on response event with one data byte"},
	{Opcode: 0xB4, Mnemonic: "AROF1", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1}, Priority: 3, Description: "Accessory off response event with one data byte"},
	{Opcode: 0xB5, Mnemonic: "NEVAL", Fields: []string{FieldNodeNumber, FieldENIndex, FieldEVIndex, FieldEVValue}, Priority: 3, Description: "Response to request for read of event variable"},
	{Opcode: 0xB6, Mnemonic: "PNN", Fields: []string{FieldNodeNumber, FieldManuID, FieldModuleID, FieldFlags}, Priority: 3, Description: "Response to query node"},
	{Opcode: 0xB8, Mnemonic: "ASON1", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1}, Priority: 3, Description: "Accessory short on with one data byte"},
	{Opcode: 0xB9, Mnemonic: "ASOF1", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1}, Priority: 3, Description: "Accessory short off with one data byte"},
	{Opcode: 0xBD, Mnemonic: "ARSON1", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1}, Priority: 3, Description: "Short response event on with one data byte"},
	{Opcode: 0xBE, Mnemonic: "ARSOF1", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1}, Priority: 3, Description: "Short response event off with one data byte"},
	{Opcode: 0xBF, Mnemonic: "EXTC4", Fields: []string{FieldExtOpcode, FieldByte1, FieldByte2, FieldByte3, FieldByte4}, Priority: 3, Description: "Extended opcode with four additional bytes"},
	{Opcode: 0xC0, Mnemonic: "RDCC5", Fields: []string{FieldRepeat, FieldByte1, FieldByte2, FieldByte3, FieldByte4, FieldByte5}, Priority: 2, Description: "Request 5-byte DCC packet"},
	{Opcode: 0xC1, Mnemonic: "WCVOA", Fields: []string{FieldAddress, FieldCV, FieldMode, FieldCVValue}, Priority: 2, Description: "Write CV in ops mode by address"},
	{Opcode: 0xCF, Mnemonic: "FCLK", Fields: []string{FieldMinutes, FieldHours, FieldWeekDay, FieldDay, FieldMonth, FieldTemp}, Priority: 3, Description: "Fast clock"},
	{Opcode: 0xD0, Mnemonic: "ACON2", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1, FieldDat2}, Priority: 3, Description: "Accessory on long event with two data bytes"},
	{Opcode: 0xD1, Mnemonic: "ACOF2", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1, FieldDat2}, Priority: 3, Description: "Accessory off long event with two data bytes"},
	{Opcode: 0xD2, Mnemonic: "EVLRN", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldEVIndex, FieldEVValue}, Priority: 3, Description: "Teach an event in learn mode"},
	{Opcode: 0xD3, Mnemonic: "EVANS", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldEVIndex, FieldEVValue}, Priority: 3, Description: "Response to a request for an event variable value"},
	{Opcode: 0xD4, Mnemonic: "ARON2", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1, FieldDat2}, Priority: 3, Description: "Accessory on response event with two data bytes"},
	{Opcode: 0xD5, Mnemonic: "AROF2", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1, FieldDat2}, Priority: 3, Description: "Accessory off response event with two data bytes"},
	{Opcode: 0xD8, Mnemonic: "ASON2", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1, FieldDat2}, Priority: 3, Description: "Accessory short on with two data bytes"},
	{Opcode: 0xD9, Mnemonic: "ASOF2", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1, FieldDat2}, Priority: 3, Description: "Accessory short off with two data bytes"},
	{Opcode: 0xDD, Mnemonic: "ARSON2", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1, FieldDat2}, Priority: 3, Description: "Short response event on with two data bytes"},
	{Opcode: 0xDE, Mnemonic: "ARSOF2", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1, FieldDat2}, Priority: 3, Description: "Short response event off with two data bytes"},
	{Opcode: 0xDF, Mnemonic: "EXTC5", Fields: []string{FieldExtOpcode, FieldByte1, FieldByte2, FieldByte3, FieldByte4, FieldByte5}, Priority: 3, Description: "Extended opcode with five additional bytes"},
	{Opcode: 0xE0, Mnemonic: "RDCC6", Fields: []string{FieldRepeat, FieldByte1, FieldByte2, FieldByte3, FieldByte4, FieldByte5, FieldByte6}, Priority: 2, Description: "Request 6-byte DCC packet"},
	{Opcode: 0xE1, Mnemonic: "PLOC", Fields: []string{FieldSession, FieldAddress, FieldSpeedDir, FieldFn1, FieldFn2, FieldFn3}, Priority: 2, Description: "Engine report"},
	{Opcode: 0xE2, Mnemonic: "NAME", Fields: []string{FieldName}, Priority: 3, Description: "Response to request for node name string"},
	{Opcode: 0xE3, Mnemonic: "STAT", Fields: []string{FieldNodeNumber, FieldCSNum, FieldFlags, FieldMajor, FieldMinor, FieldBuild}, Priority: 2, Description: "Command station status report"},
	{Opcode: 0xEF, Mnemonic: "PARAMS", Fields: []string{FieldParam1, FieldParam2, FieldParam3, FieldParam4, FieldParam5, FieldParam6, FieldParam7}, Priority: 3, Description: "Response to request for node parameters"},
	{Opcode: 0xF0, Mnemonic: "ACON3", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1, FieldDat2, FieldDat3}, Priority: 3, Description: "Accessory on long event with three data bytes"},
	{Opcode: 0xF1, Mnemonic: "ACOF3", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1, FieldDat2, FieldDat3}, Priority: 3, Description: "Accessory off long event with three data bytes"},
	{Opcode: 0xF2, Mnemonic: "ENRSP", Fields: []string{FieldNodeNumber, FieldEventID, FieldENIndex}, Priority: 3, Description: "Response to request to read node events"},
	{Opcode: 0xF3, Mnemonic: "ARON3", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1, FieldDat2, FieldDat3}, Priority: 3, Description: "Accessory on response event with three data bytes"},
	{Opcode: 0xF4, Mnemonic: "AROF3", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldDat1, FieldDat2, FieldDat3}, Priority: 3, Description: "Accessory off response event with three data bytes"},
	{Opcode: 0xF5, Mnemonic: "EVLRNI", Fields: []string{FieldNodeNumber, FieldEventNumber, FieldENIndex, FieldEVIndex, FieldEVValue}, Priority: 3, Description: "Teach an event in learn mode using event indexing"},
	{Opcode: 0xF6, Mnemonic: "ACDAT", Fields: []string{FieldNodeNumber, FieldDat1, FieldDat2, FieldDat3, FieldDat4, FieldDat5}, Priority: 3, Description: "Accessory node data event"},
	{Opcode: 0xF7, Mnemonic: "ARDAT", Fields: []string{FieldNodeNumber, FieldDat1, FieldDat2, FieldDat3, FieldDat4, FieldDat5}, Priority: 3, Description: "Accessory node data response"},
	{Opcode: 0xF8, Mnemonic: "ASON3", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1, FieldDat2, FieldDat3}, Priority: 3, Description: "Accessory short on with three data bytes"},
	{Opcode: 0xF9, Mnemonic: "ASOF3", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1, FieldDat2, FieldDat3}, Priority: 3, Description: "Accessory short off with three data bytes"},
	{Opcode: 0xFA, Mnemonic: "DDES", Fields: []string{FieldDeviceNumber, FieldDat1, FieldDat2, FieldDat3, FieldDat4, FieldDat5}, Priority: 3, Description: "Device data event short mode"},
	{Opcode: 0xFB, Mnemonic: "DDRS", Fields: []string{FieldDeviceNumber, FieldDat1, FieldDat2, FieldDat3, FieldDat4, FieldDat5}, Priority: 3, Description: "Device data response short mode"},
	{Opcode: 0xFD, Mnemonic: "ARSON3", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1, FieldDat2, FieldDat3}, Priority: 3, Description: "Short response event on with three data bytes"},
	{Opcode: 0xFE, Mnemonic: "ARSOF3", Fields: []string{FieldNodeNumber, FieldDeviceNumber, FieldDat1, FieldDat2, FieldDat3}, Priority: 3, Description: "Short response event off with three data bytes"},
	{Opcode: 0xFF, Mnemonic: "EXTC6", Fields: []string{FieldExtOpcode, FieldByte1, FieldByte2, FieldByte3, FieldByte4, FieldByte5, FieldByte6}, Priority: 3, Description: "Extended opcode with six additional bytes"},
}

var opcodes = index(table)

func index(entries []Entry) map[byte]Entry {
	out := make(map[byte]Entry, len(entries))
	for _, entry := range entries {
		out[entry.Opcode] = entry
	}
	return out
}
