package schema

// Field names used by opcode layouts.
const (
	FieldSession     = "Session"
	FieldAddress     = "AddrHigh_AddrLow"
	FieldSpeedDir    = "Speed_Dir"
	FieldFlags       = "Flags"
	FieldFn1         = "Fn1"
	FieldFn2         = "Fn2"
	FieldFn3         = "Fn3"
	FieldFnNum       = "FnNum"
	FieldMode        = "Mode"
	FieldStatus      = "Status"
	FieldAllocCode   = "AllocCode"
	FieldConsistAddr = "ConsistAddr"
	FieldConsistID   = "ConsistID"
	FieldIndex       = "Index"
	FieldDebugStatus = "DebugStatus"

	FieldNodeNumber   = "NodeNumber"
	FieldEventNumber  = "EventNumber"
	FieldDeviceNumber = "DeviceNumber"
	FieldEventID      = "EventID"
	FieldNVIndex      = "NVIndex"
	FieldNVValue      = "NVValue"
	FieldENIndex      = "ENIndex"
	FieldEVIndex      = "EVIndex"
	FieldEVValue      = "EVValue"
	FieldEVSpace      = "EVSpace"
	FieldParaIndex    = "ParaIndex"
	FieldParaValue    = "ParaValue"
	FieldNumEvents    = "NumEvents"
	FieldCANID        = "CAN_ID"
	FieldManuID       = "ManuID"
	FieldModuleID     = "ModuleID"
	FieldError        = "Error"
	FieldName         = "Name"

	FieldCSNum = "CSNum"
	FieldMajor = "Major"
	FieldMinor = "Minor"
	FieldBuild = "Build"

	FieldCV      = "CV"
	FieldCVValue = "CVValue"
	FieldRepeat  = "Repeat"

	FieldDat1 = "Dat1"
	FieldDat2 = "Dat2"
	FieldDat3 = "Dat3"
	FieldDat4 = "Dat4"
	FieldDat5 = "Dat5"

	FieldExtOpcode = "Ext_OPC"
	FieldByte1     = "Byte1"
	FieldByte2     = "Byte2"
	FieldByte3     = "Byte3"
	FieldByte4     = "Byte4"
	FieldByte5     = "Byte5"
	FieldByte6     = "Byte6"

	FieldParam1 = "Param1"
	FieldParam2 = "Param2"
	FieldParam3 = "Param3"
	FieldParam4 = "Param4"
	FieldParam5 = "Param5"
	FieldParam6 = "Param6"
	FieldParam7 = "Param7"

	FieldMinutes = "Minutes"
	FieldHours   = "Hours"
	FieldWeekDay = "WeekDay"
	FieldDay     = "Day"
	FieldMonth   = "Month"
	FieldTemp    = "Temp"
)

var (
	byteField = Format{Width: 2, Kind: Numeric}
	wordField = Format{Width: 4, Kind: Numeric}
)

var formats = map[string]Format{
	FieldSession:     byteField,
	FieldAddress:     wordField,
	FieldSpeedDir:    byteField,
	FieldFlags:       byteField,
	FieldFn1:         byteField,
	FieldFn2:         byteField,
	FieldFn3:         byteField,
	FieldFnNum:       byteField,
	FieldMode:        byteField,
	FieldStatus:      byteField,
	FieldAllocCode:   byteField,
	FieldConsistAddr: byteField,
	FieldConsistID:   byteField,
	FieldIndex:       byteField,
	FieldDebugStatus: byteField,

	FieldNodeNumber:   wordField,
	FieldEventNumber:  wordField,
	FieldDeviceNumber: wordField,
	FieldEventID:      {Width: 8, Kind: Numeric},
	FieldNVIndex:      byteField,
	FieldNVValue:      byteField,
	FieldENIndex:      byteField,
	FieldEVIndex:      byteField,
	FieldEVValue:      byteField,
	FieldEVSpace:      byteField,
	FieldParaIndex:    byteField,
	FieldParaValue:    byteField,
	FieldNumEvents:    byteField,
	FieldCANID:        byteField,
	FieldManuID:       byteField,
	FieldModuleID:     byteField,
	FieldError:        byteField,
	FieldName:         {Width: 14, Kind: Ascii},

	FieldCSNum: byteField,
	FieldMajor: byteField,
	FieldMinor: byteField,
	FieldBuild: byteField,

	FieldCV:      wordField,
	FieldCVValue: byteField,
	FieldRepeat:  byteField,

	FieldDat1: byteField,
	FieldDat2: byteField,
	FieldDat3: byteField,
	FieldDat4: byteField,
	FieldDat5: byteField,

	FieldExtOpcode: {Width: 2, Kind: HexString},
	FieldByte1:     byteField,
	FieldByte2:     byteField,
	FieldByte3:     byteField,
	FieldByte4:     byteField,
	FieldByte5:     byteField,
	FieldByte6:     byteField,

	FieldParam1: byteField,
	FieldParam2: byteField,
	FieldParam3: byteField,
	FieldParam4: byteField,
	FieldParam5: byteField,
	FieldParam6: byteField,
	FieldParam7: byteField,

	FieldMinutes: byteField,
	FieldHours:   byteField,
	FieldWeekDay: byteField,
	FieldDay:     byteField,
	FieldMonth:   byteField,
	FieldTemp:    byteField,
}
