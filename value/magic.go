package value

// Magic is the 16-byte GUID-shaped prefix that marks every on-wire
// typed value in the AA object format.
var Magic = [16]byte{
	0xB1, 0x55, 0xD9, 0x51, 0x86, 0xB0, 0xD2, 0x11,
	0xBF, 0xB1, 0x00, 0x10, 0x4B, 0x5F, 0x96, 0xA7,
}
