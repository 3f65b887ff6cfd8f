package msgpack

// Tag bytes from the MessagePack format specification. The fix ranges
// carry their payload (or count) in the low bits of the tag itself.
const (
	tagPositiveFixintMax byte = 0x7f

	tagFixMapBase   byte = 0x80 // 0x80..0x8f, count in low nibble
	tagFixArrayBase byte = 0x90 // 0x90..0x9f, count in low nibble
	tagFixStrBase   byte = 0xa0 // 0xa0..0xbf, length in low 5 bits
	tagFixStrMax    byte = 0xbf

	tagNil      byte = 0xc0
	tagReserved byte = 0xc1 // allocated but never used
	tagFalse    byte = 0xc2
	tagTrue     byte = 0xc3

	tagBin8  byte = 0xc4
	tagBin16 byte = 0xc5
	tagBin32 byte = 0xc6

	tagExt8  byte = 0xc7
	tagExt16 byte = 0xc8
	tagExt32 byte = 0xc9

	tagFloat32 byte = 0xca
	tagFloat64 byte = 0xcb

	tagUint8  byte = 0xcc
	tagUint16 byte = 0xcd
	tagUint32 byte = 0xce
	tagUint64 byte = 0xcf

	tagInt8  byte = 0xd0
	tagInt16 byte = 0xd1
	tagInt32 byte = 0xd2
	tagInt64 byte = 0xd3

	tagFixExt1  byte = 0xd4
	tagFixExt2  byte = 0xd5
	tagFixExt4  byte = 0xd6
	tagFixExt8  byte = 0xd7
	tagFixExt16 byte = 0xd8

	tagStr8  byte = 0xd9
	tagStr16 byte = 0xda
	tagStr32 byte = 0xdb

	tagArray16 byte = 0xdc
	tagArray32 byte = 0xdd

	tagMap16 byte = 0xde
	tagMap32 byte = 0xdf

	tagNegativeFixintBase byte = 0xe0 // 0xe0..0xff
)
