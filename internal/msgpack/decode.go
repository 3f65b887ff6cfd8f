package msgpack

import (
	"encoding/binary"
	"fmt"
	"math"
)

// uintField reads a size-byte big-endian unsigned field, reporting
// whether the buffer held all size bytes.
func uintField(data []byte, off, size int) (uint64, bool) {
	if off < 0 || off+size > len(data) {
		return 0, false
	}
	switch size {
	case 1:
		return uint64(data[off]), true
	case 2:
		return uint64(binary.BigEndian.Uint16(data[off:])), true
	case 4:
		return uint64(binary.BigEndian.Uint32(data[off:])), true
	default:
		return binary.BigEndian.Uint64(data[off:]), true
	}
}

// decodeValue classifies the tag at off and extracts its inline fields.
// The caller guarantees off < len(data). All bounds are checked before
// any read; a field or payload running past the buffer end yields
// ErrUnexpectedEndOfBuffer pinned to the tag offset.
func decodeValue(data []byte, off int, opt Options) (Value, error) {
	b := data[off]

	switch {
	case b <= tagPositiveFixintMax:
		return Value{
			Kind:   KindPositiveFixint,
			Label:  fmt.Sprintf("positive fixint: %d", b),
			Offset: off,
			Width:  1,
			Uint:   uint64(b),
		}, nil

	case b < tagFixArrayBase: // 0x80..0x8f
		n := int(b - tagFixMapBase)
		v := Value{Kind: KindFixMap, Offset: off, Width: 1, Container: true, Count: 2 * n}
		if n == 0 {
			v.Label = "fixmap: empty"
		} else {
			v.Label = fmt.Sprintf("fixmap: count %d", n)
		}
		return v, nil

	case b < tagFixStrBase: // 0x90..0x9f
		n := int(b - tagFixArrayBase)
		v := Value{Kind: KindFixArray, Offset: off, Width: 1, Container: true, Count: n}
		if n == 0 {
			v.Label = "fixarray: empty"
		} else {
			v.Label = fmt.Sprintf("fixarray: count %d", n)
		}
		return v, nil

	case b <= tagFixStrMax: // 0xa0..0xbf
		n := int(b - tagFixStrBase)
		if n == 0 {
			return Value{Kind: KindFixStr, Label: "fixstr: empty", Offset: off, Width: 1}, nil
		}
		if off+1+n > len(data) {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		return Value{
			Kind:       KindFixStr,
			Label:      fmt.Sprintf("fixstr: length %d", n),
			Offset:     off,
			Width:      1 + n,
			Text:       decodeText(data[off+1:off+1+n], opt.Encoding),
			TextOffset: off + 1,
			HasText:    true,
			PayloadLen: n,
		}, nil

	case b >= tagNegativeFixintBase: // 0xe0..0xff
		return Value{
			Kind:   KindNegativeFixint,
			Label:  fmt.Sprintf("negative fixint: %d", int8(b)),
			Offset: off,
			Width:  1,
			Int:    int64(int8(b)),
		}, nil
	}

	switch b {
	case tagNil:
		return Value{Kind: KindNil, Label: "nil", Offset: off, Width: 1}, nil

	case tagReserved:
		return Value{Kind: KindReserved, Label: "(never used)", Offset: off, Width: 1}, nil

	case tagFalse:
		return Value{Kind: KindBool, Label: "false", Offset: off, Width: 1}, nil

	case tagTrue:
		return Value{Kind: KindBool, Label: "true", Offset: off, Width: 1, Bool: true}, nil

	case tagBin8, tagBin16, tagBin32:
		lenSize := 1 << (b - tagBin8)
		n, ok := uintField(data, off+1, lenSize)
		if !ok {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		width := 1 + lenSize + int(n)
		if off+width > len(data) {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		return Value{
			Kind:       KindBin,
			Label:      fmt.Sprintf("bin %d: length %d", lenSize*8, n),
			Offset:     off,
			Width:      width,
			PayloadLen: int(n),
		}, nil

	case tagExt8, tagExt16, tagExt32:
		lenSize := 1 << (b - tagExt8)
		n, ok := uintField(data, off+1, lenSize)
		if !ok {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		width := 1 + lenSize + 1 + int(n)
		if off+width > len(data) {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		extType := int8(data[off+1+lenSize])
		return Value{
			Kind:       KindExt,
			Label:      fmt.Sprintf("ext %d: type %d length %d", lenSize*8, extType, n),
			Offset:     off,
			Width:      width,
			ExtType:    extType,
			PayloadLen: int(n),
		}, nil

	case tagFloat32:
		u, ok := uintField(data, off+1, 4)
		if !ok {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		f := math.Float32frombits(uint32(u))
		return Value{
			Kind:   KindFloat32,
			Label:  fmt.Sprintf("float32: %v", f),
			Offset: off,
			Width:  1 + 4,
			Float:  float64(f),
		}, nil

	case tagFloat64:
		u, ok := uintField(data, off+1, 8)
		if !ok {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		f := math.Float64frombits(u)
		return Value{
			Kind:   KindFloat64,
			Label:  fmt.Sprintf("float64: %v", f),
			Offset: off,
			Width:  1 + 8,
			Float:  f,
		}, nil

	case tagUint8, tagUint16, tagUint32, tagUint64:
		size := 1 << (b - tagUint8)
		u, ok := uintField(data, off+1, size)
		if !ok {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		return Value{
			Kind:   KindUint,
			Label:  fmt.Sprintf("uint%d: %d", size*8, u),
			Offset: off,
			Width:  1 + size,
			Uint:   u,
		}, nil

	case tagInt8, tagInt16, tagInt32, tagInt64:
		size := 1 << (b - tagInt8)
		u, ok := uintField(data, off+1, size)
		if !ok {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		// Two's-complement sign extension from the field width.
		shift := 64 - 8*size
		v := int64(u<<shift) >> shift
		return Value{
			Kind:   KindInt,
			Label:  fmt.Sprintf("int%d: %d", size*8, v),
			Offset: off,
			Width:  1 + size,
			Int:    v,
		}, nil

	case tagFixExt1, tagFixExt2, tagFixExt4, tagFixExt8, tagFixExt16:
		payload := 1 << (b - tagFixExt1)
		width := 1 + 1 + payload
		if off+width > len(data) {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		extType := int8(data[off+1])
		return Value{
			Kind:       KindFixExt,
			Label:      fmt.Sprintf("fixext %d: type %d", payload, extType),
			Offset:     off,
			Width:      width,
			ExtType:    extType,
			PayloadLen: payload,
		}, nil

	case tagStr8, tagStr16, tagStr32:
		lenSize := 1 << (b - tagStr8)
		n, ok := uintField(data, off+1, lenSize)
		if !ok {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		width := 1 + lenSize + int(n)
		if off+width > len(data) {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		start := off + 1 + lenSize
		return Value{
			Kind:       KindStr,
			Label:      fmt.Sprintf("str %d: length %d", lenSize*8, n),
			Offset:     off,
			Width:      width,
			Text:       decodeText(data[start:start+int(n)], opt.Encoding),
			TextOffset: start,
			HasText:    true,
			PayloadLen: int(n),
		}, nil

	case tagArray16, tagArray32:
		countSize := 2 << (b - tagArray16)
		n, ok := uintField(data, off+1, countSize)
		if !ok {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		return Value{
			Kind:      KindArray,
			Label:     fmt.Sprintf("array %d: count %d", countSize*8, n),
			Offset:    off,
			Width:     1 + countSize,
			Container: true,
			Count:     int(n),
		}, nil

	default: // tagMap16, tagMap32
		countSize := 2 << (b - tagMap16)
		n, ok := uintField(data, off+1, countSize)
		if !ok {
			return Value{}, errAt(off, ErrUnexpectedEndOfBuffer)
		}
		return Value{
			Kind:      KindMap,
			Label:     fmt.Sprintf("map %d: count %d", countSize*8, n),
			Offset:    off,
			Width:     1 + countSize,
			Container: true,
			Count:     2 * int(n),
		}, nil
	}
}
