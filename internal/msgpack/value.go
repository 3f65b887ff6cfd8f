package msgpack

// Kind is the logical family of one decoded value.
type Kind int

const (
	KindPositiveFixint Kind = iota
	KindNegativeFixint
	KindFixMap
	KindFixArray
	KindFixStr
	KindNil
	KindReserved
	KindBool
	KindBin
	KindExt
	KindFloat32
	KindFloat64
	KindUint
	KindInt
	KindFixExt
	KindStr
	KindArray
	KindMap
)

// Value is the transient result of dispatching one tag. Width covers
// the tag plus all inline fields and any inline payload; children of a
// container are separate subsequent values and are not included.
type Value struct {
	Kind   Kind
	Label  string
	Offset int
	Width  int

	// Container values own the next Count values as children.
	Container bool
	Count     int

	// Decoded text for str kinds. HasText marks values rendered as a
	// length node owning one content child; empty fixstr has none.
	Text       string
	TextOffset int
	HasText    bool

	// Scalar payloads, populated per kind.
	Uint       uint64
	Int        int64
	Float      float64
	Bool       bool
	ExtType    int8
	PayloadLen int
}
