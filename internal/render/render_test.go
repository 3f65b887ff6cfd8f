package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Flast/msgviewer/internal/msgpack"
)

func TestTextIndentsChildren(t *testing.T) {
	tree, err := msgpack.Decode([]byte{0x92, 0x01, 0xa2, 'h', 'i'}, msgpack.Options{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var b strings.Builder
	if err := Text(&b, tree, Options{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "fixarray: count 2\n" +
		"  positive fixint: 1\n" +
		"  fixstr: length 2\n" +
		"    hi\n"
	if b.String() != want {
		t.Fatalf("text output:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestTextWithOffsets(t *testing.T) {
	tree, err := msgpack.Decode([]byte{0x91, 0xc0}, msgpack.Options{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var b strings.Builder
	if err := Text(&b, tree, Options{Offsets: true}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "fixarray: count 1 @0\n  nil @1\n"
	if b.String() != want {
		t.Fatalf("text output: %q, want %q", b.String(), want)
	}
}

func TestJSONRoundTripsShape(t *testing.T) {
	tree, err := msgpack.Decode([]byte{0x91, 0x2a}, msgpack.Options{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var b strings.Builder
	if err := JSON(&b, tree); err != nil {
		t.Fatalf("render: %v", err)
	}

	var got []struct {
		Label    string `json:"label"`
		Offset   int    `json:"offset"`
		Children []struct {
			Label  string `json:"label"`
			Offset int    `json:"offset"`
		} `json:"children"`
	}
	if err := json.Unmarshal([]byte(b.String()), &got); err != nil {
		t.Fatalf("unmarshal rendered JSON: %v", err)
	}
	if len(got) != 1 || got[0].Label != "fixarray: count 1" {
		t.Fatalf("top level: %+v", got)
	}
	if len(got[0].Children) != 1 || got[0].Children[0].Label != "positive fixint: 42" {
		t.Fatalf("children: %+v", got[0].Children)
	}
	if got[0].Children[0].Offset != 1 {
		t.Fatalf("child offset: %d", got[0].Children[0].Offset)
	}
}

func TestJSONEmptyTree(t *testing.T) {
	tree, err := msgpack.Decode(nil, msgpack.Options{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var b strings.Builder
	if err := JSON(&b, tree); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(b.String()) != "[]" {
		t.Fatalf("empty tree rendered as %q", b.String())
	}
}
