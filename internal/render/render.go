// Package render turns a decoded tree into viewer-agnostic output:
// an indented text listing or a JSON document.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Flast/msgviewer/internal/msgpack"
)

// Options controls tree rendering.
type Options struct {
	// Offsets prefixes each line with the node's byte offset.
	Offsets bool
}

const indentStep = "  "

// Text writes one line per node, children indented under their parent.
func Text(w io.Writer, tree *msgpack.Tree, opt Options) error {
	for _, n := range tree.Root.Children {
		if err := writeNode(w, n, 0, opt); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(w io.Writer, n *msgpack.Node, depth int, opt Options) error {
	indent := strings.Repeat(indentStep, depth)
	var err error
	if opt.Offsets {
		_, err = fmt.Fprintf(w, "%s%s @%d\n", indent, n.Label, n.Offset)
	} else {
		_, err = fmt.Fprintf(w, "%s%s\n", indent, n.Label)
	}
	if err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := writeNode(w, c, depth+1, opt); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the root's children as a JSON array. Node labels,
// offsets, and child lists carry everything a hierarchical viewer
// needs; no knowledge of the binary format leaks into the output.
func JSON(w io.Writer, tree *msgpack.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	children := tree.Root.Children
	if children == nil {
		children = []*msgpack.Node{}
	}
	return enc.Encode(children)
}
