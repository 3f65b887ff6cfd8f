package msgpack

// Node is one decoded value in the output tree. Children appear in
// decode order, which is byte order in the input. A non-empty string
// value is a length node owning a single content child so both keep a
// meaningful offset.
type Node struct {
	Label    string  `json:"label"`
	Offset   int     `json:"offset"`
	Children []*Node `json:"children,omitempty"`
}

// Tree is the result of one decode pass. Reserved lists the offsets of
// any 0xc1 tags encountered; those decode to placeholder nodes rather
// than failing, but strict callers may want to reject them.
type Tree struct {
	Root     *Node
	Reserved []int
}

// frame tracks one open container: the node being filled and how many
// children it still expects. The root frame is unbounded.
type frame struct {
	node      *Node
	remaining int
	bounded   bool
}

// Decode scans data in a single forward pass and builds the value tree.
//
// On ErrUnexpectedEndOfBuffer or ErrUnterminatedContainer the returned
// Tree is non-nil and holds everything decoded before the failure; the
// error carries the offset where decoding stopped. Decode performs at
// most len(data) dispatch steps and never recurses, so nesting depth is
// bounded only by available heap.
func Decode(data []byte, opt Options) (*Tree, error) {
	root := &Node{}
	tree := &Tree{Root: root}

	stack := make([]frame, 1, 8)
	stack[0] = frame{node: root}

	for off := 0; off < len(data); {
		v, err := decodeValue(data, off, opt)
		if err != nil {
			return tree, err
		}

		node := &Node{Label: v.Label, Offset: v.Offset}
		if v.HasText {
			node.Children = []*Node{{Label: v.Text, Offset: v.TextOffset}}
		}

		top := &stack[len(stack)-1]
		top.node.Children = append(top.node.Children, node)
		if top.bounded {
			top.remaining--
		}

		if v.Kind == KindReserved {
			tree.Reserved = append(tree.Reserved, v.Offset)
		}
		if v.Container && v.Count > 0 {
			stack = append(stack, frame{node: node, remaining: v.Count, bounded: true})
		}

		off += v.Width

		// A completed container may itself complete the one beneath it.
		for len(stack) > 1 && stack[len(stack)-1].remaining == 0 {
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 1 {
		return tree, errAt(len(data), ErrUnterminatedContainer)
	}
	return tree, nil
}
