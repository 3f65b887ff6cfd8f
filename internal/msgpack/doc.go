// Package msgpack decodes a MessagePack byte buffer into a navigable
// tree of labeled nodes, one node per encoded value.
//
// Ownership boundary:
// - tag dispatch and per-tag width accounting
// - container nesting via an explicit frame stack
// - structural error reporting with byte offsets
//
// The decoder formats values for display only. It does not interpret
// extension payloads and it does not re-encode a tree.
package msgpack
