package linetree

// kind distinguishes the two node shapes a Tree is built from. A leaf
// owns a contiguous slice of lines; an intermediate node only aggregates
// its two children's line_start/line_count, mirroring the union-free
// split the original C++ "Lines" struct made between leaf and
// intermediate state (_examples/original_source/experiment/lines.h).
type kind int

const (
	leafKind kind = iota
	intermediateKind
)

// node is both the leaf and intermediate node representation. Using one
// struct rather than an interface keeps parent/sibling rewiring simple
// (no type switches at every rotation) at the cost of a few unused
// fields per node, same trade the teacher's flat buffer type made by
// favoring a single concrete struct over a polymorphic hierarchy.
type node struct {
	k      kind
	height int

	// aggregate fields, valid for both leaf and intermediate nodes.
	lineStart int
	lineCount int

	parent *node

	// intermediate-only
	left  *node
	right *node

	// leaf-only
	lines []string
	prev  *node // previous leaf in document order
	next  *node // next leaf in document order
}

func newLeaf(lineStart int, lines []string) *node {
	return &node{
		k:         leafKind,
		lineStart: lineStart,
		lineCount: len(lines),
		lines:     lines,
	}
}

func (n *node) isLeaf() bool { return n.k == leafKind }

// lineEnd returns the last line index this node spans, inclusive. It is
// only meaningful for a non-empty node.
func (n *node) lineEnd() int { return n.lineStart + n.lineCount - 1 }

func (n *node) isEmpty() bool { return n.lineCount == 0 }

// inRangeLines reports whether `row` addresses an actual line inside
// this node's span.
func (n *node) inRangeLines(row int) bool {
	if n.isEmpty() {
		return false
	}
	return n.lineStart <= row && row <= n.lineEnd()
}

// inRangeBoundary reports whether `at` is a valid split boundary for
// this leaf: either inside its span, or exactly one past the end (the
// boundary after the node's last line), matching the C++ in_range used
// by split().
func (n *node) inRangeBoundary(at int) bool {
	if n.isEmpty() {
		return at == n.lineStart
	}
	return n.lineStart <= at && at <= n.lineEnd()+1
}

// leftmost walks down the left spine to the first leaf.
func (n *node) leftmost() *node {
	for !n.isLeaf() {
		n = n.left
	}
	return n
}

// rightmost walks down the right spine to the last leaf.
func (n *node) rightmost() *node {
	for !n.isLeaf() {
		n = n.right
	}
	return n
}

// recalcAggregate recomputes lineStart/lineCount/height for an
// intermediate node from its two children. It never needs to look
// beyond n's direct children: rotations and merges preserve the
// in-order sequence of leaves, so absolute line numbers of nodes that
// did not move never change, only the aggregates of the nodes whose
// children changed.
func (n *node) recalcAggregate() {
	if n.isLeaf() {
		n.lineCount = len(n.lines)
		n.height = 0
		return
	}
	n.lineStart = n.left.lineStart
	n.lineCount = n.left.lineCount + n.right.lineCount
	n.height = 1 + maxInt(n.left.height, n.right.height)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func balanceFactor(n *node) int {
	if n.isLeaf() {
		return 0
	}
	return n.left.height - n.right.height
}
