package linetree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// IntegrityCheck walks the whole tree and reports the first structural
// invariant it finds broken: aggregate line_start/line_count mismatches
// or a sibling chain that disagrees with the tree's own in-order
// traversal. It never panics itself — callers that want a hard-fail on
// corruption should call pediterr.Invariant with the returned error.
func (t *Tree) IntegrityCheck() error {
	if err := checkAggregates(t.root); err != nil {
		return err
	}
	return t.checkSiblingChain()
}

func checkAggregates(n *node) error {
	if n.isLeaf() {
		if n.lineCount != len(n.lines) {
			return fmt.Errorf("leaf at %d: lineCount %d != len(lines) %d", n.lineStart, n.lineCount, len(n.lines))
		}
		return nil
	}
	if err := checkAggregates(n.left); err != nil {
		return err
	}
	if err := checkAggregates(n.right); err != nil {
		return err
	}
	if n.lineStart != n.left.lineStart {
		return fmt.Errorf("intermediate lineStart %d != left.lineStart %d", n.lineStart, n.left.lineStart)
	}
	if n.lineCount != n.left.lineCount+n.right.lineCount {
		return fmt.Errorf("intermediate lineCount %d != left+right %d", n.lineCount, n.left.lineCount+n.right.lineCount)
	}
	if n.right.lineStart != n.left.lineStart+n.left.lineCount {
		return fmt.Errorf("right.lineStart %d != left.lineStart+left.lineCount %d", n.right.lineStart, n.left.lineStart+n.left.lineCount)
	}
	return nil
}

func (t *Tree) checkSiblingChain() error {
	expected := 0
	for n := t.root.leftmost(); n != nil; n = n.next {
		if n.lineStart != expected {
			return fmt.Errorf("sibling chain lineStart %d != expected %d", n.lineStart, expected)
		}
		expected += n.lineCount
	}
	if expected != t.root.lineCount {
		return fmt.Errorf("sibling chain total %d != root.lineCount %d", expected, t.root.lineCount)
	}
	return nil
}

// DebugTree renders the intermediate/leaf shape of the tree, mirroring
// the C++ original's debug_to_string diagnostic dump.
func (t *Tree) DebugTree() string {
	tp := treeprint.New()
	addNode(tp, t.root)
	return tp.String()
}

func addNode(tp treeprint.Tree, n *node) {
	if n.isLeaf() {
		tp.AddNode(fmt.Sprintf("leaf[%d..%d] (%d lines)", n.lineStart, n.lineStart+n.lineCount-1, n.lineCount))
		return
	}
	branch := tp.AddBranch(fmt.Sprintf("node[%d..%d] h=%d", n.lineStart, n.lineStart+n.lineCount-1, n.height))
	addNode(branch, n.left)
	addNode(branch, n.right)
}
