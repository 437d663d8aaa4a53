package huffman

import "container/heap"

// treeNode is a tagged variant: a leaf carries a symbol, an inner node
// carries two children. Only used during length derivation; discarded
// once buildLengths returns.
type treeNode struct {
	count       uint64
	symbol      int // valid only when left == nil && right == nil
	left, right *treeNode
	seq         int // insertion order, used as a deterministic tie-break
}

func (n *treeNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// nodeHeap is a min-heap of *treeNode ordered by count, with ties broken
// by insertion order so that buildLengths is deterministic across runs
// regardless of container/heap's internal sift order under equal keys.
//
// Grounded on Consensys-compress/huffman.go's PriorityQueue.
type nodeHeap []*treeNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].count != h[j].count {
		return h[i].count < h[j].count
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*treeNode))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// buildLengths derives a code length per symbol from a frequency
// histogram. Zero-count symbols keep length 0. Empty input (every count
// zero) yields all-zero lengths. A single used symbol is clamped to
// length 1 rather than the depth-0 a single-node tree would otherwise
// produce.
func buildLengths(count [256]uint64) (lengths [256]uint8) {
	h := make(nodeHeap, 0, 256)
	seq := 0
	for symbol, c := range count {
		if c == 0 {
			continue
		}
		h = append(h, &treeNode{count: c, symbol: symbol, seq: seq})
		seq++
	}
	if len(h) == 0 {
		return lengths
	}
	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*treeNode)
		b := heap.Pop(&h).(*treeNode)
		heap.Push(&h, &treeNode{
			count: a.count + b.count,
			left:  a,
			right: b,
			seq:   seq,
		})
		seq++
	}
	root := h[0]
	var walk func(n *treeNode, depth int)
	walk = func(n *treeNode, depth int) {
		if n.isLeaf() {
			if depth < 1 {
				depth = 1
			}
			lengths[n.symbol] = uint8(depth)
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(root, 0)
	return lengths
}
