package huffman

// minHeap is a binary min-heap of tree nodes ordered by frequency, then by
// creation sequence. Two nodes never share a sequence number, so the order is
// total and pops are deterministic.
type minHeap struct {
	arr []*Node
}

func (h *minHeap) size() int { return len(h.arr) }

func less(a, b *Node) bool {
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.seq < b.seq
}

func (h *minHeap) push(n *Node) {
	h.arr = append(h.arr, n)
	child := len(h.arr) - 1
	for child > 0 {
		parent := (child - 1) / 2
		if !less(h.arr[child], h.arr[parent]) {
			return
		}
		h.arr[parent], h.arr[child] = h.arr[child], h.arr[parent]
		child = parent
	}
}

func (h *minHeap) pop() *Node {
	if h.size() == 0 {
		return nil
	}
	out := h.arr[0]
	last := h.arr[h.size()-1]
	h.arr[h.size()-1] = nil
	h.arr = h.arr[:h.size()-1]
	if h.size() == 0 {
		return out
	}
	h.arr[0] = last

	parent := 0
	for {
		child := 2*parent + 1
		if child >= h.size() {
			return out
		}
		if child+1 < h.size() && less(h.arr[child+1], h.arr[child]) {
			child++
		}
		if !less(h.arr[child], h.arr[parent]) {
			return out
		}
		h.arr[parent], h.arr[child] = h.arr[child], h.arr[parent]
		parent = child
	}
}
