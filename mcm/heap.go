// SPDX-License-Identifier: MIT

package mcm

// arity of the indexed heap used by YoungTarjanOrlin.
const arity = 4

// dheap is an indexed d-ary min-heap over the integers 0..n-1. Every item is
// always present; updates move it. Equal keys are ordered by item id.
type dheap struct {
	items []int     // heap order
	pos   []int     // pos[item] = index in items
	key   []float64 // key[item]
}

func newDHeap(keys []float64) *dheap {
	h := &dheap{
		items: make([]int, len(keys)),
		pos:   make([]int, len(keys)),
		key:   keys,
	}
	for i := range keys {
		h.items[i] = i
		h.pos[i] = i
	}
	for i := len(keys)/arity + 1; i >= 0; i-- {
		if i < len(keys) {
			h.down(i)
		}
	}

	return h
}

// top returns the item with the smallest key.
func (h *dheap) top() (int, float64) {
	it := h.items[0]
	return it, h.key[it]
}

// update sets the key of item and restores heap order.
func (h *dheap) update(item int, k float64) {
	old := h.key[item]
	h.key[item] = k
	i := h.pos[item]
	if k < old {
		h.up(i)
	} else {
		h.down(i)
	}
}

func (h *dheap) less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.key[a] != h.key[b] {
		return h.key[a] < h.key[b]
	}

	return a < b
}

func (h *dheap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

func (h *dheap) up(i int) {
	for i > 0 {
		parent := (i - 1) / arity
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *dheap) down(i int) {
	n := len(h.items)
	for {
		smallest := i
		first := arity*i + 1
		for c := first; c < first+arity && c < n; c++ {
			if h.less(c, smallest) {
				smallest = c
			}
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
