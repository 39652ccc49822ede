package explore

import "github.com/katalvlaran/sadf/maxplus"

// tableKey buckets a vector by tag and quantized timestamps.
type tableKey struct {
	tag int
	key string
}

// stateTable is a visited set of tagged timed vectors. Lookups hash the
// quantized key and confirm with an epsilon comparison.
type stateTable struct {
	eps     float64
	buckets map[tableKey][]int
	vectors []maxplus.Vector
	byTag   map[int][]int
}

func newStateTable(eps float64) *stateTable {
	return &stateTable{
		eps:     eps,
		buckets: make(map[tableKey][]int),
		byTag:   make(map[int][]int),
	}
}

func (t *stateTable) len() int { return len(t.vectors) }

// find returns the id of a stored vector equal to v under tag. Every key v
// may be stored under is probed.
func (t *stateTable) find(tag int, v maxplus.Vector) (int, bool) {
	for _, k := range v.Keys(t.eps) {
		for _, id := range t.buckets[tableKey{tag: tag, key: k}] {
			if t.vectors[id].Equal(v, t.eps) {
				return id, true
			}
		}
	}

	return 0, false
}

// dominating returns the first stored vector under tag that is pointwise
// no earlier than v.
func (t *stateTable) dominating(tag int, v maxplus.Vector) (int, bool) {
	for _, id := range t.byTag[tag] {
		if v.DominatedBy(t.vectors[id], t.eps) {
			return id, true
		}
	}

	return 0, false
}

// insert stores v under tag and returns its id. The caller checks find first.
func (t *stateTable) insert(tag int, v maxplus.Vector) int {
	id := len(t.vectors)
	k := tableKey{tag: tag, key: v.Key(t.eps)}
	t.buckets[k] = append(t.buckets[k], id)
	t.vectors = append(t.vectors, v)
	t.byTag[tag] = append(t.byTag[tag], id)

	return id
}
