package cabac

// numContexts is the fixed size of a CABAC context table: 1024 flat
// slots addressed as ctxIdxOffset + ctxIdxInc (spec.md §3).
const numContexts = 1024

// ContextModel is the (pStateIdx, mpsValue) pair adapted by every
// ReadDecision call that targets it (clause 9.3.3.2.1.1).
type ContextModel struct {
	pStateIdx int
	mps       bool
}

// PStateIdx returns the current probability-state index, always in
// [0, 63].
func (c ContextModel) PStateIdx() int { return c.pStateIdx }

// MPS returns the current most-probable-symbol value.
func (c ContextModel) MPS() bool { return c.mps }

func (c ContextModel) mpsValue() int {
	if c.mps {
		return 1
	}
	return 0
}

func (c *ContextModel) flipMPS() { c.mps = !c.mps }

// ContextTable is the ordered array of exactly 1024 context models
// owned exclusively by one Decoder instance.
type ContextTable struct {
	models [numContexts]ContextModel
}

// clip3 mirrors the H.264 Clip3(x, y, z) function shared across the
// initialization and binarization clauses.
func clip3(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// newContextTable builds the context table for a slice, a pure function
// of (sliceType, qp, cabacInitIdc) per clause 9.3.1.1: identical inputs
// always produce a bit-identical table.
func newContextTable(sliceType SliceType, qp int, cabacInitIdc int) *ContextTable {
	t := &ContextTable{}

	rows := mnTableForSlice(sliceType, cabacInitIdc)

	for i := 0; i < numContexts; i++ {
		m, n := rows[i].m, rows[i].n
		preCtxState := clip3(1, 126, ((m*clip3(0, 51, qp))>>4)+n)

		if preCtxState <= 63 {
			t.models[i] = ContextModel{pStateIdx: 63 - preCtxState, mps: false}
		} else {
			t.models[i] = ContextModel{pStateIdx: preCtxState - 64, mps: true}
		}
	}

	return t
}

// at returns a mutable pointer to the context model at ctxIdx. It is the
// only mutation path the arithmetic engine uses.
func (t *ContextTable) at(ctxIdx int) *ContextModel {
	return &t.models[ctxIdx]
}

// Context implements the "this[i] accessor... for testing" surface from
// spec.md §6: it exposes a read-only snapshot of ctxIdx's model.
func (t *ContextTable) Context(ctxIdx int) ContextModel {
	return t.models[ctxIdx]
}

// Len reports the fixed context table size (always numContexts).
func (t *ContextTable) Len() int { return len(t.models) }
