package bc

import (
	"math"

	"github.com/mycok/uCentral/bitset"
	"github.com/mycok/uCentral/cluster"
)

// fieldKind selects the arithmetic used when replica contributions are
// folded together.
type fieldKind int

const (
	fieldUint32 fieldKind = iota
	fieldFloat64
)

// Static and compile-time check to ensure fieldView implements the
// FieldView interface.
var _ cluster.FieldView = (*fieldView)(nil)

// fieldView exposes one nodeState field to the sync engine. Raw values are
// the field's bit representation: uint32 fields widen to uint64, float64
// fields travel as their IEEE-754 bits. The dirty bitset doubles as the
// sparse-set hint for the transport and is reset by the calculator once
// the sync completes.
type fieldView struct {
	name   string
	kind   fieldKind
	reduce cluster.Reduction
	calc   *Calculator
	bits   *bitset.Dense
	load   func(st *nodeState) uint64
	store  func(st *nodeState, raw uint64)
}

func (f *fieldView) Name() string { return f.name }

// ExtractMirrors emits every dirty mirror slot. Add-reduced slots are
// zeroed on extraction so a contribution is counted exactly once.
func (f *fieldView) ExtractMirrors(emit func(global, raw uint64)) {
	f.bits.ForEachSet(func(local uint32) {
		if f.calc.graph.IsOwned(local) {
			return
		}

		st := &f.calc.states[local]
		emit(f.calc.graph.GlobalID(local), f.load(st))

		if f.reduce == cluster.ReduceAdd {
			f.store(st, 0)
		}
	})
}

// Combine folds a mirror contribution into the canonical slot and marks
// the vertex for broadcast.
func (f *fieldView) Combine(global, raw uint64) {
	local, exists := f.calc.graph.LocalID(global)
	if !exists {
		return
	}

	st := &f.calc.states[local]

	switch f.reduce {
	case cluster.ReduceMin:
		if raw < f.load(st) {
			f.store(st, raw)
		}
	case cluster.ReduceAdd:
		switch f.kind {
		case fieldUint32:
			f.store(st, f.load(st)+raw)
		case fieldFloat64:
			sum := math.Float64frombits(f.load(st)) + math.Float64frombits(raw)
			f.store(st, math.Float64bits(sum))
		}
	}

	f.bits.Set(local)
}

// ExtractOwned emits the merged value of every dirty owned vertex.
func (f *fieldView) ExtractOwned(emit func(global, raw uint64)) {
	f.bits.ForEachSet(func(local uint32) {
		if !f.calc.graph.IsOwned(local) {
			return
		}

		emit(f.calc.graph.GlobalID(local), f.load(&f.calc.states[local]))
	})
}

// Assign overwrites a mirror slot with the owner's merged value.
func (f *fieldView) Assign(global, raw uint64) {
	local, exists := f.calc.graph.LocalID(global)
	if !exists {
		return
	}

	f.store(&f.calc.states[local], raw)
}

// newFields wires a fieldView for every synced delta field of the engine.
func (c *Calculator) newFields() {
	size := uint32(c.graph.NumLocalVertices())

	c.distField = &fieldView{
		name:   "dist",
		kind:   fieldUint32,
		reduce: cluster.ReduceMin,
		calc:   c,
		bits:   bitset.New(size),
		load:   func(st *nodeState) uint64 { return uint64(st.dist) },
		store:  func(st *nodeState, raw uint64) { st.dist = uint32(raw) },
	}

	c.npredField = &fieldView{
		name:   "npred",
		kind:   fieldUint32,
		reduce: cluster.ReduceAdd,
		calc:   c,
		bits:   bitset.New(size),
		load:   func(st *nodeState) uint64 { return uint64(st.npred) },
		store:  func(st *nodeState, raw uint64) { st.npred = uint32(raw) },
	}

	c.nsuccField = &fieldView{
		name:   "nsucc",
		kind:   fieldUint32,
		reduce: cluster.ReduceAdd,
		calc:   c,
		bits:   bitset.New(size),
		load:   func(st *nodeState) uint64 { return uint64(st.nsucc) },
		store:  func(st *nodeState, raw uint64) { st.nsucc = uint32(raw) },
	}

	c.trimField = &fieldView{
		name:   "trim",
		kind:   fieldUint32,
		reduce: cluster.ReduceAdd,
		calc:   c,
		bits:   bitset.New(size),
		load:   func(st *nodeState) uint64 { return uint64(st.trim) },
		store:  func(st *nodeState, raw uint64) { st.trim = uint32(raw) },
	}

	c.toAddField = &fieldView{
		name:   "to_add",
		kind:   fieldUint32,
		reduce: cluster.ReduceAdd,
		calc:   c,
		bits:   bitset.New(size),
		load:   func(st *nodeState) uint64 { return uint64(st.toAdd) },
		store:  func(st *nodeState, raw uint64) { st.toAdd = uint32(raw) },
	}

	c.trim2Field = &fieldView{
		name:   "trim2",
		kind:   fieldUint32,
		reduce: cluster.ReduceAdd,
		calc:   c,
		bits:   bitset.New(size),
		load:   func(st *nodeState) uint64 { return uint64(st.trim2) },
		store:  func(st *nodeState, raw uint64) { st.trim2 = uint32(raw) },
	}

	c.toAddFField = &fieldView{
		name:   "to_add_float",
		kind:   fieldFloat64,
		reduce: cluster.ReduceAdd,
		calc:   c,
		bits:   bitset.New(size),
		load:   func(st *nodeState) uint64 { return st.toAddF },
		store:  func(st *nodeState, raw uint64) { st.toAddF = raw },
	}
}
