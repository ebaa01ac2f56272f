package cabac

// MacroblockDescriptor is the read-only view of a macroblock's already
// parsed state the decoder consumes to compute neighbor-dependent
// context indices (spec.md §3, "Macroblock Descriptor").
type MacroblockDescriptor struct {
	Addr int

	Type     MbTypeTag
	Pred     PredMode
	MbAff    MbAffMode
	SubTypes [4]MbTypeTag // per-sub-macroblock types, P_8x8/B_8x8 only

	TransformSize8x8 bool
	SkipFlag         bool
	MbaffFrameFlag   bool

	// CBP carries the full coded block pattern; Luma()/Chroma() split
	// it per clause 7.4.5 (luma = cbp%16, chroma = cbp/16).
	CBP int

	// RefIdx[listIdx][mbPartIdx] holds the reference index used by
	// each of the up to 16 macroblock partitions in a given list.
	RefIdx [2][16]int

	// MvdComp[mbPartIdx][subMbPartIdx][comp] holds the motion vector
	// difference components already decoded for this macroblock.
	MvdComp [4][4][2]int

	// TransBlockAvailable/TransBlockCBF track per-4x4/8x8 residual
	// presence and coded-block-flag state, addressed by a caller-
	// chosen linear block index.
	TransBlockAvailable [27]bool
	TransBlockCBF       [27]bool
}

// Luma returns the luma coded-block-pattern bits (cbp % 16).
func (m MacroblockDescriptor) Luma() int { return m.CBP % 16 }

// Chroma returns the chroma coded-block-pattern mode (cbp / 16).
func (m MacroblockDescriptor) Chroma() int { return m.CBP / 16 }

// NeighborPartition is one neighbor (A, B, C or D) of a sub-macroblock
// partition, as derived by deriveNeighborPartitions (clause 6.4.11.7).
type NeighborPartition struct {
	Descriptor   MacroblockDescriptor
	Available    bool
	MbPartIdx    int
	SubMbPartIdx int
}

// Neighbor is a plain macroblock neighbor (A or B) with an availability
// flag, as derived by deriveNeighbors / deriveNeighbor4x4Luma and
// friends (clauses 6.4.9, 6.4.10.x, 6.4.11.4).
type Neighbor struct {
	Descriptor MacroblockDescriptor
	Available  bool
}

// MacroblockProvider is the external collaborator spec.md §6 describes:
// neighbor derivation, partitioning, prediction-mode computation, and
// access to already-parsed macroblock descriptors. The decoder never
// constructs or owns a provider; it only consumes one.
type MacroblockProvider interface {
	// TryGetMacroblock must return the currently-being-parsed
	// macroblock as present even if some of its syntax elements are
	// still being filled in; absent fields default to their zero
	// value.
	TryGetMacroblock(addr int) (MacroblockDescriptor, bool)

	// DeriveNeighbors returns the left (A) and top (B) macroblock
	// neighbors of addr (clause 6.4.9).
	DeriveNeighbors(addr int) (a, b Neighbor)

	// DeriveNeighborPartitions returns the four neighbor partitions
	// (A, B, C, D) of a sub-macroblock partition (clause 6.4.11.7).
	DeriveNeighborPartitions(mbPartIdx int, currSubMbType MbTypeTag, subMbPartIdx int) (a, b, c, d NeighborPartition)

	// DeriveNeighbor4x4Luma, DeriveNeighbor4x4Chroma,
	// DeriveNeighbor8x8Luma, DeriveNeighbor8x8LumaChromaArrayType3 and
	// DeriveNeighbor8x8ChromaArrayType3 all return the left/top
	// neighbor of a 4x4 or 8x8 block, addressed by a linear block
	// index (clauses 6.4.11.4, 6.4.11.6).
	DeriveNeighbor4x4Luma(addr, blkIdx int) (a, b Neighbor)
	DeriveNeighbor4x4Chroma(addr, blkIdx int) (a, b Neighbor)
	DeriveNeighbor8x8Luma(addr, blkIdx int) (a, b Neighbor)
	DeriveNeighbor8x8LumaChromaArrayType3(addr, blkIdx int) (a, b Neighbor)
	DeriveNeighbor8x8ChromaArrayType3(addr, blkIdx int) (a, b Neighbor)

	// MbPartPredMode and SubMbPredMode compute the prediction mode of
	// a macroblock or sub-macroblock partition (clauses 7.4.5,
	// 7.4.5.2).
	MbPartPredMode(m MacroblockDescriptor, mbPartIdx int) PredMode
	SubMbPredMode(addr int, subMbType MbTypeTag) PredMode

	// CurrMbAddr, CabacInitIdc, PpsConstrainedIntraPredFlag and
	// CurrentNalUnitType expose slice/picture-level state the
	// binarization layer consults without the decoder re-deriving it.
	CurrMbAddr() int
	CabacInitIdc() int
	PpsConstrainedIntraPredFlag() bool
	CurrentNalUnitType() int
}

// forceGetMacroblock is the internal equivalent of
// forceGetMacroblockByAddress described in spec.md §7: it requires the
// addressed macroblock to exist and surfaces ErrMissingNeighbor if the
// provider disagrees.
func (d *Decoder) forceGetMacroblock(addr int) (MacroblockDescriptor, error) {
	m, ok := d.provider.TryGetMacroblock(addr)
	if !ok {
		return MacroblockDescriptor{}, ErrMissingNeighbor
	}

	return m, nil
}
