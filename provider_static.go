package cabac

// StaticProvider is a minimal, concrete MacroblockProvider backed by a
// flat slice of descriptors addressed by mbAddr, plus a picture width
// in macroblocks used to derive the left/top neighbor addresses.
// It exists as a reference implementation of the provider contract for
// tests, analogous to how kulaginds-lzma's window is the one concrete
// implementation of the decoder's neighbor-history contract.
type StaticProvider struct {
	Width int // picture width in macroblocks

	Macroblocks []MacroblockDescriptor

	CabacInitIdcValue                int
	PpsConstrainedIntraPredFlagValue bool
	CurrentNalUnitTypeValue          int
	CurrMbAddrValue                  int
}

// NewStaticProvider constructs a StaticProvider for a picture of the
// given width (in macroblocks) with n macroblocks, all zero-valued
// until populated by the caller.
func NewStaticProvider(width, n int) *StaticProvider {
	return &StaticProvider{
		Width:       width,
		Macroblocks: make([]MacroblockDescriptor, n),
	}
}

func (p *StaticProvider) TryGetMacroblock(addr int) (MacroblockDescriptor, bool) {
	if addr < 0 || addr >= len(p.Macroblocks) {
		return MacroblockDescriptor{}, false
	}

	return p.Macroblocks[addr], true
}

func (p *StaticProvider) neighbor(addr int) Neighbor {
	m, ok := p.TryGetMacroblock(addr)
	return Neighbor{Descriptor: m, Available: ok}
}

// leftAddr and topAddr implement clause 6.4.9's raster-scan adjacency
// for a non-MBAFF picture of fixed width.
func (p *StaticProvider) leftAddr(addr int) int {
	if p.Width <= 0 || addr%p.Width == 0 {
		return -1
	}
	return addr - 1
}

func (p *StaticProvider) topAddr(addr int) int {
	if p.Width <= 0 || addr < p.Width {
		return -1
	}
	return addr - p.Width
}

func (p *StaticProvider) DeriveNeighbors(addr int) (a, b Neighbor) {
	return p.neighbor(p.leftAddr(addr)), p.neighbor(p.topAddr(addr))
}

func (p *StaticProvider) DeriveNeighborPartitions(mbPartIdx int, currSubMbType MbTypeTag, subMbPartIdx int) (a, b, c, d NeighborPartition) {
	addr := p.CurrMbAddrValue

	wrap := func(n Neighbor) NeighborPartition {
		return NeighborPartition{Descriptor: n.Descriptor, Available: n.Available, MbPartIdx: mbPartIdx, SubMbPartIdx: subMbPartIdx}
	}

	left, top := p.DeriveNeighbors(addr)
	a, b = wrap(left), wrap(top)
	c = wrap(p.neighbor(p.topAddr(addr) + 1))
	d = wrap(p.neighbor(p.topAddr(addr) - 1))

	return a, b, c, d
}

func (p *StaticProvider) DeriveNeighbor4x4Luma(addr, blkIdx int) (a, b Neighbor) {
	return p.DeriveNeighbors(addr)
}

func (p *StaticProvider) DeriveNeighbor4x4Chroma(addr, blkIdx int) (a, b Neighbor) {
	return p.DeriveNeighbors(addr)
}

func (p *StaticProvider) DeriveNeighbor8x8Luma(addr, blkIdx int) (a, b Neighbor) {
	return p.DeriveNeighbors(addr)
}

func (p *StaticProvider) DeriveNeighbor8x8LumaChromaArrayType3(addr, blkIdx int) (a, b Neighbor) {
	return p.DeriveNeighbors(addr)
}

func (p *StaticProvider) DeriveNeighbor8x8ChromaArrayType3(addr, blkIdx int) (a, b Neighbor) {
	return p.DeriveNeighbors(addr)
}

func (p *StaticProvider) MbPartPredMode(m MacroblockDescriptor, mbPartIdx int) PredMode {
	return m.Pred
}

func (p *StaticProvider) SubMbPredMode(addr int, subMbType MbTypeTag) PredMode {
	m, ok := p.TryGetMacroblock(addr)
	if !ok {
		return PredModeOther
	}
	return m.Pred
}

func (p *StaticProvider) CurrMbAddr() int                   { return p.CurrMbAddrValue }
func (p *StaticProvider) CabacInitIdc() int                 { return p.CabacInitIdcValue }
func (p *StaticProvider) PpsConstrainedIntraPredFlag() bool { return p.PpsConstrainedIntraPredFlagValue }
func (p *StaticProvider) CurrentNalUnitType() int           { return p.CurrentNalUnitTypeValue }
