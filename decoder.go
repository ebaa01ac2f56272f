package cabac

import "github.com/arvorion/cabac/bitio"

// Decoder is one CABAC decoder instance: arithmetic engine, context
// table, and the per-element setup fields the caller adjusts before
// invoking a Decode<Element> operation (spec.md §3, "Decoder Instance
// State"). A Decoder is not safe for concurrent use; each stream gets
// its own instance (spec.md §5).
type Decoder struct {
	sliceType SliceType
	provider  MacroblockProvider

	eng *engine
	ctx *ContextTable

	// Per-element setup fields, mutated by the caller between
	// Decode<Element> calls.
	mbPartIdx             int
	subMbPartIdx          int
	residualBlockKind     ResidualBlockKind
	levelListIdx          int
	numC8x8               int
	numDecodAbsLevelGt1   int
	numDecodAbsLevelEq1   int
	codedBlockFlagOptions CodedBlockFlagOptions
}

// CodedBlockFlagOptions carries the transform-block neighbor state
// coded_block_flag needs beyond the common setup fields (spec.md
// §4.3's "codedBlockFlagOptions" setup field): whether the relevant
// neighbor transform blocks are available and, when they are, their
// already-decoded coded_block_flag value.
type CodedBlockFlagOptions struct {
	NeighborAAvailable, NeighborBAvailable bool
	NeighborACBF, NeighborBCBF             bool
}

// NewDecoder constructs a CABAC decoder for one slice: it loads the
// initial 9-bit codIOffset from src and builds the 1024-entry context
// table from (sliceType, sliceQPy, provider.CabacInitIdc()).
func NewDecoder(sliceType SliceType, sliceQPy int, provider MacroblockProvider, src bitio.BitSource) (*Decoder, error) {
	eng, err := newEngine(src)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		sliceType: sliceType,
		provider:  provider,
		eng:       eng,
		ctx:       newContextTable(sliceType, sliceQPy, provider.CabacInitIdc()),
	}, nil
}

// Context exposes context model i for testing, the `this[i]` accessor
// spec.md §6 asks for.
func (d *Decoder) Context(i int) ContextModel { return d.ctx.Context(i) }

// SetMbPartIdx sets the current macroblock partition index, consulted
// by mvd_lX and ref_idx_lX.
func (d *Decoder) SetMbPartIdx(v int) { d.mbPartIdx = v }

// SetSubMbPartIdx sets the current sub-macroblock partition index.
func (d *Decoder) SetSubMbPartIdx(v int) { d.subMbPartIdx = v }

// SetResidualBlockKind sets ctxBlockCat for the residual block about to
// be parsed.
func (d *Decoder) SetResidualBlockKind(v ResidualBlockKind) { d.residualBlockKind = v }

// SetLevelListIdx sets the coefficient position index consulted by
// significant_coeff_flag and last_significant_coeff_flag.
func (d *Decoder) SetLevelListIdx(v int) { d.levelListIdx = v }

// SetNumC8x8 sets the chroma 8x8 block count (NumC8x8) used by
// ctxBlockCat == 3 position derivation.
func (d *Decoder) SetNumC8x8(v int) { d.numC8x8 = v }

// SetNumDecodAbsLevelGt1 and SetNumDecodAbsLevelEq1 set the running
// counts coeff_abs_level_minus1's prefix context depends on.
func (d *Decoder) SetNumDecodAbsLevelGt1(v int) { d.numDecodAbsLevelGt1 = v }
func (d *Decoder) SetNumDecodAbsLevelEq1(v int) { d.numDecodAbsLevelEq1 = v }

// SetCodedBlockFlagOptions sets the neighbor transform-block state
// coded_block_flag consults.
func (d *Decoder) SetCodedBlockFlagOptions(v CodedBlockFlagOptions) { d.codedBlockFlagOptions = v }

// currMb returns the macroblock currently being parsed, per
// forceGetMacroblockByAddress semantics (spec.md §6, §7).
func (d *Decoder) currMb() (MacroblockDescriptor, error) {
	return d.forceGetMacroblock(d.provider.CurrMbAddr())
}

// condTermFlag01 is the generic ctxIdxInc = condTermFlagA + condTermFlagB
// shape shared by mb_skip_flag, transform_size_8x8_flag and others
// (spec.md §4.3, "ctxIdxInc computation — general shape").
func condTermFlag01(available bool, flag bool) int {
	if !available || flag {
		return 0
	}
	return 1
}
