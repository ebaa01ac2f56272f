package cabac

// SliceType identifies the coding type of a slice, as consumed by
// context-table initialization (9.3.1.1) and by DecodeMbType's tree
// selection (9.3.2.5).
type SliceType int

const (
	SliceTypeP SliceType = iota
	SliceTypeB
	SliceTypeI
	SliceTypeSP
	SliceTypeSI
)

func (s SliceType) String() string {
	switch s {
	case SliceTypeP:
		return "P"
	case SliceTypeB:
		return "B"
	case SliceTypeI:
		return "I"
	case SliceTypeSP:
		return "SP"
	case SliceTypeSI:
		return "SI"
	default:
		return "unknown"
	}
}

// PredMode is the macroblock/sub-macroblock prediction coding mode
// (clause 7.4.5/7.4.5.2), supplied by the neighbor provider.
type PredMode int

const (
	PredModeIntra PredMode = iota
	PredModeInter
	PredModePcm
	PredModeOther
)

// MbAffMode reports whether a macroblock was coded in MBAFF frame or
// field mode, or neither (non-MBAFF picture).
type MbAffMode int

const (
	MbAffNeither MbAffMode = iota
	MbAffFrame
	MbAffField
)

// MbTypeTag names the macroblock type categories the binarization layer
// must distinguish for neighbor condTermFlag derivation (spec.md §4.3).
type MbTypeTag int

const (
	MbTypeOther MbTypeTag = iota
	MbTypeBDirect16x16
	MbTypeBSkip
	MbTypePSkip
	MbTypeP8x8
	MbTypeB8x8
	MbTypeIPCM
	MbTypeINxN
	MbTypeSI
)

// ResidualBlockKind is the 14-variant tag (ctxBlockCat, clause 9.3.3.1.3)
// identifying which residual transform-coefficient block is being
// parsed. Values follow Table 9-42 ordering.
type ResidualBlockKind int

const (
	BlockLumaDCIntra16x16 ResidualBlockKind = iota // 0
	BlockLumaACIntra16x16                          // 1
	BlockLuma4x4                                   // 2
	BlockChromaDC                                  // 3
	BlockChromaAC                                  // 4
	BlockLuma8x8                                   // 5
	BlockCbDCIntra16x16                            // 6
	BlockCbACIntra16x16                            // 7
	BlockCb4x4                                     // 8
	BlockCbDCIntra16x16v2                          // 9 (chroma-array-type-3 8x8 slot)
	BlockCrDCIntra16x16                            // 10
	BlockCrACIntra16x16                            // 11
	BlockCr4x4                                     // 12
	BlockCb8x8                                     // 13
)

// MbTypeResult is what DecodeMbType returns: the decoded value plus the
// effective slice type used to interpret it, per spec.md §4.3.
type MbTypeResult struct {
	Value          int
	EffectiveSlice SliceType
}
