package cabac

// DecodeCodedBlockPattern decodes coded_block_pattern via the hybrid
// scheme (clause 9.3.2.6): the luma nibble is FL(15) over four
// context-coded bins, ctxIdxOffset 73; the chroma value is TU(2),
// ctxIdxOffset 77. Both halves consult the left/top neighbor CBP for
// their ctxIdxInc. The two halves combine as
// luma + 16*chroma (spec.md §9's corrected formula, not (luma+16)*chroma).
func (d *Decoder) DecodeCodedBlockPattern() (int, error) {
	addr := d.provider.CurrMbAddr()
	left, top := d.provider.DeriveNeighbors(addr)

	luma := 0
	for b := 0; b < 4; b++ {
		incA := cbpCondTerm(left.Available, left.Descriptor, b, true)
		incB := cbpCondTerm(top.Available, top.Descriptor, b, false)

		bin, err := d.decision(73 + incA + 2*incB)
		if err != nil {
			return 0, err
		}
		luma |= bin << uint(b)
	}

	chromaCondTerm := func(n Neighbor, binIdx int) int {
		if !n.Available {
			return 0
		}
		if n.Descriptor.Pred == PredModePcm {
			return 1
		}
		if (binIdx == 0 && n.Descriptor.Chroma() == 0) || (binIdx == 1 && n.Descriptor.Chroma() != 2) {
			return 0
		}
		return 1
	}

	chroma, err := d.readTruncatedUnary(2, func(binIdx int) int {
		inc := chromaCondTerm(left, binIdx) + 2*chromaCondTerm(top, binIdx)
		if binIdx == 1 {
			inc += 4
		}
		return 77 + inc
	})
	if err != nil {
		return 0, err
	}

	return luma + 16*chroma, nil
}

// cbpCondTerm evaluates the coded_block_pattern condTermFlag for
// 8x8-luma-block b's left (isLeft) or top neighbor: 0 when the
// neighbor is unavailable, PCM-coded, or already has that block's CBP
// bit set; 1 otherwise.
func cbpCondTerm(available bool, m MacroblockDescriptor, b int, isLeft bool) int {
	if !available {
		return 0
	}
	if m.Pred == PredModePcm {
		return 0
	}

	neighborBlock := b
	if isLeft {
		neighborBlock = b ^ 1
	} else {
		neighborBlock = b ^ 2
	}

	if m.Luma()&(1<<uint(neighborBlock)) != 0 {
		return 0
	}
	return 1
}

// DecodeCodedBlockFlag decodes coded_block_flag (clause 9.3.3.1.1.9):
// a single context-coded decision whose ctxIdxOffset is
// codedBlockFlagOffsets[blockKindFactor] and whose ctxIdxInc sums the
// availability-gated condTermFlag of the two caller-supplied neighbor
// transform blocks (set via SetCodedBlockFlagOptions).
func (d *Decoder) DecodeCodedBlockFlag() (bool, error) {
	factor := blockKindFactor(d.residualBlockKind, MbAffNeither)
	offset := codedBlockFlagOffsets[factor]

	opts := d.codedBlockFlagOptions
	inc := condTermFlag01(opts.NeighborAAvailable, opts.NeighborACBF) +
		condTermFlag01(opts.NeighborBAvailable, opts.NeighborBCBF)

	bin, err := d.decision(offset + inc)
	if err != nil {
		return false, err
	}
	return bin == 1, nil
}

// DecodeSignificantCoeffFlag decodes significant_coeff_flag (clause
// 9.3.3.1.3): ctxIdxOffset from significantCoeffFlagOffsets, ctxIdxInc
// either levelListIdx directly (most block kinds), min(levelListIdx /
// NumC8x8, 2) for chroma DC (ctxBlockCat 3, when NumC8x8 is set), or a
// position-table lookup for the 8x8-family kinds (ctxBlockCat 5, 9, 13).
func (d *Decoder) DecodeSignificantCoeffFlag(mbaff MbAffMode) (bool, error) {
	factor := blockKindFactor(d.residualBlockKind, mbaff)
	offset := significantCoeffFlagOffsets[factor]

	inc := d.levelListIdx
	switch {
	case is8x8FamilyBlock(d.residualBlockKind):
		inc = positionTableLookup(significantCoeffPositionTable, mbaff, d.levelListIdx)
	case d.residualBlockKind == BlockChromaDC && d.numC8x8 > 0:
		inc = min(d.levelListIdx/d.numC8x8, 2)
	}

	bin, err := d.decision(offset + inc)
	if err != nil {
		return false, err
	}
	return bin == 1, nil
}

// DecodeLastSignificantCoeffFlag decodes last_significant_coeff_flag
// analogously to DecodeSignificantCoeffFlag, using
// lastSignificantCoeffFlagOffsets and lastSignificantCoeffPositionTable.
func (d *Decoder) DecodeLastSignificantCoeffFlag(mbaff MbAffMode) (bool, error) {
	factor := blockKindFactor(d.residualBlockKind, mbaff)
	offset := lastSignificantCoeffFlagOffsets[factor]

	inc := d.levelListIdx
	switch {
	case is8x8FamilyBlock(d.residualBlockKind):
		inc = positionTableLookup(lastSignificantCoeffPositionTable, mbaff, d.levelListIdx)
	case d.residualBlockKind == BlockChromaDC && d.numC8x8 > 0:
		inc = min(d.levelListIdx/d.numC8x8, 2)
	}

	bin, err := d.decision(offset + inc)
	if err != nil {
		return false, err
	}
	return bin == 1, nil
}

func is8x8FamilyBlock(rbk ResidualBlockKind) bool {
	switch rbk {
	case BlockLuma8x8, BlockCbDCIntra16x16v2, BlockCb8x8:
		return true
	default:
		return false
	}
}

func positionTableLookup(t positionTable, mbaff MbAffMode, levelListIdx int) int {
	if levelListIdx < 0 || levelListIdx >= len(t.frame) {
		return 0
	}
	if mbaff == MbAffField {
		return t.field[levelListIdx]
	}
	return t.frame[levelListIdx]
}

// DecodeCoeffAbsLevelMinus1 decodes coeff_abs_level_minus1 (clause
// 9.3.3.1.3): UEGk(14, signed=false, k=0). The prefix's ctxIdxOffset is
// coeffAbsLevelMinus1PrefixOffsets[factor]; bin 0's ctxIdxInc depends
// on numDecodAbsLevelGt1 and numDecodAbsLevelEq1, and later bins use
// ctxIdxInc 5 + min(4, numDecodAbsLevelGt1), the cap lowered to 3 for
// chroma DC blocks (ctxBlockCat 3). The suffix, when reached, is
// bypass-coded and unsigned (the sign is a separate syntax element).
func (d *Decoder) DecodeCoeffAbsLevelMinus1(mbaff MbAffMode) (int, error) {
	factor := blockKindFactor(d.residualBlockKind, mbaff)
	offset := coeffAbsLevelMinus1PrefixOffsets[factor]

	incBin0 := 1
	if d.numDecodAbsLevelGt1 == 0 {
		if d.numDecodAbsLevelEq1 > 4 {
			incBin0 = 4
		} else if d.numDecodAbsLevelEq1 > 0 {
			incBin0 = d.numDecodAbsLevelEq1
		} else {
			incBin0 = 0
		}
	} else {
		v := d.numDecodAbsLevelGt1
		if v > 4 {
			v = 4
		}
		incBin0 = 4 + v
	}

	gt1Cap := 4
	if d.residualBlockKind == BlockChromaDC {
		gt1Cap = 3
	}

	return d.readUEGk(14, 0, false, func(binIdx int) int {
		if binIdx == 0 {
			return offset + incBin0
		}
		return offset + 5 + min(gt1Cap, d.numDecodAbsLevelGt1)
	})
}

// DecodeCoeffSignFlag decodes coeff_sign_flag: a single bypass bin
// (clause 9.3.3.1.3, "bypass only").
func (d *Decoder) DecodeCoeffSignFlag() (bool, error) {
	bin, err := d.eng.readBypass()
	if err != nil {
		return false, err
	}
	return bin == 1, nil
}
