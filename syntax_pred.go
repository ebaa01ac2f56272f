package cabac

// DecodeRefIdxLX decodes ref_idx_l0/ref_idx_l1 (clause 9.3.3.1.1.6):
// U binarization, ctxIdxOffset 54, capped by unaryCap (spec.md §8
// boundary scenario 3). Bin 0 uses a neighbor-derived ctxIdxInc; bins
// beyond the first use refIdxHigherBinCtxIdxInc.
func (d *Decoder) DecodeRefIdxLX(listIdx int) (int, error) {
	addr := d.provider.CurrMbAddr()
	a, b, _, _ := d.provider.DeriveNeighborPartitions(d.mbPartIdx, MbTypeOther, d.subMbPartIdx)
	_ = addr

	incBin0 := refIdxCondTerm(a) + refIdxCondTerm(b)

	return d.readUnary(func(binIdx int) int {
		if binIdx == 0 {
			return 54 + incBin0
		}
		idx := binIdx
		if idx >= len(refIdxHigherBinCtxIdxInc) {
			idx = len(refIdxHigherBinCtxIdxInc) - 1
		}
		return 54 + refIdxHigherBinCtxIdxInc[idx]
	})
}

// refIdxCondTerm evaluates the ref_idx_lX condTermFlag for one neighbor
// partition: 1 when the neighbor is available, non-intra, and carries a
// nonzero reference index (clause 9.3.3.1.1.6).
func refIdxCondTerm(n NeighborPartition) int {
	if !n.Available || n.Descriptor.Pred == PredModeIntra {
		return 0
	}
	if n.Descriptor.RefIdx[0][n.MbPartIdx] > 0 {
		return 1
	}
	return 0
}

// DecodeMvdComp decodes one component (0 = horizontal, 1 = vertical) of
// mvd_l0/mvd_l1 (clause 9.3.3.1.1.7): UEGk(9, signed=true, k=3),
// ctxIdxOffset 40 (comp 0) or 47 (comp 1). Bin 0's ctxIdxInc derives
// from the summed absolute neighbor mvd magnitudes; later bins use
// mvdHigherBinCtxIdxInc.
func (d *Decoder) DecodeMvdComp(comp int) (int, error) {
	base := 40
	if comp == 1 {
		base = 47
	}

	a, b, _, _ := d.provider.DeriveNeighborPartitions(d.mbPartIdx, MbTypeOther, d.subMbPartIdx)
	absSum := mvdAbsSum(a, d.mbPartIdx, d.subMbPartIdx, comp) + mvdAbsSum(b, d.mbPartIdx, d.subMbPartIdx, comp)

	incBin0 := 0
	switch {
	case absSum < 3:
		incBin0 = 0
	case absSum <= 32:
		incBin0 = 1
	default:
		incBin0 = 2
	}

	return d.readUEGk(9, 3, true, func(binIdx int) int {
		if binIdx == 0 {
			return base + incBin0
		}
		idx := binIdx
		if idx >= len(mvdHigherBinCtxIdxInc) {
			idx = len(mvdHigherBinCtxIdxInc) - 1
		}
		return base + mvdHigherBinCtxIdxInc[idx]
	})
}

func mvdAbsSum(n NeighborPartition, mbPartIdx, subMbPartIdx, comp int) int {
	if !n.Available {
		return 0
	}
	v := n.Descriptor.MvdComp[n.MbPartIdx][n.SubMbPartIdx][comp]
	if v < 0 {
		return -v
	}
	return v
}

// DecodeIntraChromaPredMode decodes intra_chroma_pred_mode (clause
// 9.3.3.1.1.8): TU(cMax=3), ctxIdxOffset 64. Bin 0's ctxIdxInc sums the
// left/top neighbors' condTermFlag, 1 for an available intra-coded
// neighbor; the neighbor's own intra_chroma_pred_mode is not consulted.
// Later bins use a fixed ctxIdxInc of 3.
func (d *Decoder) DecodeIntraChromaPredMode() (int, error) {
	addr := d.provider.CurrMbAddr()
	left, top := d.provider.DeriveNeighbors(addr)

	incBin0 := condTermFlag01(left.Available, left.Descriptor.Pred != PredModeIntra) +
		condTermFlag01(top.Available, top.Descriptor.Pred != PredModeIntra)

	return d.readTruncatedUnary(3, func(binIdx int) int {
		if binIdx == 0 {
			return 64 + incBin0
		}
		return 64 + 3
	})
}

// DecodePrevIntraPredModeFlag decodes prev_intra_4x4/8x8_pred_mode_flag:
// a single bypass-coded decision (clause 9.3.3.1.2).
func (d *Decoder) DecodePrevIntraPredModeFlag() (bool, error) {
	bin, err := d.eng.readBypass()
	if err != nil {
		return false, err
	}
	return bin == 1, nil
}

// DecodeRemIntraPredMode decodes rem_intra_4x4/8x8_pred_mode: FL(cMax=7)
// decoded entirely through bypass bins (clause 9.3.3.1.2).
func (d *Decoder) DecodeRemIntraPredMode() (int, error) {
	return d.readFixedLengthBypass(7)
}

// DecodeMbQpDelta decodes mb_qp_delta (clause 9.3.3.1.1.5): U
// binarization, ctxIdxOffset 60. Bin 0's ctxIdxInc depends on whether
// the previous macroblock in decoding order had a nonzero delta; bin 1
// uses ctxIdxInc 2 and every later bin uses ctxIdxInc 3.
func (d *Decoder) DecodeMbQpDelta(prevMbHadNonZeroDelta bool) (int, error) {
	incBin0 := 0
	if prevMbHadNonZeroDelta {
		incBin0 = 1
	}

	v, err := d.readUnary(func(binIdx int) int {
		switch binIdx {
		case 0:
			return 60 + incBin0
		case 1:
			return 60 + 2
		default:
			return 60 + 3
		}
	})
	if err != nil {
		return 0, err
	}

	return MapSigned(v), nil
}
