package cabac

// mb_type and sub_mb_type are each specified as a small hand-rolled
// decision tree (spec.md §4.3). Rather than nested closures (the shape
// spec.md §9 calls out in the source this was distilled from), each
// tree is a sequence of decisions against a small per-branch ctxIdx
// table, grounded on other_examples/ausocean-av__cabac.go's
// binOfIMBTypes/binOfPOrSPMBTypes/binOfBMBTypes bin-string catalogue
// and its CtxIdx table-driven lookup.

// iSliceCtx are the context indices for the I-slice mb_type tree,
// offset 3 (clause 9.3.3.1.2), for bins beyond the first two
// (leading bin and the I_PCM terminate probe).
var iSliceCtx = [3]int{3 + 1, 3 + 2, 3 + 2}

// DecodeMbType decodes the mb_type syntax element and returns both the
// decoded value and the effective slice type used to interpret it
// (spec.md §4.3).
func (d *Decoder) DecodeMbType() (MbTypeResult, error) {
	switch d.sliceType {
	case SliceTypeSI:
		return d.decodeMbTypeSI()
	case SliceTypeI:
		v, err := d.decodeMbTypeI(3)
		return MbTypeResult{Value: v, EffectiveSlice: SliceTypeI}, err
	case SliceTypeP, SliceTypeSP:
		return d.decodeMbTypePOrSP()
	case SliceTypeB:
		return d.decodeMbTypeB()
	default:
		return MbTypeResult{}, ErrInvalidSliceTypeForOperation
	}
}

func (d *Decoder) decodeMbTypeSI() (MbTypeResult, error) {
	bin, err := d.decision(0)
	if err != nil {
		return MbTypeResult{}, err
	}
	if bin == 0 {
		return MbTypeResult{Value: 0, EffectiveSlice: SliceTypeSI}, nil
	}

	v, err := d.decodeMbTypeI(3)
	return MbTypeResult{Value: v, EffectiveSlice: SliceTypeI}, err
}

// decodeMbTypeI walks the I-slice tree at ctxIdxOffset base (3 for a
// genuine I slice, 17 for the P/SP-slice I-suffix reuse, 32 for the
// B-slice I-suffix reuse), per clause 9.3.2.5's Table 9-36/9-37.
func (d *Decoder) decodeMbTypeI(base int) (int, error) {
	bin, err := d.decision(base)
	if err != nil {
		return 0, err
	}
	if bin == 0 {
		return 0, nil
	}

	term, err := d.eng.readTerminate()
	if err != nil {
		return 0, err
	}
	if term == 1 {
		return 25, nil
	}

	b1, err := d.decision(base + 1)
	if err != nil {
		return 0, err
	}
	b2, err := d.decision(base + 2)
	if err != nil {
		return 0, err
	}

	if b1 == 0 && b2 == 0 {
		// mbType 1..4: two more bins, both ctx base+2.
		b3, err := d.decision(base + 2)
		if err != nil {
			return 0, err
		}
		b4, err := d.decision(base + 2)
		if err != nil {
			return 0, err
		}
		return 1 + (b3 << 1) + b4, nil
	}

	if b1 == 0 && b2 == 1 {
		// mbType 5..12: three more bins.
		v, err := d.decodeITailThree(base)
		if err != nil {
			return 0, err
		}
		return 5 + v, nil
	}

	if b1 == 1 && b2 == 0 {
		// mbType 13..16: two more bins.
		b3, err := d.decision(base + 2)
		if err != nil {
			return 0, err
		}
		b4, err := d.decision(base + 2)
		if err != nil {
			return 0, err
		}
		return 13 + (b3 << 1) + b4, nil
	}

	// b1 == 1 && b2 == 1: mbType 17..24: three more bins.
	v, err := d.decodeITailThree(base)
	if err != nil {
		return 0, err
	}
	return 17 + v, nil
}

func (d *Decoder) decodeITailThree(base int) (int, error) {
	b3, err := d.decision(base + 2)
	if err != nil {
		return 0, err
	}
	b4, err := d.decision(base + 2)
	if err != nil {
		return 0, err
	}
	b5, err := d.decision(base + 2)
	if err != nil {
		return 0, err
	}
	return (b3 << 2) + (b4 << 1) + b5, nil
}

func (d *Decoder) decodeMbTypePOrSP() (MbTypeResult, error) {
	lead, err := d.decision(14)
	if err != nil {
		return MbTypeResult{}, err
	}
	if lead == 1 {
		v, err := d.decodeMbTypeI(17)
		return MbTypeResult{Value: 5 + v, EffectiveSlice: d.sliceType}, err
	}

	b1, err := d.decision(15)
	if err != nil {
		return MbTypeResult{}, err
	}
	b2, err := d.decision(16)
	if err != nil {
		return MbTypeResult{}, err
	}

	var v int
	switch {
	case b1 == 0 && b2 == 0:
		v = 0
	case b1 == 0 && b2 == 1:
		v = 3
	case b1 == 1 && b2 == 0:
		v = 2
	default:
		v = 1
	}

	return MbTypeResult{Value: v, EffectiveSlice: d.sliceType}, nil
}

func (d *Decoder) decodeMbTypeB() (MbTypeResult, error) {
	lead, err := d.decision(27)
	if err != nil {
		return MbTypeResult{}, err
	}
	if lead == 0 {
		return MbTypeResult{Value: 0, EffectiveSlice: SliceTypeB}, nil
	}

	bins := make([]int, 0, 7)
	ctxs := [7]int{28, 29, 30, 30, 30, 30, 30}

	for i := 0; i < 7; i++ {
		bin, err := d.decision(ctxs[i])
		if err != nil {
			return MbTypeResult{}, err
		}
		bins = append(bins, bin)

		if i == 1 && bins[0] == 1 && bin == 1 {
			continue // need at least 6 bins to detect the I-suffix carve-out
		}
		if i == 5 && equalBins(bins, []int{1, 1, 1, 1, 0, 1}) {
			break
		}
		if i >= 1 {
			if v, ok := matchBBinString(bins); ok {
				return MbTypeResult{Value: v, EffectiveSlice: SliceTypeB}, nil
			}
		}
	}

	// "111101" carve-out: routes to the I-suffix tree at offset 32.
	if equalBins(bins, []int{1, 1, 1, 1, 0, 1}) {
		v, err := d.decodeMbTypeI(32)
		return MbTypeResult{Value: 23 + v, EffectiveSlice: SliceTypeB}, err
	}

	if v, ok := matchBBinString(bins); ok {
		return MbTypeResult{Value: v, EffectiveSlice: SliceTypeB}, nil
	}

	return MbTypeResult{}, ErrMalformedStream
}

func equalBins(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// binOfBMBTypes lists the fixed bin strings for B mb_type values 1..22
// (clause Table 9-37); value 0 and the 23..48 carve-out are handled
// separately in decodeMbTypeB.
var binOfBMBTypes = [23][]int{
	1:  {1, 0, 0},
	2:  {1, 0, 1},
	3:  {1, 1, 0, 0, 0, 0},
	4:  {1, 1, 0, 0, 0, 1},
	5:  {1, 1, 0, 0, 1, 0},
	6:  {1, 1, 0, 0, 1, 1},
	7:  {1, 1, 0, 1, 0, 0},
	8:  {1, 1, 0, 1, 0, 1},
	9:  {1, 1, 0, 1, 1, 0},
	10: {1, 1, 0, 1, 1, 1},
	11: {1, 1, 1, 1, 1, 0},
	12: {1, 1, 1, 0, 0, 0, 0},
	13: {1, 1, 1, 0, 0, 0, 1},
	14: {1, 1, 1, 0, 0, 1, 0},
	15: {1, 1, 1, 0, 0, 1, 1},
	16: {1, 1, 1, 0, 1, 0, 0},
	17: {1, 1, 1, 0, 1, 0, 1},
	18: {1, 1, 1, 0, 1, 1, 0},
	19: {1, 1, 1, 0, 1, 1, 1},
	20: {1, 1, 1, 1, 0, 0, 0},
	21: {1, 1, 1, 1, 0, 0, 1},
	22: {1, 1, 1, 1, 1, 1},
}

func matchBBinString(bins []int) (int, bool) {
	for v, s := range binOfBMBTypes {
		if len(s) == 0 || len(s) > len(bins) {
			continue
		}
		if equalBins(s, bins[:len(s)]) {
			return v, true
		}
	}
	return 0, false
}

// DecodeSubMbType decodes sub_mb_type, ctxIdxOffset 36 (clause
// 9.3.3.1.1.9 / Table 9-38). P/SP and B slices use distinct bin
// catalogues.
func (d *Decoder) DecodeSubMbType() (int, error) {
	if d.sliceType == SliceTypeB {
		return d.decodeSubMbTypeB()
	}
	return d.decodeSubMbTypePOrSP()
}

func (d *Decoder) decodeSubMbTypePOrSP() (int, error) {
	b0, err := d.decision(36)
	if err != nil {
		return 0, err
	}
	if b0 == 1 {
		return 0, nil
	}

	b1, err := d.decision(37)
	if err != nil {
		return 0, err
	}
	if b1 == 0 {
		return 1, nil
	}

	b2, err := d.decision(37)
	if err != nil {
		return 0, err
	}
	if b2 == 1 {
		return 2, nil
	}
	return 3, nil
}

var binOfBSubMBTypes = [13][]int{
	0:  {0},
	1:  {1, 0, 0},
	2:  {1, 0, 1},
	3:  {1, 1, 0, 0, 0},
	4:  {1, 1, 0, 0, 1},
	5:  {1, 1, 0, 1, 0},
	6:  {1, 1, 0, 1, 1},
	7:  {1, 1, 1, 0, 0, 0},
	8:  {1, 1, 1, 0, 0, 1},
	9:  {1, 1, 1, 0, 1, 0},
	10: {1, 1, 1, 0, 1, 1},
	11: {1, 1, 1, 1, 0},
	12: {1, 1, 1, 1, 1},
}

func (d *Decoder) decodeSubMbTypeB() (int, error) {
	ctxs := [6]int{36, 37, 37, 37, 37, 37}

	var bins []int
	for i := 0; i < len(ctxs); i++ {
		bin, err := d.decision(ctxs[i])
		if err != nil {
			return 0, err
		}
		bins = append(bins, bin)

		for v, s := range binOfBSubMBTypes {
			if len(s) == len(bins) && equalBins(s, bins) {
				return v, nil
			}
		}
	}

	return 0, ErrMalformedStream
}
