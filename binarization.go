package cabac

// unaryCap is the maximum number of bins the U binarization scheme may
// consume before a U-binarized element (DecodeRefIdxLX, DecodeMbQpDelta)
// must raise ErrMalformedStream (spec.md §4.3, §8 boundary scenario 3).
const unaryCap = 24

// fixedLengthBins returns the number of bins FL(cMax) consumes:
// ceil(log2(cMax+1)).
func fixedLengthBins(cMax int) int {
	n := 0
	for (1 << n) <= cMax {
		n++
	}
	return n
}

// readFixedLength implements the FL(cMax) binarization: ceil(log2(cMax+1))
// context-coded decisions, assembled most-significant-bin first. ctxIdx
// is invoked once per bin position.
func (d *Decoder) readFixedLength(cMax int, ctxIdx func(binIdx int) int) (int, error) {
	n := fixedLengthBins(cMax)
	v := 0

	for i := 0; i < n; i++ {
		bin, err := d.decision(ctxIdx(i))
		if err != nil {
			return 0, err
		}
		v = (v << 1) | bin
	}

	return v, nil
}

// readFixedLengthBypass is FL(cMax) decoded entirely through bypass
// bins (used by rem_intra_4x4/8x8_pred_mode).
func (d *Decoder) readFixedLengthBypass(cMax int) (int, error) {
	n := fixedLengthBins(cMax)
	v := 0

	for i := 0; i < n; i++ {
		bin, err := d.eng.readBypass()
		if err != nil {
			return 0, err
		}
		v = (v << 1) | bin
	}

	return v, nil
}

// readUnary implements the U binarization: unary, terminated by a 0
// bin, capped at unaryCap bins. Exceeding the cap without a terminating
// 0 is ErrMalformedStream.
func (d *Decoder) readUnary(ctxIdx func(binIdx int) int) (int, error) {
	v := 0

	for {
		bin, err := d.decision(ctxIdx(v))
		if err != nil {
			return 0, err
		}
		if bin == 0 {
			return v, nil
		}

		v++
		if v >= unaryCap {
			return 0, ErrMalformedStream
		}
	}
}

// readTruncatedUnary implements TU(cMax): unary unless cMax is reached,
// in which case decoding stops without reading a terminating bin.
func (d *Decoder) readTruncatedUnary(cMax int, ctxIdx func(binIdx int) int) (int, error) {
	v := 0

	for v < cMax {
		bin, err := d.decision(ctxIdx(v))
		if err != nil {
			return 0, err
		}
		if bin == 0 {
			return v, nil
		}
		v++
	}

	return v, nil
}

// readExpGolombSuffix implements the Exp-Golomb-k bypass suffix: while
// bypass() == 1, x += 1<<k and k increments; then k bypass bits are
// read MSB-first into the low bits of x.
func (d *Decoder) readExpGolombSuffix(k int) (int, error) {
	x := 0

	for {
		bin, err := d.eng.readBypass()
		if err != nil {
			return 0, err
		}
		if bin == 0 {
			break
		}

		x += 1 << uint(k)
		k++
	}

	suffix := 0
	for i := 0; i < k; i++ {
		bin, err := d.eng.readBypass()
		if err != nil {
			return 0, err
		}
		suffix = (suffix << 1) | bin
	}

	return x | suffix, nil
}

// readUEGk implements UEGk(uCoff, signed, k): a truncated-unary prefix
// (context-coded, cap uCoff); if the prefix saturates, an Exp-Golomb-k
// bypass suffix extends it. If signed, a bypass sign bit follows a
// nonzero magnitude and the result is negated accordingly.
func (d *Decoder) readUEGk(uCoff, k int, signed bool, ctxIdx func(binIdx int) int) (int, error) {
	prefix, err := d.readTruncatedUnary(uCoff, ctxIdx)
	if err != nil {
		return 0, err
	}

	magnitude := prefix
	if prefix == uCoff {
		suffix, err := d.readExpGolombSuffix(k)
		if err != nil {
			return 0, err
		}
		magnitude = uCoff + suffix
	}

	if signed && magnitude != 0 {
		sign, err := d.eng.readBypass()
		if err != nil {
			return 0, err
		}
		if sign == 1 {
			magnitude = -magnitude
		}
	}

	return magnitude, nil
}

// decision is the shared entry point from the binarization layer into
// the arithmetic engine's context-adaptive primitive.
func (d *Decoder) decision(ctxIdx int) (int, error) {
	return d.eng.readDecision(d.ctx.at(ctxIdx))
}

// MapSigned implements the se(v)-style mapping spec.md §8 requires as a
// round-trip property: map(x) = ((-1)^(x+1)) * ceil(x/2).
func MapSigned(x int) int {
	c := (x + 1) / 2
	if x%2 == 0 {
		return -c
	}
	return c
}

// UnmapSigned is MapSigned's inverse.
func UnmapSigned(v int) int {
	if v > 0 {
		return 2*v - 1
	}
	return -2 * v
}
