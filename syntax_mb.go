package cabac

// DecodeMbSkipFlag decodes mb_skip_flag (clause 9.3.3.1.1.1). ctxIdxOffset
// is 11 for P/SP slices, 24 for B slices; ctxIdxInc is the sum of the
// left and top neighbors' condTermFlag, each true unless the neighbor
// is unavailable or itself skipped.
func (d *Decoder) DecodeMbSkipFlag() (bool, error) {
	addr := d.provider.CurrMbAddr()
	left, top := d.provider.DeriveNeighbors(addr)

	base := 11
	if d.sliceType == SliceTypeB {
		base = 24
	}

	inc := condTermFlag01(left.Available, left.Descriptor.SkipFlag) +
		condTermFlag01(top.Available, top.Descriptor.SkipFlag)

	bin, err := d.decision(base + inc)
	if err != nil {
		return false, err
	}
	return bin == 1, nil
}

// DecodeMbFieldDecodingFlag decodes mb_field_decoding_flag (clause
// 9.3.3.1.1.2), only meaningful under MBAFF. ctxIdxOffset is 70;
// ctxIdxInc depends on whether the left/top neighbor macroblock pairs
// are themselves field-coded.
func (d *Decoder) DecodeMbFieldDecodingFlag() (bool, error) {
	addr := d.provider.CurrMbAddr()
	left, top := d.provider.DeriveNeighbors(addr)

	inc := condTermFlag01(left.Available, left.Descriptor.MbAff != MbAffField) +
		condTermFlag01(top.Available, top.Descriptor.MbAff != MbAffField)

	bin, err := d.decision(70 + inc)
	if err != nil {
		return false, err
	}
	return bin == 1, nil
}

// DecodeTransformSize8x8Flag decodes transform_size_8x8_flag (clause
// 9.3.3.1.1.10). ctxIdxOffset is 399; ctxIdxInc is the sum of the
// left/top neighbors' own transform_size_8x8_flag.
func (d *Decoder) DecodeTransformSize8x8Flag() (bool, error) {
	addr := d.provider.CurrMbAddr()
	left, top := d.provider.DeriveNeighbors(addr)

	inc := condTermFlag01(left.Available, !left.Descriptor.TransformSize8x8) +
		condTermFlag01(top.Available, !top.Descriptor.TransformSize8x8)

	bin, err := d.decision(399 + inc)
	if err != nil {
		return false, err
	}
	return bin == 1, nil
}

// DecodeEndOfSliceFlag decodes end_of_slice_flag: a single terminate
// decision against the engine's dedicated terminate probability
// (clause 9.3.3.2.4), never a regular context-coded decision.
func (d *Decoder) DecodeEndOfSliceFlag() (bool, error) {
	bin, err := d.eng.readTerminate()
	if err != nil {
		return false, err
	}
	return bin == 1, nil
}
