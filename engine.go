package cabac

import (
	"fmt"

	"github.com/arvorion/cabac/bitio"
)

// engine holds the two arithmetic registers shared by every primitive
// read (clause 9.3.3.2). It mirrors kulaginds-lzma's rangeDecoder: a
// small register pair plus the bit source it renormalizes against, with
// every primitive returning an error instead of panicking on a starved
// source.
type engine struct {
	src bitio.BitSource

	codIRange int
	codIOffset int
}

// newEngine constructs the arithmetic engine and performs the initial
// codIOffset load (9.3.1.2): codIRange is fixed at 510 and codIOffset is
// read as 9 raw bits from src.
func newEngine(src bitio.BitSource) (*engine, error) {
	off, err := bitio.ReadBits(src, 9)
	if err != nil {
		return nil, joinExhausted(err)
	}

	return &engine{
		src:        src,
		codIRange:  510,
		codIOffset: int(off),
	}, nil
}

// joinExhausted classifies any bit-source error as ErrBitstreamExhausted
// while keeping the underlying cause reachable via errors.Unwrap.
func joinExhausted(err error) error {
	return fmt.Errorf("%w: %v", ErrBitstreamExhausted, err)
}

// readBit reads a single bit from the underlying source, translating any
// error into ErrBitstreamExhausted.
func (e *engine) readBit() (int, error) {
	bit, err := e.src.ReadBit()
	if err != nil {
		return 0, joinExhausted(err)
	}

	if bit {
		return 1, nil
	}

	return 0, nil
}

// renormalize implements 9.3.3.2.2: doubles codIRange and shifts in a
// fresh bit until codIRange is back in [256, 1023].
func (e *engine) renormalize() error {
	for e.codIRange < 256 {
		bit, err := e.readBit()
		if err != nil {
			return err
		}

		e.codIRange <<= 1
		e.codIOffset = (e.codIOffset << 1) | bit
	}

	return nil
}

// readDecision implements 9.3.3.2.1: a context-adaptive binary decision.
// ctx is mutated in place (state transition) as a side effect, matching
// the way rangeDecoder.DecodeBit mutates the *prob it is handed.
func (e *engine) readDecision(ctx *ContextModel) (int, error) {
	qCodIRangeIdx := (e.codIRange >> 6) & 3
	codIRangeLPS := int(rangeTabLPS[ctx.pStateIdx][qCodIRangeIdx])

	e.codIRange -= codIRangeLPS

	var bin int

	if e.codIOffset >= e.codIRange {
		bin = 1 - ctx.mpsValue()
		e.codIOffset -= e.codIRange
		e.codIRange = codIRangeLPS

		if ctx.pStateIdx == 0 {
			ctx.flipMPS()
		}
		ctx.pStateIdx = transIdxLPS[ctx.pStateIdx]
	} else {
		bin = ctx.mpsValue()
		ctx.pStateIdx = transIdxMPS[ctx.pStateIdx]
	}

	if err := e.renormalize(); err != nil {
		return 0, err
	}

	return bin, nil
}

// readBypass implements 9.3.3.2.3: an equiprobable bin, decoded without
// touching any context model and without renormalization.
func (e *engine) readBypass() (int, error) {
	bit, err := e.readBit()
	if err != nil {
		return 0, err
	}

	e.codIOffset = (e.codIOffset << 1) | bit

	if e.codIOffset >= e.codIRange {
		e.codIOffset -= e.codIRange
		return 1, nil
	}

	return 0, nil
}

// readTerminate implements 9.3.3.2.4: the end-of-slice / I_PCM probe.
func (e *engine) readTerminate() (int, error) {
	e.codIRange -= 2

	if e.codIOffset >= e.codIRange {
		return 1, nil
	}

	if err := e.renormalize(); err != nil {
		return 0, err
	}

	return 0, nil
}
