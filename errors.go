package cabac

import "errors"

var (
	// ErrBitstreamExhausted is surfaced unchanged from the bit source when
	// a read is attempted past the end of the stream.
	ErrBitstreamExhausted = errors.New("cabac: bitstream exhausted")

	// ErrMalformedStream is raised when a unary binarization exceeds its
	// cap, or an internal invariant would otherwise be violated by the
	// current stream.
	ErrMalformedStream = errors.New("cabac: malformed stream")

	// ErrMissingNeighbor is raised when the provider is asked for the
	// current macroblock by address and returns absent.
	ErrMissingNeighbor = errors.New("cabac: missing neighbor macroblock")

	// ErrInvalidSliceTypeForOperation is raised by DecodeMbType when
	// invoked with a slice type it does not recognize.
	ErrInvalidSliceTypeForOperation = errors.New("cabac: invalid slice type for operation")
)
