// Package cabac implements the H.264 context-adaptive binary arithmetic
// decoder: the binary arithmetic engine (clause 9.3.3.2), the context
// table and its per-slice initialization (clause 9.3.1.1), and the
// binarization/de-binarization of syntax elements (clause 9.3.2) that
// depend on neighboring macroblock state supplied by an external
// MacroblockProvider.
//
// The related AV1 symbol (range) decoder lives in the sibling av1
// package; it shares no state with this package beyond the general shape
// of a binary/multi-symbol arithmetic coder.
package cabac
