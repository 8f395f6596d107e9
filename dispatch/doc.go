// Package dispatch maps host numeric-library operations onto dimension
// rules: for each supported operation name it determines the result
// dimension, validates operand compatibility, unwraps operands to raw
// payloads, delegates to the numeric host, and rewraps the result.
//
// Operation names the table does not cover yield ErrUnsupported so the
// host's own fallback can run.
package dispatch
