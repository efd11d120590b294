package logimage

import (
	"fmt"

	"github.com/pkg/errors"
)

// FormatError reports that the input is not a valid DPX or Cineon file, or
// that a field combination the format allows is not internally consistent
// (e.g. an element count outside 1..8).
type FormatError string

func (e FormatError) Error() string {
	return fmt.Sprintf("logimage: invalid format: %s", string(e))
}

// UnsupportedError reports that the input uses a valid but unimplemented
// feature: an unsupported (bits, packing) combination, a descriptor this
// core does not decode or encode, or an unknown transfer function.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("logimage: unsupported feature: %s", string(e))
}

// ArgumentError reports an inconsistent width/height/depth passed by the
// caller, as opposed to something read from a file.
type ArgumentError string

func (e ArgumentError) Error() string {
	return fmt.Sprintf("logimage: invalid argument: %s", string(e))
}

// wrapIO annotates an I/O failure (short read/write, seek failure) with the
// operation that triggered it while preserving the original error as the
// cause, so callers can still errors.Is/As down to the underlying error.
func wrapIO(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "logimage: %s", op)
}
