package voxelcore

import "fmt"

// Panicf reports a programmer error: an out-of-range bit index, an invalid
// face byte, an undersized mesh destination buffer. These are not
// recoverable — the core's inputs are programmatically constructed (§7 of
// the spec this module implements), so there is nothing a caller could do
// with a returned error that it couldn't have checked beforehand.
func Panicf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
