// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking so that values which do not fit the
// unsigned 32-bit member space fail fast instead of being silently truncated.
// Every failure wraps ErrOutOfRange for errors.Is checks.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
