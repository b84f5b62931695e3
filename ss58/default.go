package ss58

import "sync/atomic"

// Substrate's generic prefix.
const substratePrefix = 42

var defaultPrefix = func() *atomic.Uint32 {
	v := &atomic.Uint32{}
	v.Store(substratePrefix)

	return v
}()

// DefaultFormat returns the process-wide default address format used for
// encoding when no explicit prefix is given. Starts out as the generic
// substrate prefix.
func DefaultFormat() AddressFormat {
	return AddressFormat(defaultPrefix.Load())
}

// SetDefaultFormat replaces the process-wide default address format.
func SetDefaultFormat(format AddressFormat) {
	defaultPrefix.Store(uint32(format.Prefix()))
}

// IsDefault reports whether the format is the current process-wide default.
func (f AddressFormat) IsDefault() bool {
	return f == DefaultFormat()
}
