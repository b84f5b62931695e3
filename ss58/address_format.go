package ss58

import (
	"errors"
	"sort"
	"strconv"
)

// ErrParse is returned when a string or prefix does not resolve to a known
// network format.
var ErrParse = errors.New("failed to parse network value as u16")

// Prefixes above this bound are reserved for future assignment regardless of
// the registry contents.
const reservedBound = 16384

// AddressFormat is an SS58 network prefix, known or not. The zero value is
// the Polkadot relay chain prefix.
type AddressFormat uint16

// prefixIndex is one entry of the generated prefix lookup table.
type prefixIndex struct {
	prefix uint16
	index  uint16
}

// Custom wraps a manually provided prefix into an address format.
func Custom(prefix uint16) AddressFormat {
	return AddressFormat(prefix)
}

// Prefix returns the raw network prefix.
func (f AddressFormat) Prefix() uint16 {
	return uint16(f)
}

// Registry resolves the format to its known registry variant.
// Returns ErrParse when the prefix matches no registered network.
func (f AddressFormat) Registry() (AddressFormatRegistry, error) {
	prefix := uint16(f)

	lookup := sort.Search(len(prefixToIndex), func(i int) bool {
		return prefixToIndex[i].prefix >= prefix
	})
	if lookup == len(prefixToIndex) || prefixToIndex[lookup].prefix != prefix {
		return 0, ErrParse
	}

	return allFormats[prefixToIndex[lookup].index], nil
}

// IsReserved reports whether the prefix is reserved for future use, either
// explicitly by the registry or by lying beyond the reserved bound.
func (f AddressFormat) IsReserved() bool {
	prefix := uint16(f)
	if prefix > reservedBound {
		return true
	}

	lookup := sort.Search(len(reservedPrefixes), func(i int) bool {
		return reservedPrefixes[i] >= prefix
	})

	return lookup < len(reservedPrefixes) && reservedPrefixes[lookup] == prefix
}

// IsCustom reports whether the prefix is absent from the compiled registry.
// The check walks the prefix-run table; most known prefixes fall into the
// first low-numbered run.
func (f AddressFormat) IsCustom() bool {
	prefix := uint16(f)

	for k := range runStarts {
		if prefix >= runStarts[k] && prefix <= runEnds[k] {
			return false
		}
	}

	return true
}

// String prints the network name when the prefix is known, the decimal
// prefix otherwise.
func (f AddressFormat) String() string {
	if known, err := f.Registry(); err == nil {
		return known.String()
	}

	return strconv.FormatUint(uint64(f), 10)
}

// Parse resolves a network name to its address format. Strings that name no
// registered network fall back to a strict decimal u16 parse wrapped as a
// custom prefix; anything else fails with ErrParse.
func Parse(s string) (AddressFormat, error) {
	if known, err := ParseRegistry(s); err == nil {
		return known.Format(), nil
	}

	prefix, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, ErrParse
	}

	return Custom(uint16(prefix)), nil
}

// AddressFormatRegistry is a known address format of the compiled registry.
// The numeric value of a variant is its network prefix. The constant set is
// generated and grows with the registry; exhaustive switches over it are not
// future proof.
type AddressFormatRegistry uint16

// Prefix returns the network prefix of the variant.
func (r AddressFormatRegistry) Prefix() uint16 {
	return uint16(r)
}

// Format widens the variant into an open address format value.
func (r AddressFormatRegistry) Format() AddressFormat {
	return AddressFormat(r)
}

// String prints the network name, not the description. The lookup cannot
// miss for variants produced by this package.
func (r AddressFormatRegistry) String() string {
	prefix := uint16(r)

	lookup := sort.Search(len(prefixToIndex), func(i int) bool {
		return prefixToIndex[i].prefix >= prefix
	})
	if lookup == len(prefixToIndex) || prefixToIndex[lookup].prefix != prefix {
		return strconv.FormatUint(uint64(prefix), 10)
	}

	return allNames[prefixToIndex[lookup].index]
}

// Tokens returns the token variants minted by the network, in registry
// declaration order. Reserved networks have none. The returned slice is
// static and must not be mutated.
func (r AddressFormatRegistry) Tokens() []TokenRegistry {
	prefix := uint16(r)

	lookup := sort.Search(len(prefixToIndex), func(i int) bool {
		return prefixToIndex[i].prefix >= prefix
	})
	if lookup == len(prefixToIndex) || prefixToIndex[lookup].prefix != prefix {
		return nil
	}

	return registryTokens[prefixToIndex[lookup].index]
}

// ParseRegistry resolves a network name to its registry variant.
// Returns ErrParse when the name is not registered.
func ParseRegistry(s string) (AddressFormatRegistry, error) {
	lookup := sort.SearchStrings(allNames[:], s)
	if lookup == len(allNames) || allNames[lookup] != s {
		return 0, ErrParse
	}

	return allFormats[lookup], nil
}

// All returns every known address format, sorted by network name.
// The returned slice is static and must not be mutated.
func All() []AddressFormatRegistry {
	return allFormats[:]
}

// AllNames returns the raw network names, sorted ascending and aligned
// with All. The returned slice is static and must not be mutated.
func AllNames() []string {
	return allNames[:]
}
