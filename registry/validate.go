package registry

import (
	"fmt"
)

// ErrorKind classifies the validation rule a registry record has broken.
type ErrorKind int

const (
	KindDuplicatePrefix ErrorKind = iota
	KindDuplicateNetwork
	KindEmptyNetwork
	KindInvalidIdentifier
	KindSymbolDecimalMismatch
	KindUnknownSignatureKind
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicatePrefix:
		return "DuplicatePrefix"
	case KindDuplicateNetwork:
		return "DuplicateNetwork"
	case KindEmptyNetwork:
		return "EmptyNetwork"
	case KindInvalidIdentifier:
		return "InvalidIdentifier"
	case KindSymbolDecimalMismatch:
		return "SymbolDecimalMismatch"
	case KindUnknownSignatureKind:
		return "UnknownSignatureKind"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ValidationError names the record that broke a validation rule. Clash is set
// for the duplicate kinds and holds the earlier record it collided with.
type ValidationError struct {
	Kind   ErrorKind
	Record AccountRecord
	Clash  *AccountRecord
	Detail string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	msg += fmt.Sprintf("\n%+v", e.Record)

	if e.Clash != nil {
		msg += fmt.Sprintf("\nclashed with\n%+v", *e.Clash)
	}

	return msg
}

// signature schemes a standard account may bind to
var standardAccountKinds = map[string]struct{}{
	"Sr25519":   {},
	"Ed25519":   {},
	"secp256k1": {},
	"*25519":    {},
}

// Validate checks every record of the document against the registry rules,
// in document order. The first broken rule aborts the validation.
func (d *Document) Validate() error {
	usedPrefixes := map[uint16]AccountRecord{}
	usedNetworks := map[string]AccountRecord{}

	for _, record := range d.Registry {
		if clash, exists := usedPrefixes[record.Prefix]; exists {
			return &ValidationError{
				Kind:   KindDuplicatePrefix,
				Record: record,
				Clash:  &clash,
				Detail: "prefixes must be unique",
			}
		}

		usedPrefixes[record.Prefix] = record

		identifier := record.Identifier()

		if clash, exists := usedNetworks[identifier]; exists {
			return &ValidationError{
				Kind:   KindDuplicateNetwork,
				Record: record,
				Clash:  &clash,
				Detail: "networks must be unique",
			}
		}

		usedNetworks[identifier] = record

		if record.Network == "" {
			return &ValidationError{
				Kind:   KindEmptyNetwork,
				Record: record,
				Detail: "network is mandatory",
			}
		}

		if err := ValidateIdentifier(identifier); err != nil {
			return &ValidationError{
				Kind:   KindInvalidIdentifier,
				Record: record,
				Detail: fmt.Sprintf("network not valid: %s", err),
			}
		}

		if len(record.Symbols) != len(record.Decimals) {
			return &ValidationError{
				Kind:   KindSymbolDecimalMismatch,
				Record: record,
				Detail: "decimals must be specified for each symbol",
			}
		}

		if record.StandardAccount != "" {
			if _, known := standardAccountKinds[record.StandardAccount]; !known {
				return &ValidationError{
					Kind:   KindUnknownSignatureKind,
					Record: record,
					Detail: "expected one of Sr25519, Ed25519, secp256k1, *25519",
				}
			}
		}
	}

	return nil
}
