package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRecord(prefix uint16, network string) AccountRecord {
	return AccountRecord{
		Prefix:          prefix,
		Network:         network,
		DisplayName:     network,
		StandardAccount: "*25519",
		Symbols:         []string{"TOK"},
		Decimals:        []uint8{12},
	}
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()

	validationErr := &ValidationError{}
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, kind, validationErr.Kind)
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	t.Parallel()

	doc := &Document{Registry: []AccountRecord{
		validRecord(0, "polkadot"),
		validRecord(2, "kusama"),
		{Prefix: 46, Network: "reserved46", DisplayName: "This prefix is reserved."},
	}}

	require.NoError(t, doc.Validate())
}

func TestValidateDuplicatePrefix(t *testing.T) {
	t.Parallel()

	doc := &Document{Registry: []AccountRecord{
		validRecord(5, "first"),
		validRecord(5, "second"),
	}}

	err := doc.Validate()
	requireKind(t, err, KindDuplicatePrefix)

	validationErr := &ValidationError{}
	require.ErrorAs(t, err, &validationErr)
	require.NotNil(t, validationErr.Clash)
	require.Equal(t, "first", validationErr.Clash.Network)
	require.Equal(t, "second", validationErr.Record.Network)
}

func TestValidateDuplicateNetwork(t *testing.T) {
	t.Parallel()

	// distinct raw networks deriving to the same identifier
	doc := &Document{Registry: []AccountRecord{
		validRecord(1, "foo-bar"),
		validRecord(2, "foo_bar"),
	}}

	requireKind(t, doc.Validate(), KindDuplicateNetwork)
}

func TestValidateEmptyNetwork(t *testing.T) {
	t.Parallel()

	doc := &Document{Registry: []AccountRecord{validRecord(1, "")}}

	requireKind(t, doc.Validate(), KindEmptyNetwork)
}

func TestValidateInvalidIdentifier(t *testing.T) {
	t.Parallel()

	doc := &Document{Registry: []AccountRecord{validRecord(1, "1inch")}}

	requireKind(t, doc.Validate(), KindInvalidIdentifier)
}

func TestValidateSymbolDecimalMismatch(t *testing.T) {
	t.Parallel()

	record := validRecord(1, "foo")
	record.Decimals = []uint8{12, 18}

	doc := &Document{Registry: []AccountRecord{record}}

	requireKind(t, doc.Validate(), KindSymbolDecimalMismatch)
}

func TestValidateUnknownSignatureKind(t *testing.T) {
	t.Parallel()

	record := validRecord(1, "foo")
	record.StandardAccount = "ed25519"

	doc := &Document{Registry: []AccountRecord{record}}

	requireKind(t, doc.Validate(), KindUnknownSignatureKind)
}

func TestValidateFirstFailureWins(t *testing.T) {
	t.Parallel()

	// both a duplicate prefix and a later invalid identifier: the duplicate
	// comes first in document order and must be the reported failure
	doc := &Document{Registry: []AccountRecord{
		validRecord(1, "foo"),
		validRecord(1, "bar"),
		validRecord(2, "1inch"),
	}}

	requireKind(t, doc.Validate(), KindDuplicatePrefix)
}
