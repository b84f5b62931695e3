package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fixtureDocument() *Document {
	return &Document{Registry: []AccountRecord{
		{
			Prefix: 7, Network: "zeta", DisplayName: "Zeta",
			StandardAccount: "*25519",
			Symbols:         []string{"ZTA"}, Decimals: []uint8{10},
			Website: "https://zeta.example",
		},
		{
			Prefix: 0, Network: "alpha", DisplayName: "Alpha",
			StandardAccount: "Sr25519",
			Symbols:         []string{"ALPH", "WALPH"}, Decimals: []uint8{8, 8},
		},
		{
			Prefix: 1, Network: "reserved1", DisplayName: "This prefix is reserved.",
		},
		{
			Prefix: 2, Network: "beta", DisplayName: "Beta",
			StandardAccount: "Ed25519",
			Symbols:         []string{"ZTA"}, Decimals: []uint8{10},
		},
	}}
}

func TestBuildTables(t *testing.T) {
	t.Parallel()

	doc := fixtureDocument()
	require.NoError(t, doc.Validate())

	tables := BuildTables(doc)

	// records sorted by raw network name, identifiers and docs aligned
	require.Equal(t,
		[]string{"alpha", "beta", "reserved1", "zeta"},
		networksOf(tables.Records))
	require.Equal(t,
		[]string{"AlphaAccount", "BetaAccount", "Reserved1Account", "ZetaAccount"},
		tables.Identifiers)
	require.Equal(t,
		[]string{"Alpha", "Beta", "This prefix is reserved.", "Zeta - <https://zeta.example>"},
		tables.Docs)

	// prefix to index sorted by prefix, indices point into the sorted records
	require.Equal(t,
		[][2]uint16{{0, 0}, {1, 2}, {2, 1}, {7, 3}},
		tables.PrefixToIndex)

	require.Equal(t, []uint16{1}, tables.Reserved)

	require.Equal(t, []uint16{0, 7}, tables.RunStarts)
	require.Equal(t, []uint16{2, 7}, tables.RunEnds)

	// token pairs deduplicated in first-use order over the sorted records
	require.Equal(t, []TokenDef{
		{Identifier: "Alph", Symbol: "ALPH", Decimals: 8},
		{Identifier: "Walph", Symbol: "WALPH", Decimals: 8},
		{Identifier: "Zta", Symbol: "ZTA", Decimals: 10},
	}, tables.Tokens)

	require.Equal(t, [][]int{{0, 1}, {2}, {}, {2}}, tables.RecordTokens)
}

func TestBuildTablesEmptyDocument(t *testing.T) {
	t.Parallel()

	tables := BuildTables(&Document{})

	require.Empty(t, tables.Records)
	require.Empty(t, tables.PrefixToIndex)
	require.Empty(t, tables.RunStarts)
	require.Empty(t, tables.RunEnds)
	require.Empty(t, tables.Tokens)
}

func TestConsecutiveRuns(t *testing.T) {
	t.Parallel()

	starts, ends := ConsecutiveRuns(nil)
	require.Empty(t, starts)
	require.Empty(t, ends)

	starts, ends = ConsecutiveRuns([]uint16{5})
	require.Equal(t, []uint16{5}, starts)
	require.Equal(t, []uint16{5}, ends)

	starts, ends = ConsecutiveRuns([]uint16{1, 2, 3, 7, 8, 10})
	require.Equal(t, []uint16{1, 7, 10}, starts)
	require.Equal(t, []uint16{3, 8, 10}, ends)
}

func TestTokenIdentifierCollision(t *testing.T) {
	t.Parallel()

	used := map[string]TokenDef{}
	require.Equal(t, "Lit", tokenIdentifier("LIT", 12, used))
	// same ticker with different decimals gets a disambiguated name
	require.Equal(t, "Lit18", tokenIdentifier("LIT", 18, used))
	// the same pair keeps its name
	require.Equal(t, "Lit", tokenIdentifier("LIT", 12, used))
}

func networksOf(records []AccountRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Network
	}

	return names
}
