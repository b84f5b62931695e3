package ss58

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ethernal-Tech/ss58-registry/registry"
)

// the generated tables must be exactly what the pipeline derives from the
// shipped registry document
func TestGeneratedTablesMatchDocument(t *testing.T) {
	t.Parallel()

	doc, err := registry.LoadDocumentFile("../ss58-registry.json")
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	tables := registry.BuildTables(doc)

	require.Len(t, allFormats, len(tables.Records))

	for i, record := range tables.Records {
		require.Equal(t, record.Network, allNames[i])
		require.Equal(t, record.Prefix, uint16(allFormats[i]))
	}

	for i, pair := range tables.PrefixToIndex {
		require.Equal(t, pair[0], prefixToIndex[i].prefix)
		require.Equal(t, pair[1], prefixToIndex[i].index)
	}

	require.Equal(t, tables.Reserved, reservedPrefixes)
	require.Equal(t, tables.RunStarts, runStarts)
	require.Equal(t, tables.RunEnds, runEnds)

	require.Len(t, tokenAttributes, len(tables.Tokens))

	for i, token := range tables.Tokens {
		name, decimals := TokenRegistry(i).Attributes()
		require.Equal(t, token.Symbol, name)
		require.Equal(t, token.Decimals, decimals)
	}

	for i := range tables.Records {
		tokens := allFormats[i].Tokens()
		require.Len(t, tokens, len(tables.RecordTokens[i]))

		for j, idx := range tables.RecordTokens[i] {
			require.Equal(t, TokenRegistry(idx), tokens[j])
		}
	}
}

func TestTableInvariants(t *testing.T) {
	t.Parallel()

	// names sorted ascending, aligned with formats
	require.True(t, sort.StringsAreSorted(allNames[:]))

	// prefix index sorted by prefix, second components a permutation of 0..N
	seen := map[uint16]bool{}

	for i, pair := range prefixToIndex {
		if i > 0 {
			require.Less(t, prefixToIndex[i-1].prefix, pair.prefix)
		}

		require.Less(t, int(pair.index), len(allFormats))
		require.False(t, seen[pair.index])
		seen[pair.index] = true

		// the pair maps the prefix to the position of its own record
		require.Equal(t, pair.prefix, uint16(allFormats[pair.index]))
	}

	require.Len(t, seen, len(allFormats))

	// every known prefix is covered by exactly one run
	require.Len(t, runEnds, len(runStarts))

	for _, pair := range prefixToIndex {
		covering := 0

		for k := range runStarts {
			if pair.prefix >= runStarts[k] && pair.prefix <= runEnds[k] {
				covering++
			}
		}

		require.Equal(t, 1, covering, "prefix %d", pair.prefix)
	}
}

func TestReservedMatchesDocument(t *testing.T) {
	t.Parallel()

	doc, err := registry.LoadDocumentFile("../ss58-registry.json")
	require.NoError(t, err)

	for _, record := range doc.Registry {
		expected := record.IsReserved() || record.Prefix > 16384
		require.Equal(t, expected, Custom(record.Prefix).IsReserved(), "network %s", record.Network)
	}
}
