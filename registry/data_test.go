package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument([]byte(`{
		"registry": [
			{
				"prefix": 0,
				"network": "polkadot",
				"displayName": "Polkadot Relay Chain",
				"standardAccount": "*25519",
				"symbols": ["DOT"],
				"decimals": [10],
				"website": "https://polkadot.network",
				"unknownField": true
			},
			{
				"prefix": 46,
				"network": "reserved46",
				"displayName": "This prefix is reserved.",
				"standardAccount": null,
				"symbols": [],
				"decimals": [],
				"website": null
			}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Registry, 2)

	polkadot := doc.Registry[0]
	require.Equal(t, uint16(0), polkadot.Prefix)
	require.Equal(t, "polkadot", polkadot.Network)
	require.Equal(t, "*25519", polkadot.StandardAccount)
	require.Equal(t, []string{"DOT"}, polkadot.Symbols)
	require.Equal(t, []uint8{10}, polkadot.Decimals)
	require.False(t, polkadot.IsReserved())
	require.Equal(t, "Polkadot Relay Chain - <https://polkadot.network>", polkadot.Doc())

	reserved := doc.Registry[1]
	require.True(t, reserved.IsReserved())
	require.Empty(t, reserved.Symbols)
	require.Equal(t, "This prefix is reserved.", reserved.Doc())
}

func TestLoadDocumentInvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := LoadDocument([]byte("{"))
	require.Error(t, err)

	_, err = LoadDocumentFile("no-such-file.json")
	require.Error(t, err)
}

func TestLoadDocumentFile(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocumentFile("../ss58-registry.json")
	require.NoError(t, err)
	require.NotEmpty(t, doc.Registry)
	require.NoError(t, doc.Validate())
}
