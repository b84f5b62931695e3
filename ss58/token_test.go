package ss58

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenAttributes(t *testing.T) {
	t.Parallel()

	name, decimals := TokenDot.Attributes()
	require.Equal(t, "DOT", name)
	require.Equal(t, uint8(10), decimals)

	name, decimals = TokenKton.Attributes()
	require.Equal(t, "KTON", name)
	require.Equal(t, uint8(9), decimals)

	require.Equal(t, "RING", TokenRing.String())
}

func TestCreateToken(t *testing.T) {
	t.Parallel()

	token := TokenDot.CreateToken(big.NewInt(100_000_000))

	require.Equal(t, "DOT", token.Name)
	require.Equal(t, uint8(10), token.Decimals)
	require.Equal(t, "0,010 DOT", token.String())
}

func TestTokenFormatting(t *testing.T) {
	t.Parallel()

	token := Token{Name: "I❤U", Decimals: 8, Amount: big.NewInt(100_000_000_000)}

	require.Equal(t, "1_000,000 I❤U", token.String())
	require.Equal(t, "1000,000 I❤U (100_000_000_000)", token.DebugString())
}

func TestTokenFormattingFraction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amount  int64
		display string
	}{
		{0, "0,000 TOK"},
		{1, "0,000 TOK"},
		{1_000, "0,001 TOK"},
		{999_999, "0,999 TOK"},
		{1_000_000, "1,000 TOK"},
		{1_234_567, "1,234 TOK"},
		{1_234_567_890, "1_234,567 TOK"},
	}

	for _, tc := range cases {
		token := Token{Name: "TOK", Decimals: 6, Amount: big.NewInt(tc.amount)}
		require.Equal(t, tc.display, token.String(), "amount %d", tc.amount)
	}
}

func TestTokenFewDecimals(t *testing.T) {
	t.Parallel()

	// a ticker with no sub-thousandth granularity shows an empty fraction
	token := Token{Name: "TOTEM", Decimals: 0, Amount: big.NewInt(12_345)}
	require.Equal(t, "12_345,000 TOTEM", token.String())
}

func TestTokenNilAmount(t *testing.T) {
	t.Parallel()

	token := Token{Name: "DOT", Decimals: 10}
	require.Equal(t, "0,000 DOT", token.String())
	require.Equal(t, "0,000 DOT (0)", token.DebugString())
}

func TestTokenAttributeAlignment(t *testing.T) {
	t.Parallel()

	// every format's token list resolves to attributes of one of the
	// format's declared symbols
	for _, variant := range All() {
		for _, token := range variant.Tokens() {
			name, _ := token.Attributes()
			require.NotEmpty(t, name)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1_000",
		"12345":      "12_345",
		"123456":     "123_456",
		"1234567":    "1_234_567",
		"1000000000": "1_000_000_000",
	}

	for input, expected := range cases {
		require.Equal(t, expected, groupDigits(input), "input %q", input)
	}
}
