package ss58

import (
	"fmt"
	"math/big"
	"strings"
)

// TokenRegistry enumerates every distinct (symbol, decimals) pair the
// registry mentions. The constant set is generated.
type TokenRegistry uint16

// tokenAttribute is one entry of the generated token attribute table.
type tokenAttribute struct {
	name     string
	decimals uint8
}

// Attributes returns the ticker name and the decimal count of the token.
func (t TokenRegistry) Attributes() (string, uint8) {
	attr := tokenAttributes[t]

	return attr.name, attr.decimals
}

// String prints the ticker name.
func (t TokenRegistry) String() string {
	name, _ := t.Attributes()

	return name
}

// CreateToken denominates amount, given in the smallest granularity, in this
// token. amount may be nil, meaning zero.
func (t TokenRegistry) CreateToken(amount *big.Int) Token {
	name, decimals := t.Attributes()

	return Token{Name: name, Decimals: decimals, Amount: amount}
}

// Token is an amount denominated in a named ticker with a fixed decimal
// granularity. Amounts are kept in the smallest unit of the token.
type Token struct {
	Name     string
	Decimals uint8
	Amount   *big.Int
}

// String formats the amount scaled to whole tokens: the integer part with
// "_" digit grouping, a "," decimal separator and the first three fractional
// digits zero-padded to width 3.
//
//	Token{Name: "DOT", Decimals: 10, Amount: big.NewInt(100_000_000)}.String() == "0,010 DOT"
func (t Token) String() string {
	integer, fraction := t.split()

	return fmt.Sprintf("%s,%03d %s", groupDigits(integer.String()), fraction, t.Name)
}

// DebugString is the String form without integer grouping, trailed by the
// raw grouped amount.
func (t Token) DebugString() string {
	integer, fraction := t.split()

	return fmt.Sprintf("%s,%03d %s (%s)",
		integer.String(), fraction, t.Name, groupDigits(t.amount().String()))
}

func (t Token) amount() *big.Int {
	if t.Amount == nil {
		return new(big.Int)
	}

	return t.Amount
}

// split divides the raw amount into whole tokens and the first three decimal
// digits of the remainder.
func (t Token) split() (*big.Int, int64) {
	multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(t.Decimals)), nil)

	integer, remainder := new(big.Int).QuoRem(t.amount(), multiplier, new(big.Int))

	thousandth := new(big.Int).Quo(multiplier, big.NewInt(1000))
	if thousandth.Sign() == 0 {
		// fewer than three decimals, nothing to show
		return integer, 0
	}

	return integer, new(big.Int).Quo(remainder, thousandth).Int64()
}

// groupDigits inserts a "_" thousands separator into a decimal numeral.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var sb strings.Builder

	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}

	sb.WriteString(s[:lead])

	for i := lead; i < len(s); i += 3 {
		sb.WriteByte('_')
		sb.WriteString(s[i : i+3])
	}

	return sb.String()
}
