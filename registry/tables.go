package registry

import (
	"sort"
	"strconv"
)

// TokenDef is one distinct (symbol, decimals) pair mentioned by the registry.
type TokenDef struct {
	Identifier string
	Symbol     string
	Decimals   uint8
}

// Tables holds everything the code emitter needs: the accepted records sorted
// by network name, the derived identifiers and per-record documentation, the
// auxiliary lookup indices and the token attribute table.
type Tables struct {
	// Records sorted ascending by the raw network string. Identifiers and
	// Docs are aligned with it, as are the emitted enum and name arrays.
	Records     []AccountRecord
	Identifiers []string
	Docs        []string

	// PrefixToIndex pairs are sorted ascending by prefix; the second element
	// is the position of that prefix's record in Records.
	PrefixToIndex [][2]uint16

	// Reserved holds the prefixes with no standard account, sorted ascending.
	Reserved []uint16

	// RunStarts/RunEnds compress the sorted known prefixes into closed
	// ranges: a prefix is known iff it falls into some [RunStarts[k], RunEnds[k]].
	RunStarts []uint16
	RunEnds   []uint16

	// Tokens lists the distinct (symbol, decimals) pairs in first-use order
	// over the sorted records. RecordTokens is aligned with Records and
	// holds, per record, the indices into Tokens in declaration order.
	Tokens       []TokenDef
	RecordTokens [][]int
}

// BuildTables derives the static lookup tables from a validated document.
// The document must have passed Validate; BuildTables trusts its invariants.
func BuildTables(doc *Document) *Tables {
	records := make([]AccountRecord, len(doc.Registry))
	copy(records, doc.Registry)

	sort.Slice(records, func(i, j int) bool {
		return records[i].Network < records[j].Network
	})

	tables := &Tables{
		Records:       records,
		Identifiers:   make([]string, len(records)),
		Docs:          make([]string, len(records)),
		PrefixToIndex: make([][2]uint16, len(records)),
		RecordTokens:  make([][]int, len(records)),
	}

	prefixes := make([]uint16, len(records))
	tokenIndex := map[TokenDef]int{}
	usedTokenIdents := map[string]TokenDef{}

	for i, record := range records {
		tables.Identifiers[i] = record.Identifier()
		tables.Docs[i] = record.Doc()
		tables.PrefixToIndex[i] = [2]uint16{record.Prefix, uint16(i)}
		prefixes[i] = record.Prefix

		if record.IsReserved() {
			tables.Reserved = append(tables.Reserved, record.Prefix)
		}

		tokens := make([]int, 0, len(record.Symbols))

		for j, symbol := range record.Symbols {
			def := TokenDef{
				Identifier: tokenIdentifier(symbol, record.Decimals[j], usedTokenIdents),
				Symbol:     symbol,
				Decimals:   record.Decimals[j],
			}

			idx, exists := tokenIndex[def]
			if !exists {
				idx = len(tables.Tokens)
				tables.Tokens = append(tables.Tokens, def)
				tokenIndex[def] = idx
			}

			tokens = append(tokens, idx)
		}

		tables.RecordTokens[i] = tokens
	}

	sort.Slice(tables.PrefixToIndex, func(i, j int) bool {
		return tables.PrefixToIndex[i][0] < tables.PrefixToIndex[j][0]
	})

	sort.Slice(tables.Reserved, func(i, j int) bool {
		return tables.Reserved[i] < tables.Reserved[j]
	})

	sort.Slice(prefixes, func(i, j int) bool { return prefixes[i] < prefixes[j] })

	tables.RunStarts, tables.RunEnds = ConsecutiveRuns(prefixes)

	return tables
}

// ConsecutiveRuns compresses a sorted list of prefixes into two parallel
// arrays of closed ranges whose union is exactly the input set.
func ConsecutiveRuns(sorted []uint16) (starts, ends []uint16) {
	if len(sorted) == 0 {
		return nil, nil
	}

	start, prev := sorted[0], sorted[0]

	for _, p := range sorted[1:] {
		if p != prev+1 {
			starts = append(starts, start)
			ends = append(ends, prev)
			start = p
		}

		prev = p
	}

	starts = append(starts, start)
	ends = append(ends, prev)

	return starts, ends
}

// tokenIdentifier names a token variant after its ticker: segments are split
// the same way as PascalCase but everything after a segment's first rune is
// lower-cased, so "KTON" becomes "Kton". If two tickers with different
// decimals collapse to the same name, the decimals are appended.
func tokenIdentifier(symbol string, decimals uint8, used map[string]TokenDef) string {
	name := titleCase(symbol)

	if clash, exists := used[name]; exists {
		if clash.Symbol != symbol || clash.Decimals != decimals {
			name += strconv.Itoa(int(decimals))
		}
	}

	used[name] = TokenDef{Identifier: name, Symbol: symbol, Decimals: decimals}

	return name
}
