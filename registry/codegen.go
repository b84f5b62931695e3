package registry

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"
)

// Emit renders the tables into a single Go source file for the given package.
// The output is the complete runtime data set: the registry constants, the
// index-aligned format and name arrays, the prefix index, the reserved set,
// the prefix runs and the token tables. The result is gofmt-formatted.
func Emit(tables *Tables, pkg string) ([]byte, error) {
	buf := &bytes.Buffer{}
	count := len(tables.Records)

	fmt.Fprintf(buf, "// Code generated by ss58gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", pkg)

	fmt.Fprintf(buf, "// Known address format variants, sorted by network name. The numeric value\n")
	fmt.Fprintf(buf, "// of every constant is its network prefix.\n")
	fmt.Fprintf(buf, "const (\n")

	for i, record := range tables.Records {
		fmt.Fprintf(buf, "\t// %s\n", tables.Docs[i])
		fmt.Fprintf(buf, "\t%s AddressFormatRegistry = %d\n", tables.Identifiers[i], record.Prefix)
	}

	fmt.Fprintf(buf, ")\n\n")

	fmt.Fprintf(buf, "// allFormats holds every known address format, sorted by network name.\n")
	fmt.Fprintf(buf, "var allFormats = [%d]AddressFormatRegistry{\n", count)

	for _, identifier := range tables.Identifiers {
		fmt.Fprintf(buf, "\t%s,\n", identifier)
	}

	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// allNames holds the raw network names, aligned with allFormats.\n")
	fmt.Fprintf(buf, "var allNames = [%d]string{\n", count)

	for _, record := range tables.Records {
		fmt.Fprintf(buf, "\t%q,\n", record.Network)
	}

	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// prefixToIndex maps prefixes to positions in allFormats, sorted by prefix.\n")
	fmt.Fprintf(buf, "var prefixToIndex = [%d]prefixIndex{\n", count)

	for _, pair := range tables.PrefixToIndex {
		fmt.Fprintf(buf, "\t{prefix: %d, index: %d},\n", pair[0], pair[1])
	}

	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// reservedPrefixes holds the prefixes with no standard account, sorted.\n")
	fmt.Fprintf(buf, "var reservedPrefixes = []uint16{%s}\n\n", joinUint16(tables.Reserved))

	fmt.Fprintf(buf, "// runStarts and runEnds compress the sorted known prefixes into closed\n")
	fmt.Fprintf(buf, "// ranges: a prefix is known iff runStarts[k] <= p <= runEnds[k] for some k.\n")
	fmt.Fprintf(buf, "var (\n")
	fmt.Fprintf(buf, "\trunStarts = []uint16{%s}\n", joinUint16(tables.RunStarts))
	fmt.Fprintf(buf, "\trunEnds   = []uint16{%s}\n", joinUint16(tables.RunEnds))
	fmt.Fprintf(buf, ")\n\n")

	fmt.Fprintf(buf, "// Token variants, one per distinct (symbol, decimals) pair, in first-use\n")
	fmt.Fprintf(buf, "// order over the sorted registry.\n")
	fmt.Fprintf(buf, "const (\n")

	for i, token := range tables.Tokens {
		if i == 0 {
			fmt.Fprintf(buf, "\tToken%s TokenRegistry = iota\n", token.Identifier)
		} else {
			fmt.Fprintf(buf, "\tToken%s\n", token.Identifier)
		}
	}

	fmt.Fprintf(buf, ")\n\n")

	fmt.Fprintf(buf, "// tokenAttributes is aligned with the token variants above.\n")
	fmt.Fprintf(buf, "var tokenAttributes = [%d]tokenAttribute{\n", len(tables.Tokens))

	for _, token := range tables.Tokens {
		fmt.Fprintf(buf, "\t{name: %q, decimals: %d},\n", token.Symbol, token.Decimals)
	}

	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// registryTokens lists each format's tokens, aligned with allFormats.\n")
	fmt.Fprintf(buf, "var registryTokens = [%d][]TokenRegistry{\n", count)

	for i := range tables.Records {
		tokens := ""
		for j, idx := range tables.RecordTokens[i] {
			if j > 0 {
				tokens += ", "
			}

			tokens += "Token" + tables.Tokens[idx].Identifier
		}

		fmt.Fprintf(buf, "\t{%s},\n", tokens)
	}

	fmt.Fprintf(buf, "}\n")

	src, err := imports.Process("registry_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}

	return src, nil
}

func joinUint16(values []uint16) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}

		out += fmt.Sprintf("%d", v)
	}

	return out
}
