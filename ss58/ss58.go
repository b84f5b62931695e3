// Package ss58 is the compiled registry of well-known SS58 address formats.
//
// The package exposes two related views of the network prefix space: the
// closed AddressFormatRegistry enumeration, generated from ss58-registry.json
// and covering every registered network, and the open AddressFormat value
// which tolerates arbitrary u16 prefixes found on the wire. All lookups run
// against static tables compiled by cmd/ss58gen; the package performs no
// allocation and no I/O and is safe for concurrent use.
package ss58

//go:generate go run github.com/Ethernal-Tech/ss58-registry/cmd/ss58gen --registry ../ss58-registry.json --out registry_gen.go
