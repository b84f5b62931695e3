package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/Ethernal-Tech/ss58-registry/logger"
	"github.com/Ethernal-Tech/ss58-registry/registry"
	"github.com/Ethernal-Tech/ss58-registry/ss58"
)

func main() {
	log, err := logger.NewLogger(logger.LoggerConfig{
		LogLevel: hclog.Info,
		Name:     "ss58-demo",
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	doc, err := registry.LoadDocumentFile("ss58-registry.json")
	if err != nil {
		log.Error("could not load registry document", "err", err)
		os.Exit(1)
	}

	if err := doc.Validate(); err != nil {
		log.Error("registry document is invalid", "err", err)
		os.Exit(1)
	}

	log.Info("registry document validated", "records", len(doc.Registry))

	for _, name := range []string{"polkadot", "kusama", "darwinia"} {
		format, err := ss58.Parse(name)
		if err != nil {
			log.Error("unexpected parse failure", "name", name, "err", err)
			os.Exit(1)
		}

		known, _ := format.Registry()

		log.Info("resolved network",
			"name", format, "prefix", format.Prefix(),
			"reserved", format.IsReserved(), "tokens", fmt.Sprint(known.Tokens()))
	}

	amount, _ := new(big.Int).SetString("123_456_789_012_345", 0)
	token := ss58.TokenDot.CreateToken(amount)

	log.Info("formatted token", "display", token.String(), "debug", token.DebugString())
	log.Info("default format", "name", ss58.DefaultFormat(), "prefix", ss58.DefaultFormat().Prefix())
}
