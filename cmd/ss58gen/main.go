package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Ethernal-Tech/ss58-registry/common"
	"github.com/Ethernal-Tech/ss58-registry/logger"
	"github.com/Ethernal-Tech/ss58-registry/registry"
)

var (
	registryPath string
	outPath      string
	pkgName      string
	logLevel     string
	logFilePath  string
	jsonLog      bool
)

var rootCmd = &cobra.Command{
	Use:   "ss58gen",
	Short: "Compile the SS58 registry document into static Go lookup tables",
	Long: `ss58gen parses and validates the SS58 registry document, derives a
variant identifier for every network, and emits a single Go source file
holding the typed registry enumeration, the index-aligned lookup tables,
the prefix-run table and the token attribute tables.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&registryPath, "registry", "ss58-registry.json", "path of the registry document")
	flags.StringVar(&outPath, "out", "ss58/registry_gen.go", "path of the generated source file")
	flags.StringVar(&pkgName, "pkg", "ss58", "package name of the generated source file")
	flags.StringVar(&logLevel, "log-level", "info", "log level")
	flags.StringVar(&logFilePath, "log-file", "", "log to this file instead of stderr")
	flags.BoolVar(&jsonLog, "json-log", false, "log in JSON format")
}

func run(_ *cobra.Command, _ []string) error {
	log, err := logger.NewLogger(logger.LoggerConfig{
		Name:          "ss58gen",
		LogLevel:      hclog.LevelFromString(logLevel),
		JSONLogFormat: jsonLog,
		LogFilePath:   logFilePath,
	})
	if err != nil {
		return err
	}

	doc, err := registry.LoadDocumentFile(registryPath)
	if err != nil {
		return err
	}

	log.Debug("registry document loaded", "path", registryPath, "records", len(doc.Registry))

	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid registry document: %w", err)
	}

	tables := registry.BuildTables(doc)

	src, err := registry.Emit(tables, pkgName)
	if err != nil {
		return err
	}

	if err := common.AtomicWriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("failed to write generated source: %w", err)
	}

	log.Info("registry compiled",
		"records", len(tables.Records), "tokens", len(tables.Tokens),
		"runs", len(tables.RunStarts), "out", outPath)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
