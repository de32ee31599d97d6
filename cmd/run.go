// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	arclist "github.com/arclist/go-arclist"
)

// CLI are the cli parameters for the arclist binary
type CLI struct {
	Archive       string           `arg:"" name:"archive" help:"Path to the archive to list." type:"existingfile"`
	Accessible    bool             `optional:"" help:"Render output without decorative characters (also via ACCESSIBLE env var)."`
	Format        string           `short:"f" optional:"" help:"Override the format chain inferred from the file name (e.g. tar.gz)."`
	MaxInputSize  int64            `optional:"" default:"1073741824" help:"Maximum bytes materialized in memory or spill files (in bytes). (disable check: -1)"`
	Metrics       bool             `short:"M" optional:"" default:"false" help:"Print metrics to log after listing."`
	No            bool             `short:"n" optional:"" help:"Answer every question with no." xor:"answer"`
	Password      string           `short:"p" optional:"" help:"Password for encrypted entries."`
	ShowMetadata  bool             `short:"l" optional:"" help:"Show kind, size and modification time per entry."`
	Tree          bool             `short:"t" optional:"" help:"Render entries as a tree."`
	Verbose       bool             `short:"v" optional:"" help:"Verbose logging."`
	Version       kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
	Yes           bool             `short:"y" optional:"" help:"Answer every question with yes." xor:"answer"`
}

// Run is the entrypoint into arclist as a cli tool
func Run(version, commit, date string) {
	var cli CLI
	kong.Parse(&cli,
		kong.Description("List the contents of compressed archives without memorizing tool flags"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	accessible := cli.Accessible || os.Getenv("ACCESSIBLE") != ""

	metricsToLog := func(m *arclist.ListingMetrics) {
		if cli.Metrics {
			logger.Info("listing finished", "metrics", m)
		}
	}

	cfg := arclist.NewConfig(
		arclist.WithAccessible(accessible),
		arclist.WithLogger(logger),
		arclist.WithMaxInputSize(cli.MaxInputSize),
		arclist.WithTelemetryHook(metricsToLog),
	)

	if err := run(&cli, cfg); err != nil {
		fmt.Fprintln(os.Stderr, arclist.RenderError(err, accessible))
		os.Exit(1)
	}
}

func run(cli *CLI, cfg *arclist.Config) error {
	chain, err := resolveChain(cli)
	if err != nil {
		return err
	}

	if !chain.HasArchive() {
		return arclist.CustomError(
			arclist.NewFinalError(fmt.Sprintf("%q is compressed but not an archive", cli.Archive)).
				Detail(fmt.Sprintf("its format chain %q holds no container of entries to list", chain)).
				Hint("decompress it instead, or pass --format to name the container"))
	}

	policy := arclist.PolicyAsk
	switch {
	case cli.Yes:
		policy = arclist.PolicyAlwaysYes
	case cli.No:
		policy = arclist.PolicyAlwaysNo
	}

	var password []byte
	if cli.Password != "" {
		password = []byte(cli.Password)
	}

	options := arclist.ListOptions{Tree: cli.Tree, ShowMetadata: cli.ShowMetadata}
	listing, err := arclist.ListArchiveContents(cli.Archive, chain, options, policy, password, cfg)
	if err != nil {
		return err
	}
	defer listing.Close()

	return renderListing(os.Stdout, cli.Archive, listing, cfg.Accessible())
}

// resolveChain determines the format chain: explicit override first, then
// the file name, then content sniffing as a last resort.
func resolveChain(cli *CLI) (arclist.FormatChain, error) {
	if cli.Format != "" {
		return arclist.ParseFormatChain(cli.Format)
	}

	if chain, ok := arclist.ChainFromFilename(filepath.Base(cli.Archive)); ok {
		if err := chain.Validate(); err != nil {
			return nil, err
		}
		return chain, nil
	}

	file, err := os.Open(cli.Archive)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if chain, _, ok := arclist.SniffChain(file); ok {
		return chain, nil
	}

	return nil, arclist.CustomError(
		arclist.NewFinalError(fmt.Sprintf("cannot determine the format of %q", cli.Archive)).
			Detail("the file name carries no known extension and the content matches no known signature").
			Hint("pass --format to name the chain explicitly, e.g. --format tar.gz"))
}
