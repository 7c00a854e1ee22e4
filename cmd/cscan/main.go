package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cscan/internal/version"
)

// errScanFailed marks a failure whose diagnostics were already printed.
var errScanFailed = errors.New("scan failed")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cscan",
		Short:         "Lexical scanner for the C-like interpreter language",
		Long:          `cscan turns C-like source into tokens: numeric literals in bases 2/8/10/16, interned identifiers, keywords and operators`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newTokenizeDirCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "print diagnostics only when the scan fails")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to keep per file")
	pf.String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
	pf.String("config", "", "path to cscan.toml (default: search upward from the working directory)")

	// Настройки сканера; перекрывают cscan.toml
	pf.String("dialect", "", "language dialect (classic|extended)")
	pf.Int("max-symbol-len", 0, "longest identifier kept verbatim")
	pf.Bool("strict-symbols", false, "treat identifier truncation as an error")
	pf.Bool("keep-going", false, "skip to the next whitespace after an error instead of stopping")

	// Трассировка
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring tracer")

	// Профилирование
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	return rootCmd
}

// main builds the CLI and executes it. Any returned error exits with
// status 1; errors other than errScanFailed are printed first.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errScanFailed) {
			fmt.Fprintf(os.Stderr, "cscan: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
