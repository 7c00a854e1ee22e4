package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"cscan/internal/diagfmt"
	"cscan/internal/driver"
	"cscan/internal/token"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file]",
		Short: "Print the value trace of numeric literals",
		Long: `Scan reads a file (or stdin when the argument is omitted or "-") and prints
"value: N" for every integer literal and "float: F" for every float literal.
It exits 0 at end of input or at the end marker and 1 on the first lexical error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, func(s *session) error {
				return runScan(s, argOrStdin(args))
			})
		},
	}
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func runScan(s *session, path string) error {
	out := bufio.NewWriter(s.cmd.OutOrStdout())
	res, err := s.scanInput(path, func(tok token.Token) error {
		return diagfmt.WriteLegacy(out, tok)
	})
	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}
	return finishScan(s, res, err)
}

// finishScan prints diagnostics and maps the outcome to the exit status.
func finishScan(s *session, res *driver.Result, err error) error {
	if res == nil {
		return err
	}
	if repErr := s.reportDiagnostics(res.Bag, res.FileSet); repErr != nil {
		return repErr
	}
	if res.Failed() {
		return errScanFailed
	}
	if err != nil {
		return fmt.Errorf("scan %s: %w", res.File.Path, err)
	}
	return nil
}
