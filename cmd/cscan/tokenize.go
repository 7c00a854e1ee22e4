package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cscan/internal/diagfmt"
	"cscan/internal/token"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] [file]",
		Short: "Print the token stream of a source file",
		Long:  `Tokenize breaks a source file (or stdin) into tokens and prints them as text, JSON or msgpack`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			tf, err := parseTokenFormat(format)
			if err != nil {
				return err
			}
			return runSession(cmd, func(s *session) error {
				return runTokenize(s, argOrStdin(args), tf)
			})
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

func parseTokenFormat(value string) (diagfmt.TokenFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pretty", "":
		return diagfmt.TokenFormatPretty, nil
	case "json":
		return diagfmt.TokenFormatJSON, nil
	case "msgpack", "mp":
		return diagfmt.TokenFormatMsgpack, nil
	default:
		return 0, fmt.Errorf("unknown format: %s (expected pretty|json|msgpack)", value)
	}
}

func runTokenize(s *session, path string, format diagfmt.TokenFormat) error {
	var tokens []token.Token
	res, err := s.scanInput(path, func(tok token.Token) error {
		tokens = append(tokens, tok)
		return nil
	})
	if res == nil {
		return err
	}
	res.Tokens = tokens

	// Токены печатаем даже при ошибке: это всё, что было распознано до неё.
	out := bufio.NewWriter(s.cmd.OutOrStdout())
	var printErr error
	switch format {
	case diagfmt.TokenFormatJSON:
		printErr = diagfmt.FormatTokensJSON(out, diagfmt.BuildTokenStream(res.File.Path, s.cfg.DialectKind().String(), res.Tokens))
	case diagfmt.TokenFormatMsgpack:
		printErr = diagfmt.FormatTokensMsgpack(out, diagfmt.BuildTokenStream(res.File.Path, s.cfg.DialectKind().String(), res.Tokens))
	default:
		printErr = diagfmt.FormatTokensPretty(out, res.Tokens, res.Symbols)
	}
	if flushErr := out.Flush(); printErr == nil {
		printErr = flushErr
	}
	if printErr != nil {
		return printErr
	}
	return finishScan(s, res, err)
}
