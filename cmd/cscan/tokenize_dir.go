package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cscan/internal/driver"
)

func newTokenizeDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize-dir [flags] dir",
		Short: "Tokenize every source file of a directory in parallel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := cmd.Flags().GetInt("jobs")
			if err != nil {
				return fmt.Errorf("failed to get jobs flag: %w", err)
			}
			uiValue, err := cmd.Flags().GetString("ui")
			if err != nil {
				return fmt.Errorf("failed to get ui flag: %w", err)
			}
			mode, err := readUIMode(uiValue)
			if err != nil {
				return err
			}
			useCache, err := cmd.Flags().GetBool("cache")
			if err != nil {
				return fmt.Errorf("failed to get cache flag: %w", err)
			}
			return runSession(cmd, func(s *session) error {
				return runTokenizeDir(s, args[0], jobs, shouldUseTUI(mode), useCache)
			})
		},
	}
	cmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().String("ui", "off", "progress UI (auto|on|off)")
	cmd.Flags().Bool("cache", false, "reuse token streams of unchanged files from the disk cache")
	return cmd
}

func runTokenizeDir(s *session, dir string, jobs int, useUI, useCache bool) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", dir)
	}

	if useCache || s.cfg.Cache.Enabled {
		cache, err := driver.OpenDiskCache("cscan", s.cfg.Cache.Dir)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		s.opts.Cache = cache
	}

	var results []*driver.Result
	if useUI {
		files, err := driver.ListSourceFiles(dir, s.opts.Extensions)
		if err != nil {
			return err
		}
		_, results, err = runTokenizeDirWithUI(s, dir, files, jobs)
		if err != nil {
			return err
		}
	} else {
		_, results, err = driver.TokenizeDir(s.ctx, dir, s.opts, jobs, nil)
		if err != nil {
			return err
		}
	}

	var tokens, failed, cached int
	var bytes int64
	for _, res := range results {
		if res == nil {
			continue
		}
		tokens += res.Count
		bytes += res.Bytes
		if res.Cached {
			cached++
		}
		if res.Failed() {
			failed++
		}
		if err := s.reportDiagnostics(res.Bag, res.FileSet); err != nil {
			return err
		}
	}

	if !s.quiet {
		p := message.NewPrinter(language.English)
		out := s.cmd.OutOrStdout()
		p.Fprintf(out, "%d tokens in %d files (%d bytes)", tokens, len(results), bytes)
		if cached > 0 {
			p.Fprintf(out, ", %d from cache", cached)
		}
		if failed > 0 {
			p.Fprintf(out, ", %d with errors", failed)
		}
		fmt.Fprintln(out)
	}
	if failed > 0 {
		return errScanFailed
	}
	return nil
}
