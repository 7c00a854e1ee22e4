package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cscan/internal/config"
	"cscan/internal/diag"
	"cscan/internal/diagfmt"
	"cscan/internal/dialect"
	"cscan/internal/driver"
	"cscan/internal/observ"
	"cscan/internal/prof"
	"cscan/internal/source"
	"cscan/internal/token"
	"cscan/internal/trace"
)

// session holds what every command needs after flags and cscan.toml are
// resolved.
type session struct {
	cmd        *cobra.Command
	ctx        context.Context
	cfg        config.Config
	opts       driver.Options
	color      bool
	quiet      bool
	diagFormat string
	timer      *observ.Timer
}

// loadSession reads cscan.toml and applies flag overrides on top of it.
func loadSession(cmd *cobra.Command) (*session, error) {
	pf := cmd.Root().PersistentFlags()

	configPath, err := pf.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(configPath, ".")
	if err != nil {
		return nil, err
	}

	if pf.Changed("dialect") {
		value, _ := pf.GetString("dialect")
		if _, err := dialect.Parse(value); err != nil {
			return nil, err
		}
		cfg.Scan.Dialect = value
	}
	if pf.Changed("max-symbol-len") {
		n, _ := pf.GetInt("max-symbol-len")
		if n < 1 {
			return nil, fmt.Errorf("--max-symbol-len must be positive, got %d", n)
		}
		cfg.Scan.MaxSymbolLen = n
	}
	if pf.Changed("strict-symbols") {
		cfg.Scan.StrictSymbols, _ = pf.GetBool("strict-symbols")
	}
	if pf.Changed("keep-going") {
		cfg.Scan.KeepGoing, _ = pf.GetBool("keep-going")
	}

	maxDiagnostics, err := pf.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorFlag, _ := pf.GetString("color")
	useColor, err := colorEnabled(colorFlag, os.Stderr)
	if err != nil {
		return nil, err
	}
	color.NoColor = !useColor

	quiet, _ := pf.GetBool("quiet")
	timings, _ := pf.GetBool("timings")
	diagFormat, _ := pf.GetString("diag-format")
	diagFormat = strings.ToLower(strings.TrimSpace(diagFormat))
	switch diagFormat {
	case "pretty", "short", "json":
	default:
		return nil, fmt.Errorf("unknown diagnostics format %q (expected pretty|short|json)", diagFormat)
	}

	s := &session{
		cmd:        cmd,
		ctx:        cmd.Context(),
		cfg:        cfg,
		opts:       driver.OptionsFromConfig(&cfg, maxDiagnostics),
		color:      useColor,
		quiet:      quiet,
		diagFormat: diagFormat,
	}
	if s.ctx == nil {
		s.ctx = context.Background()
	}
	if timings {
		s.timer = observ.NewTimer()
		s.opts.Timer = s.timer
		s.opts.Timings = true
	}
	return s, nil
}

// runSession wraps a command body with configuration, tracing, the ring
// dump on failure and the --timings summary.
func runSession(cmd *cobra.Command, body func(s *session) error) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	profiling, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := profiling.Stop(); stopErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "prof: %v\n", stopErr)
		}
	}()

	root := trace.Begin(tracer, trace.ScopeDriver, cmd.Name(), 0).
		WithExtra("dialect", s.cfg.DialectKind().String())
	if s.cfg.Path != "" {
		root.WithExtra("config", s.cfg.Path)
	}
	s.ctx = trace.WithSpan(trace.WithTracer(s.ctx, tracer), root)

	phase := s.timer.Begin(cmd.Name())
	err = body(s)
	s.timer.End(phase, "")

	if err != nil {
		root.End("failed")
		dumpTraceRing(cmd, tracer)
	} else {
		root.End("ok")
	}
	if s.timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), s.timer.Summary())
	}
	return err
}

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	pf := cmd.Root().PersistentFlags()
	var cfg prof.Config
	cfg.CPU, _ = pf.GetString("cpuprofile")
	cfg.Mem, _ = pf.GetString("memprofile")
	cfg.Trace, _ = pf.GetString("runtime-trace")
	if !cfg.Enabled() {
		return nil, nil
	}
	return prof.Start(cfg)
}

// reportDiagnostics prints a bag to stderr in the selected format. With
// --quiet only failing scans print.
func (s *session) reportDiagnostics(bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	if s.quiet && !bag.HasErrors() {
		return nil
	}
	bag.Sort()
	out := s.cmd.ErrOrStderr()
	switch s.diagFormat {
	case "short":
		_, err := fmt.Fprintln(out, diag.FormatShort(bag.Items(), fs, true))
		return err
	case "json":
		return diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{PathMode: diagfmt.PathModeRelative, IncludeNotes: true})
	default:
		return diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
			Color:     s.color,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
	}
}

// scanInput scans a path or, for "" and "-", the command's stdin.
func (s *session) scanInput(path string, visit func(token.Token) error) (*driver.Result, error) {
	if driver.IsStdinPath(path) {
		return driver.Scan(s.ctx, s.cmd.InOrStdin(), "-", s.opts, visit)
	}
	return driver.ScanPath(s.ctx, path, s.opts, visit)
}
