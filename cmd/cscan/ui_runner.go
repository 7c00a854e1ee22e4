package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"cscan/internal/driver"
	"cscan/internal/source"
	"cscan/internal/ui"
)

type dirOutcome struct {
	fileSet *source.FileSet
	results []*driver.Result
	err     error
}

// runTokenizeDirWithUI runs TokenizeDir in the background and renders its
// progress events until the scan finishes.
func runTokenizeDirWithUI(s *session, dir string, files []string, jobs int) (*source.FileSet, []*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		fs, results, err := driver.TokenizeDir(s.ctx, dir, s.opts, jobs, func(ev driver.Event) {
			events <- ev
		})
		outcomeCh <- dirOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("tokenize-dir "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(s.cmd.OutOrStdout()))
	_, uiErr := program.Run()
	// UI мог выйти раньше (ошибка, ctrl+c): дочитываем события, чтобы
	// воркеры не заблокировались.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
