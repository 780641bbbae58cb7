package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nikbrunner/kbtest/internal/exporter"
	"github.com/nikbrunner/kbtest/internal/state"
)

// runReplay dispatches every envelope in script into a fresh store and
// writes the resulting tree to out. Invalid envelopes are skipped unless
// strict is set.
func runReplay(script io.Reader, out io.Writer, strict bool, logger *slog.Logger) error {
	envelopes, err := state.ParseScript(script)
	if err != nil {
		return fmt.Errorf("parse script: %w", err)
	}

	store := state.NewStore(state.WithLogger(logger))
	applied, skipped := 0, 0
	for i, env := range envelopes {
		if err := store.DispatchEnvelope(env); err != nil {
			if strict {
				return fmt.Errorf("action %d: %w", i+1, err)
			}
			skipped++
			continue
		}
		applied++
	}

	if _, err := io.WriteString(out, exporter.ExportText(store.State())); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%d applied, %d skipped\n", applied, skipped)
	return err
}
