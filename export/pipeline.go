// Copyright (c) 2025, Blender Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/blenderlab/forge/scene"
)

// State is the per-attempt pipeline state, logged as each candidate
// format moves through pending -> attempting -> succeeded/failed.
type State int32

const (
	StatePending State = iota
	StateAttempting
	StateSucceeded
	StateFailed
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAttempting:
		return "attempting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Artifact describes a successful export: the format that won, the
// output path and its byte size for downstream verification.
type Artifact struct {
	Format string
	Path   string
	Size   int64
}

// Attempt records one failed candidate, in attempt order.
type Attempt struct {
	Format string
	Err    error
}

// ExhaustedError is returned when every candidate format failed. It
// aggregates the per-format errors in candidate order.
type ExhaustedError struct {
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "all %d export formats failed:", len(e.Attempts))
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, " [%s: %v]", a.Format, a.Err)
	}
	return b.String()
}

// Unwrap exposes the per-format errors for errors.Is / errors.As.
func (e *ExhaustedError) Unwrap() []error {
	errs := make([]error, len(e.Attempts))
	for i, a := range e.Attempts {
		errs[i] = a.Err
	}
	return errs
}

// Pipeline attempts an ordered list of candidate formats until one
// succeeds. Export I/O can be slow, so each attempt runs under an
// optional timeout; a failed or timed-out attempt removes any partially
// written file before the next candidate is tried.
type Pipeline struct {

	// Formats are the candidates in priority order.
	Formats []Format

	// Timeout bounds each attempt; 0 means no bound.
	Timeout time.Duration

	// Log receives per-attempt state transitions; nil means the
	// default logger.
	Log *slog.Logger
}

// NewPipeline returns a pipeline over the given formats, or
// [DefaultFormats] when none are given.
func NewPipeline(formats ...Format) *Pipeline {
	if len(formats) == 0 {
		formats = DefaultFormats()
	}
	return &Pipeline{Formats: formats, Log: slog.Default()}
}

// Run exports the scene's selection to base+extension, trying each
// candidate format in order. The first success wins and stops the
// pipeline. If every candidate fails, the returned error is an
// [*ExhaustedError] carrying the per-format failures in order.
//
// The context is honored between attempts and cancels an in-flight
// attempt; a canceled attempt's partial output is removed.
func (p *Pipeline) Run(ctx context.Context, sc *scene.Scene, base string) (*Artifact, error) {
	log := p.Log
	if log == nil {
		log = slog.Default()
	}
	selection := scene.ExportSelection(sc)
	if len(selection) == 0 {
		return nil, errors.New("export: no mesh objects selected")
	}

	var attempts []Attempt
	for _, f := range p.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !f.Enabled() {
			log.Info("skipping disabled export format", "format", f.Name())
			continue
		}
		path := base + f.Extension()
		log.Debug("export attempt", "format", f.Name(), "state", StateAttempting.String(), "path", path)
		art, err := p.attempt(ctx, f, path, selection)
		if err != nil {
			log.Warn("export format failed", "format", f.Name(), "state", StateFailed.String(), "err", err)
			attempts = append(attempts, Attempt{Format: f.Name(), Err: err})
			continue
		}
		log.Info("export succeeded", "format", art.Format, "state", StateSucceeded.String(),
			"path", art.Path, "bytes", art.Size)
		return art, nil
	}
	log.Error("export exhausted", "state", StateExhausted.String(), "attempts", len(attempts))
	return nil, &ExhaustedError{Attempts: attempts}
}

// attempt runs one format under the pipeline timeout and verifies the
// artifact is non-empty. On any failure the output file is removed.
func (p *Pipeline) attempt(ctx context.Context, f Format, path string, selection []*scene.Object) (*Artifact, error) {
	actx := ctx
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- f.Write(path, selection)
	}()

	select {
	case <-actx.Done():
		os.Remove(path)
		return nil, fmt.Errorf("format %s: %w", f.Name(), actx.Err())
	case err := <-done:
		if err != nil {
			os.Remove(path)
			return nil, fmt.Errorf("format %s: %w", f.Name(), err)
		}
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if fi.Size() == 0 {
		os.Remove(path)
		return nil, fmt.Errorf("format %s: empty artifact", f.Name())
	}
	return &Artifact{Format: f.Name(), Path: path, Size: fi.Size()}, nil
}
