// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shadergen

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/shadergen/backend"
	"github.com/gogpu/shadergen/symbols"
	"github.com/gogpu/shadergen/syntax"
	"github.com/gogpu/shadergen/translate"
)

// Job is one function to translate.
type Job struct {
	Function *translate.Function
	Body     syntax.Block
	Resolver symbols.Resolver
}

// Result is the outcome of one Job. Exactly one of Output and Err is set.
type Result struct {
	// Name is the generated function name.
	Name string

	// Output is the translated source.
	Output string

	// Err is the translation error.
	Err error

	// Cached reports that Output came from the output cache.
	Cached bool
}

// Options configures batch translation.
type Options struct {
	// Translate is passed to every translation. Nil uses the defaults.
	Translate *translate.Options

	// Jobs limits concurrent translations. 0 means GOMAXPROCS.
	Jobs int

	// Logger receives one debug record per translated function and one
	// warning per failure. Nil discards.
	Logger *slog.Logger

	// Dir is the directory TranslatePackages resolves package patterns in.
	// Empty means the current directory.
	Dir string

	// NoCache disables the output cache of TranslatePackages.
	NoCache bool
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *Options) jobs() int {
	if o == nil || o.Jobs <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Jobs
}

func (o *Options) translateOptions() *translate.Options {
	if o == nil {
		return nil
	}
	return o.Translate
}

// TranslateAll translates jobs concurrently against be. Results are returned
// in job order, so the output equals that of translating the jobs one by
// one. A failing job records its error in its Result and does not affect the
// others; only cancellation of ctx stops the batch, in which case the error
// is ctx.Err() and unfinished jobs carry it as their Err.
func TranslateAll(ctx context.Context, jobs []Job, be backend.Backend, opts *Options) ([]Result, error) {
	if be == nil {
		return nil, errors.New("shadergen: nil backend")
	}
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	log := opts.logger().With("dialect", be.Name())
	topts := opts.translateOptions()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.jobs(), len(jobs)))

	for i := range jobs {
		job := &jobs[i]
		g.Go(func() error {
			results[i].Name = jobName(job)
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}

			out, err := translate.Translate(job.Function, job.Body, job.Resolver, be, topts)
			if err != nil {
				log.Warn("translation failed", "function", results[i].Name, "error", err)
				results[i].Err = err
				return nil
			}
			log.Debug("translated", "function", results[i].Name, "bytes", len(out))
			results[i].Output = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func jobName(job *Job) string {
	if job.Function == nil {
		return ""
	}
	return job.Function.Name
}
