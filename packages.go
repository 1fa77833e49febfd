// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shadergen

import (
	"context"
	"fmt"

	"github.com/gogpu/shadergen/config"
	"github.com/gogpu/shadergen/gofront"
	"github.com/gogpu/shadergen/internal/cache"
	"github.com/gogpu/shadergen/translate"
)

// Report is the outcome of TranslatePackages.
type Report struct {
	// Dialect is the target dialect.
	Dialect string

	// Funcs are the collected functions; Results[i] belongs to Funcs[i].
	Funcs   []*gofront.Func
	Results []Result

	// Diagnostics describe functions the front end could not lower.
	Diagnostics []gofront.Diagnostic
}

// Failed returns the number of failed functions, counting diagnostics.
func (r *Report) Failed() int {
	n := len(r.Diagnostics)
	for i := range r.Results {
		if r.Results[i].Err != nil {
			n++
		}
	}
	return n
}

// CacheHits returns the number of results served from the cache.
func (r *Report) CacheHits() int {
	n := 0
	for i := range r.Results {
		if r.Results[i].Cached {
			n++
		}
	}
	return n
}

// TranslatePackages loads the Go packages matching patterns, translates
// their shader functions with the dialect, options and table overrides of
// cfg, and reports one Result per function. Per-function failures are
// reported in the Report; the error is reserved for configuration, load and
// cancellation failures.
func TranslatePackages(ctx context.Context, cfg *config.Config, opts *Options, patterns ...string) (*Report, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	base, err := Backend(cfg.Target.Dialect)
	if err != nil {
		return nil, err
	}
	be := cfg.Apply(base)

	topts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	run := Options{Translate: topts, Jobs: cfg.Build.Jobs}
	if opts != nil {
		run.Logger = opts.Logger
		run.Dir = opts.Dir
		run.NoCache = opts.NoCache
		if opts.Jobs > 0 {
			run.Jobs = opts.Jobs
		}
	}
	log := run.logger()

	loaded, err := gofront.Load(ctx, gofront.Config{Dir: run.Dir, All: cfg.Build.AllFunctions}, patterns...)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Dialect:     be.Name(),
		Funcs:       loaded.Funcs,
		Results:     make([]Result, len(loaded.Funcs)),
		Diagnostics: loaded.Diagnostics,
	}
	for _, d := range loaded.Diagnostics {
		log.Warn("function skipped", "function", d.Function, "pos", d.Pos.String(), "reason", d.Message)
	}

	var dc *cache.DiskCache
	if cfg.Build.CacheDir != "" && !run.NoCache {
		if dc, err = cache.Open(cfg.Build.CacheDir); err != nil {
			return nil, err
		}
	}

	// Serve hits from the cache and queue the rest.
	keys := make([]cache.Digest, len(loaded.Funcs))
	var jobs []Job
	var pending []int
	for i, f := range loaded.Funcs {
		if dc != nil {
			keys[i], err = cache.Key(cacheInput(cfg, be.Name(), f))
			if err != nil {
				return nil, err
			}
			entry, ok, err := dc.Get(keys[i])
			if err != nil {
				log.Warn("cache read failed", "function", f.Function.Name, "error", err)
			}
			if ok {
				report.Results[i] = Result{Name: f.Function.Name, Output: entry.Output, Cached: true}
				continue
			}
		}
		jobs = append(jobs, Job{Function: f.Function, Body: f.Body, Resolver: f.Symbols})
		pending = append(pending, i)
	}

	results, err := TranslateAll(ctx, jobs, be, &run)
	for j, r := range results {
		report.Results[pending[j]] = r
	}
	if err != nil {
		return report, fmt.Errorf("shadergen: %w", err)
	}

	if dc != nil {
		for _, i := range pending {
			r := &report.Results[i]
			if r.Err != nil {
				continue
			}
			if err := dc.Put(keys[i], r.Name, r.Output); err != nil {
				log.Warn("cache write failed", "function", r.Name, "error", err)
			}
		}
	}

	log.Info("translation finished",
		"dialect", report.Dialect,
		"functions", len(report.Results),
		"cached", report.CacheHits(),
		"failed", report.Failed())
	return report, nil
}

// cacheInput collects everything that influences the output of f. The
// lowered form is hashed rather than the Go source, since constants and
// type aliases declared elsewhere are already resolved in it.
func cacheInput(cfg *config.Config, dialect string, f *gofront.Func) *cache.Input {
	types, functions := cfg.Overrides()
	fns := make(map[string]string, len(functions))
	for k, v := range functions {
		fns[k.String()] = v
	}
	policy, _ := translate.ParseIdentifierPolicy(cfg.Target.Identifiers)
	return &cache.Input{
		Version:     Version,
		Dialect:     dialect,
		Identifiers: policy.String(),
		Indent:      cfg.Target.Indent,
		Types:       types,
		Functions:   fns,
		Name:        f.Function.Name,
		Signature:   cache.Canonical(f.Function, nil),
		Body:        cache.Canonical(f.Body, f.Symbols),
	}
}
