package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cartesian/pkg/cache"
	"github.com/matzehuels/cartesian/pkg/observability"
)

// cacheKeyType is the key type reported to cache hooks.
const cacheKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so that caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different specs, since every execution builds its own frame.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute renders spec to every format in opts, serving artifacts from the
// cache when all of them are present.
func (r *Runner) Execute(ctx context.Context, spec Spec, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	spec.SetDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	specHash, err := spec.Hash()
	if err != nil {
		return nil, err
	}

	result := &Result{SpecHash: specHash, Stats: statsOf(&spec)}

	if !opts.Refresh {
		if artifacts, ok := r.cached(ctx, &spec, specHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheHit = true
			r.Logger.Debug("served artifacts from cache", "spec", specHash[:12], "formats", opts.Formats)
			return result, nil
		}
	}

	start := time.Now()
	artifacts, err := Render(ctx, &spec, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)

	hooks := observability.Cache()
	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(&spec, format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, cacheKeyType, len(data))
	}

	r.Logger.Info("rendered chart",
		"series", result.Stats.SeriesCount,
		"points", result.Stats.PointCount,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// cached returns the artifacts of every format, or false if any is
// missing.
func (r *Runner) cached(ctx context.Context, spec *Spec, specHash string, opts Options) (map[string][]byte, bool) {
	hooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(spec, format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, cacheKeyType)
			return nil, false
		}
		hooks.OnCacheHit(ctx, cacheKeyType)
		artifacts[format] = data
	}
	return artifacts, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func statsOf(s *Spec) Stats {
	st := Stats{SeriesCount: len(s.Series)}
	for _, ss := range s.Series {
		st.PointCount += len(ss.Points)
	}
	return st
}
