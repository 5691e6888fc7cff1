package pipeline

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// Source names one WARC stream to process: Open must return a fresh,
// independently readable stream each time it's called.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileResult pairs a Source's name with the Results Run produced for it, or
// the error that aborted it.
type FileResult struct {
	Name    string
	Results []Result
	Err     error
}

// RunConcurrent processes each Source independently with Run, fanning out
// across at most maxConcurrency goroutines via errgroup. Each Source gets
// its own warc.Iterator, so no state is shared between them. A per-source
// error is recorded on that Source's FileResult rather than aborting the
// others; RunConcurrent itself only returns an error if ctx is canceled.
func RunConcurrent(ctx context.Context, sources []Source, cfg Config, maxConcurrency int) ([]FileResult, error) {
	results := make([]FileResult, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	if maxConcurrency > 0 {
		g.SetLimit(maxConcurrency)
	}

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = FileResult{Name: src.Name}
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			rc, err := src.Open()
			if err != nil {
				results[i].Err = err
				return nil
			}
			defer rc.Close()

			begin := time.Now()
			rs, err := Run(rc, cfg)
			results[i].Results = rs
			results[i].Err = err
			if cfg.Logger != nil {
				cfg.Logger.Info("source processed",
					"name", src.Name,
					"records", len(rs),
					"duration", time.Since(begin),
					"err", err,
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
