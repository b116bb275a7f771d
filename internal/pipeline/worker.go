package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Worker processes a single document job.
type Worker struct {
	log   *slog.Logger
	opts  Options
	stats *Stats
}

func NewWorker(log *slog.Logger, opts Options, stats *Stats) *Worker {
	return &Worker{
		log:   log,
		opts:  opts,
		stats: stats,
	}
}

// Process runs the parse pipeline for a job and records the outcome on it.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)
	start := time.Now()

	res, err := Parse(ctx, job.Filename, job.FileData(), w.opts, func(s JobStatus) {
		job.SetStatus(s, string(s))
	})
	job.releaseFileData()
	if err != nil {
		if w.stats != nil {
			w.stats.RecordFailure()
		}
		log.Error("parse failed", "phase", job.Snapshot().Phase, "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, job.Snapshot().Phase)
		return
	}

	elapsed := time.Since(start)
	if w.stats != nil {
		w.stats.Record(elapsed, res.Lexemes)
	}
	job.Complete(res)

	log.Info("parsed document",
		"lexemes", res.Lexemes,
		"nodes", res.Build.Nodes,
		"roots", res.Build.Roots,
		"spurious_closers", res.Build.Spurious,
		"recovered_closers", res.Build.Recovered,
		"unclosed_tags", res.Build.Unclosed,
		"duration_ms", elapsed.Milliseconds(),
	)
}
