// Package train provides training orchestration: it loads samples from
// a source, deduplicates them, feeds them to a template in a stable
// order, and records what each one did.
package train

import (
	"context"
	"sync/atomic"

	"github.com/mwalczyk/stencil"
	"github.com/mwalczyk/stencil/bloom"
	"golang.org/x/sync/errgroup"
)

// Trainer feeds every sample from a source into a template. Reads run
// concurrently; learning itself is strictly sequential in listing order
// because merge results depend on sample order.
type Trainer struct {
	Source stencil.SampleSource

	// Dedupe, if set, skips samples whose content hash has already
	// been seen during this run.
	Dedupe *bloom.Filter

	// Samples, if set, receives one journal record per learned sample.
	Samples stencil.SampleService

	// SnapshotID labels journal records; only used when Samples is set.
	SnapshotID string

	// Progress, if set, receives events as samples are processed.
	Progress ProgressFunc

	// Concurrency bounds parallel reads. Defaults to 10.
	Concurrency int
}

// Result holds the outcome of a training run.
type Result struct {
	Learned int
	Skipped int
	Failed  int
	Holes   int
}

// ProgressEvent reports progress during a training run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Result    stencil.LearnResult
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// ProgressType values.
const (
	ProgressStarted ProgressType = iota
	ProgressLearned
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting training progress.
type ProgressFunc func(event ProgressEvent)

// loadResult holds one sample read, keyed by its listing position.
type loadResult struct {
	position int
	name     string
	content  string
	err      error
}

// Train lists the source's samples, reads them concurrently, and learns
// them in listing order. Failed reads are counted and skipped; they do
// not abort the run.
func (tr *Trainer) Train(ctx context.Context, tpl *stencil.Template) (*Result, error) {
	names, err := tr.Source.List(ctx)
	if err != nil {
		return nil, err
	}

	total := len(names)
	tr.notify(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := tr.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan loadResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, name := range names {
			g.Go(func() error {
				content, err := tr.Source.Read(gctx, name)
				resultCh <- loadResult{position: i, name: name, content: content, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	loaded := make([]loadResult, total)
	res := &Result{}

	for lr := range resultCh {
		completed.Add(1)
		loaded[lr.position] = lr

		if lr.err != nil {
			res.Failed++
			tr.notify(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				Name:      lr.name,
				Error:     lr.err,
			})
		}
	}

	// Learn sequentially in listing order.
	for _, lr := range loaded {
		if lr.err != nil {
			continue
		}

		hash := stencil.HashContent(lr.content)
		if tr.Dedupe != nil && tr.Dedupe.Seen(hash) {
			res.Skipped++
			tr.notify(ProgressEvent{
				Type:      ProgressSkipped,
				Completed: total,
				Total:     total,
				Name:      lr.name,
			})
			continue
		}

		learnResult := tpl.Learn(lr.content)
		res.Learned++

		if tr.Samples != nil {
			rec := &stencil.SampleRecord{
				SnapshotID:  tr.SnapshotID,
				Name:        lr.name,
				ContentHash: hash,
				Size:        len(lr.content),
				Result:      learnResult.String(),
				Position:    lr.position,
			}
			if err := tr.Samples.RecordSample(ctx, rec); err != nil {
				return nil, err
			}
		}

		tr.notify(ProgressEvent{
			Type:      ProgressLearned,
			Completed: total,
			Total:     total,
			Name:      lr.name,
			Result:    learnResult,
		})
	}

	res.Holes = tpl.NumHoles()

	tr.notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return res, nil
}

func (tr *Trainer) notify(event ProgressEvent) {
	if tr.Progress != nil {
		tr.Progress(event)
	}
}
