package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/privameter/privameter/internal/assess"
	"github.com/privameter/privameter/internal/signal"
)

const defaultWorkers = 4

// ArtifactRequest names one artifact of a batch and carries the metadata the
// extractor needs to produce its signals.
type ArtifactRequest struct {
	ArtifactID string
	Name       string
	Kind       signal.ArtifactKind
	Metadata   map[string]string
}

// ArtifactFailure reports an artifact that could not be assessed. Failed
// artifacts are excluded from the summary's averages, never scored as zero.
type ArtifactFailure struct {
	ArtifactID string `json:"artifact_id"`
	Name       string `json:"name"`
	Error      string `json:"error"`
}

// BatchResult is the outcome of one batch run. Assessments holds the
// artifacts that succeeded; Failures the ones that did not. Summary covers
// the successful assessments only.
type BatchResult struct {
	BatchID     string                     `json:"batch_id"`
	Assessments []assess.PrivacyAssessment `json:"assessments"`
	Failures    []ArtifactFailure          `json:"failures"`
	Summary     DashboardSummary           `json:"summary"`
}

// Runner assesses batches of artifacts concurrently. Per-artifact assessment
// shares no mutable state, so artifacts run fully in parallel; the only
// synchronization is the append into the results slice and the join barrier
// before summarizing.
type Runner struct {
	engine    *assess.Engine
	extractor signal.Extractor
	store     Store
	workers   int
}

// NewRunner wires a batch runner. store may be nil when no session history is
// wanted; workers <= 0 selects the default.
func NewRunner(engine *assess.Engine, extractor signal.Extractor, store Store, workers int) *Runner {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Runner{engine: engine, extractor: extractor, store: store, workers: workers}
}

// Run extracts and assesses every artifact of the batch, waits for all of
// them, then summarizes. One artifact's extraction failure does not stop the
// rest; it is reported in Failures and excluded from the summary. Run returns
// ErrEmptyBatch only when no artifact at all could be assessed.
//
// A cancelled context abandons in-flight artifacts; they simply never
// contribute to the batch, with no partial state to roll back.
func (r *Runner) Run(ctx context.Context, requests []ArtifactRequest) (BatchResult, error) {
	result := BatchResult{BatchID: uuid.NewString()}
	if len(requests) == 0 {
		return result, ErrEmptyBatch
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, req := range requests {
		req := req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			assessment, err := r.assessOne(req)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, ArtifactFailure{
					ArtifactID: req.ArtifactID,
					Name:       req.Name,
					Error:      err.Error(),
				})
				return nil
			}
			result.Assessments = append(result.Assessments, assessment)
			return nil
		})
	}

	// Join barrier: partial batches are never summarized.
	if err := g.Wait(); err != nil {
		return result, err
	}

	if r.store != nil {
		now := time.Now()
		for _, a := range result.Assessments {
			if err := r.store.Record(Entry{
				SessionID:  result.BatchID,
				RecordedAt: now,
				Assessment: a,
			}); err != nil {
				return result, err
			}
		}
	}

	summary, err := Summarize(result.Assessments)
	if err != nil {
		return result, err
	}
	result.Summary = summary
	return result, nil
}

func (r *Runner) assessOne(req ArtifactRequest) (assess.PrivacyAssessment, error) {
	signals, err := r.extractor.Extract(req.Kind, req.Metadata)
	if err != nil {
		// Extraction failures propagate unchanged; the core never retries.
		return assess.PrivacyAssessment{}, err
	}
	return r.engine.Assess(signal.ArtifactAnalysis{
		ArtifactID: req.ArtifactID,
		Name:       req.Name,
		Kind:       req.Kind,
		Signals:    signals,
	})
}
