package reconcile

import (
	"context"

	"github.com/google/uuid"

	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/errors"
	"github.com/OP439/excalidraw/pkg/fractional"
	"github.com/OP439/excalidraw/pkg/logging"
)

// Reconciler merges remote element batches into a local replica and
// reports what happened.
type Reconciler interface {
	// Reconcile merges one remote batch into local.
	Reconcile(ctx context.Context, local, remote []elements.Element, state elements.InteractionState) (*Result, error)

	// ReconcileBatches merges several remote batches into local, feeding the
	// output of each merge into the next one. The interaction state applies
	// to every batch.
	ReconcileBatches(ctx context.Context, local []elements.Element, batches [][]elements.Element, state elements.InteractionState) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	order     fractional.Order
	metrics   *metrics
	changeset bool
}

var _ Reconciler = (*reconciler)(nil)

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := defaultOptions().apply(opts...)
	if err != nil {
		return nil, err
	}

	r := &reconciler{
		order:     options.order,
		changeset: options.changeset,
	}
	if options.registerer != nil {
		r.metrics, err = newMetrics(options.registerer)
		if err != nil {
			return nil, errors.NewConfigError("reconcile", "registering metrics", err)
		}
	}
	return r, nil
}

// Reconcile implements Reconciler.
func (r *reconciler) Reconcile(ctx context.Context, local, remote []elements.Element, state elements.InteractionState) (*Result, error) {
	return r.ReconcileBatches(ctx, local, [][]elements.Element{remote}, state)
}

// ReconcileBatches implements Reconciler.
func (r *reconciler) ReconcileBatches(ctx context.Context, local []elements.Element, batches [][]elements.Element, state elements.InteractionState) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapCanceled("reconcile", err)
	}

	id := uuid.NewString()
	ctx = logging.WithReconcileID(ctx, id)
	logger := logging.FromContext(ctx)
	result := newResult(id)

	// With nothing to merge the local replica is still normalized.
	if len(batches) == 0 {
		batches = [][]elements.Element{nil}
	}

	logger.Debug().
		Int("local", len(local)).
		Int("batches", len(batches)).
		Msg("Starting reconciliation")

	contested := make(map[string]struct{})
	current := local
	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapCanceled("reconcile", err)
		}

		merged, stats := assemble(current, batch, state, func(res Resolution) {
			if res.Local != nil {
				contested[res.ID] = struct{}{}
			}
			result.Resolutions = append(result.Resolutions, res)
			r.metrics.observe(res)
			logger.Trace().
				Str("element", res.ID).
				Stringer("decision", res.Decision).
				Stringer("reason", res.Reason).
				Msg("Resolved element")
		})

		ordered, repaired, rewritten := normalize(r.order, merged)
		switch {
		case len(rewritten) > 0:
			logger.Warn().
				Int("batch", i).
				Strs("rewritten", rewritten).
				Msg("Order keys collided, assigned fresh keys")
		case repaired:
			logger.Debug().
				Int("batch", i).
				Msg("Merged sequence was out of order, keys kept")
		}
		if repaired {
			result.Metadata.Stats.OrderRepairs++
			result.Metadata.Stats.RewrittenKeys += len(rewritten)
		}
		r.metrics.batch(repaired)
		result.addBatch(stats)

		logger.Debug().
			Int("batch", i).
			Int("remote", stats.Remote).
			Int("duplicates", stats.Duplicates).
			Int("kept_local", stats.KeptLocal()).
			Int("took_remote", stats.TookRemote()).
			Msg("Merged batch")

		current = ordered
	}

	result.Elements = seal(current)
	if r.changeset {
		result.Changeset = diff(local, current, contested)
	}
	result.finalize()
	r.metrics.size(result.Elements.Len())

	logger.Info().
		Int("elements", result.Elements.Len()).
		Bool("repaired", result.Repaired()).
		Dur("duration", result.Metadata.Duration).
		Str("summary", result.Summary()).
		Msg("Reconciliation complete")

	return result, nil
}
