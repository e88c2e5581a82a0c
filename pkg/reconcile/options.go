package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/OP439/excalidraw/pkg/errors"
	"github.com/OP439/excalidraw/pkg/fractional"
)

// options configures a reconciler.
type options struct {
	order      fractional.Order
	registerer prometheus.Registerer
	changeset  bool
}

func defaultOptions() *options {
	return &options{
		order:     fractional.New(),
		changeset: true,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithOrder sets the order key implementation.
func WithOrder(order fractional.Order) Option {
	return func(o *options) error {
		if order == nil {
			return &errors.ValidationError{
				Field:   "order",
				Message: "cannot be nil",
			}
		}
		o.order = order
		return nil
	}
}

// WithMetrics registers reconciliation metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) error {
		if reg == nil {
			return &errors.ValidationError{
				Field:   "metrics",
				Message: "registerer cannot be nil",
			}
		}
		o.registerer = reg
		return nil
	}
}

// WithChangeset enables or disables change detection against the local input.
func WithChangeset(enabled bool) Option {
	return func(o *options) error {
		o.changeset = enabled
		return nil
	}
}
