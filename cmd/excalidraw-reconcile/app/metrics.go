package app

import (
	"io"

	"github.com/prometheus/common/expfmt"

	"github.com/OP439/excalidraw/pkg/errors"
)

// writeMetrics prints the collected metrics in the prometheus text format
// when metrics are enabled.
func (a *App) writeMetrics(w io.Writer) error {
	if !a.config.Metrics {
		return nil
	}

	families, err := a.registry.Gather()
	if err != nil {
		return errors.NewConfigError("metrics", "gathering metrics", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return errors.WrapIO("write", "metrics", err)
		}
	}
	return nil
}
