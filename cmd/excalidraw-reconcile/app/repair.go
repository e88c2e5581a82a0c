package app

import (
	"github.com/spf13/cobra"

	"github.com/OP439/excalidraw/internal/cmd/output"
	"github.com/OP439/excalidraw/pkg/constants"
	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/errors"
)

// NewRepairCommand creates the repair command.
func (a *App) NewRepairCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "repair FILE",
		GroupID: "core",
		Short:   "Sort a snapshot and regenerate invalid order keys",
		Long: `Repair orders the snapshot by fractional index and assigns fresh keys to
elements whose key is missing, malformed or colliding. Valid keys are kept.
Repeated ids are collapsed to their first occurrence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepair(cmd, args[0], out)
		},
	}
	cmd.Flags().StringVar(&out, "out", constants.StdioPath, "output snapshot (- for stdout)")

	return cmd
}

func (a *App) runRepair(cmd *cobra.Command, path, out string) error {
	format, err := a.inputFormat()
	if err != nil {
		return err
	}
	reportFormat, err := a.reportFormat(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	doc, err := a.load(cmd, path, format)
	if err != nil {
		return err
	}

	r, err := a.Reconciler()
	if err != nil {
		return err
	}
	// Merging a replica with nothing normalizes it.
	result, err := r.Reconcile(a.commandContext(cmd, "repair"), doc.Elements, nil, elements.InteractionState{})
	if err != nil {
		return err
	}

	if err := a.save(cmd, out, path, doc.WithElements(result.Elements.Elements()), format); err != nil {
		return err
	}
	if err := output.Write(cmd.ErrOrStderr(), reportFormat, output.NewReport(result)); err != nil {
		return errors.WrapIO("write", "report", err)
	}
	return a.writeMetrics(cmd.ErrOrStderr())
}
