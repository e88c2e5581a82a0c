package app

import (
	"github.com/spf13/cobra"

	"github.com/OP439/excalidraw/internal/cmd/output"
	"github.com/OP439/excalidraw/pkg/constants"
	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/errors"
	"github.com/OP439/excalidraw/pkg/logging"
)

// mergeOptions holds the flags of the merge command.
type mergeOptions struct {
	local  string
	remote []string
	out    string
	state  elements.InteractionState
}

// NewMergeCommand creates the merge command.
func (a *App) NewMergeCommand() *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:     "merge --local FILE --remote FILE [--remote FILE...]",
		GroupID: "core",
		Short:   "Merge remote snapshots into a local snapshot",
		Long: `Merge reconciles one or more remote element batches into the local
snapshot. Batches are applied in the order given, each merge feeding the
next. The reconciled snapshot is written to --out (stdout by default) and
a report is printed to stderr.`,
		Example: `  excalidraw-reconcile merge --local scene.excalidraw --remote peer.json --out merged.excalidraw
  excalidraw-reconcile merge --local scene.yaml --remote a.yaml --remote b.yaml --editing text-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMerge(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.local, "local", "l", "", "local snapshot (- for stdin)")
	cmd.Flags().StringArrayVarP(&opts.remote, "remote", "r", nil, "remote snapshot, repeatable (- for stdin)")
	cmd.Flags().StringVar(&opts.out, "out", constants.StdioPath, "output snapshot (- for stdout)")
	cmd.Flags().StringVar(&opts.state.EditingID, "editing", "", "id of the element being edited locally")
	cmd.Flags().StringVar(&opts.state.ResizingID, "resizing", "", "id of the element being resized locally")
	cmd.Flags().StringVar(&opts.state.DraggingID, "dragging", "", "id of the element being dragged locally")
	_ = cmd.MarkFlagRequired("local")
	_ = cmd.MarkFlagRequired("remote")

	return cmd
}

func (a *App) runMerge(cmd *cobra.Command, opts *mergeOptions) error {
	if err := checkStdin(append([]string{opts.local}, opts.remote...)); err != nil {
		return err
	}

	format, err := a.inputFormat()
	if err != nil {
		return err
	}
	reportFormat, err := a.reportFormat(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	local, err := a.load(cmd, opts.local, format)
	if err != nil {
		return err
	}
	batches := make([][]elements.Element, 0, len(opts.remote))
	for _, path := range opts.remote {
		doc, err := a.load(cmd, path, format)
		if err != nil {
			return err
		}
		batches = append(batches, doc.Elements)
	}

	r, err := a.Reconciler()
	if err != nil {
		return err
	}
	ctx := logging.WithScene(a.commandContext(cmd, "merge"), opts.local)
	result, err := r.ReconcileBatches(ctx, local.Elements, batches, opts.state)
	if err != nil {
		return err
	}

	if err := a.save(cmd, opts.out, opts.local, local.WithElements(result.Elements.Elements()), format); err != nil {
		return err
	}

	if err := output.Write(cmd.ErrOrStderr(), reportFormat, output.NewReport(result)); err != nil {
		return errors.WrapIO("write", "report", err)
	}
	return a.writeMetrics(cmd.ErrOrStderr())
}

// checkStdin rejects reading stdin for more than one snapshot.
func checkStdin(paths []string) error {
	n := 0
	for _, p := range paths {
		if p == constants.StdioPath {
			n++
		}
	}
	if n > 1 {
		return errors.NewValidationError("remote", constants.StdioPath, "stdin can be used for at most one snapshot")
	}
	return nil
}
