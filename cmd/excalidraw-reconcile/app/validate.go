package app

import (
	"github.com/spf13/cobra"

	"github.com/OP439/excalidraw/internal/cmd/output"
	"github.com/OP439/excalidraw/pkg/errors"
)

// NewValidateCommand creates the validate command.
func (a *App) NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate FILE",
		GroupID: "core",
		Short:   "Check the order keys of a snapshot",
		Long: `Validate reports every element whose fractional index is missing,
malformed, duplicated or out of order, in the order the snapshot lists
them. The command fails when any key is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0])
		},
	}
}

func (a *App) runValidate(cmd *cobra.Command, path string) error {
	format, err := a.inputFormat()
	if err != nil {
		return err
	}
	reportFormat, err := a.reportFormat(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	doc, err := a.load(cmd, path, format)
	if err != nil {
		return err
	}

	validation := output.NewValidation(path, doc.Elements)
	if err := output.Write(cmd.OutOrStdout(), reportFormat, validation); err != nil {
		return errors.WrapIO("write", "report", err)
	}

	if !validation.Valid {
		a.logger.Warn().Str("path", path).Int("invalid", len(validation.Invalid)).Msg("Order keys do not validate")
		return errors.NewOrderError(path, validation.IDs())
	}
	a.logger.Info().Str("path", path).Int("elements", validation.Elements).Msg("Order keys are valid")
	return nil
}
