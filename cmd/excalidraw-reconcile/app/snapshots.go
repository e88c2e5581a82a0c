package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/OP439/excalidraw/internal/cmd/output"
	"github.com/OP439/excalidraw/internal/snapshot"
	"github.com/OP439/excalidraw/pkg/constants"
	"github.com/OP439/excalidraw/pkg/logging"
)

// inputFormat returns the configured snapshot encoding.
func (a *App) inputFormat() (snapshot.Format, error) {
	return snapshot.ParseFormat(a.config.InputFormat)
}

// reportFormat returns the report format for w, detecting a terminal when
// no format is configured.
func (a *App) reportFormat(w io.Writer) (output.Format, error) {
	format, err := output.ParseFormat(a.config.Format)
	if err != nil {
		return "", err
	}
	f, _ := w.(*os.File)
	return output.DetectFormat(string(format), f), nil
}

// load reads a snapshot from path, or from the command input for "-".
func (a *App) load(cmd *cobra.Command, path string, format snapshot.Format) (*snapshot.Document, error) {
	var (
		doc *snapshot.Document
		err error
	)
	if path == constants.StdioPath {
		doc, err = snapshot.Read(cmd.InOrStdin(), "stdin", format)
	} else {
		doc, err = snapshot.Load(path, format)
	}
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("path", path).
		Int("elements", len(doc.Elements)).
		Bool("bare", doc.Bare).
		Msg("Loaded snapshot")
	return doc, nil
}

// save writes doc to path, or to the command output for "-". Output to
// stdout uses the encoding of source unless a format is forced.
func (a *App) save(cmd *cobra.Command, path, source string, doc *snapshot.Document, format snapshot.Format) error {
	if path == constants.StdioPath {
		return snapshot.Write(cmd.OutOrStdout(), doc, snapshot.FormatFor(source, format))
	}
	if err := snapshot.Save(path, doc, format); err != nil {
		return err
	}
	a.logger.Info().Str("path", path).Int("elements", len(doc.Elements)).Msg("Wrote snapshot")
	return nil
}

// commandContext returns the command context carrying the app logger.
func (a *App) commandContext(cmd *cobra.Command, operation string) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, a.logger)
	return logging.WithOperation(ctx, operation)
}
