package main

import (
	"context"
	"fmt"
	"path/filepath"

	scippb "github.com/sourcegraph/scip/bindings/go/scip"
	"github.com/spf13/cobra"

	"codesearch/internal/client"
	"codesearch/internal/scipexport"
)

var exportOutput string

var exportScipCmd = &cobra.Command{
	Use:   "export-scip <path>...",
	Short: "Export the annotations of files as a SCIP index",
	Long: `Export the server's annotations for one or more files as a SCIP index.

Example:
  codesearch export-scip net/http/http_util.h net/http/http_util.cc -o http_util.scip`,
	Args: cobra.MinimumNArgs(1),
	RunE: withEnv(runExportScip),
}

func init() {
	exportScipCmd.Flags().StringVarP(&exportOutput, "output", "o", "index.scip", "Output file")
	rootCmd.AddCommand(exportScipCmd)
}

// ExportView summarizes a written index.
type ExportView struct {
	Output      string `json:"output"`
	Documents   int    `json:"documents"`
	Occurrences int    `json:"occurrences"`
	Symbols     int    `json:"symbols"`
}

func (v *ExportView) Human() string {
	return fmt.Sprintf("Wrote %s: %d document(s), %d occurrence(s), %d symbol(s)",
		v.Output, v.Documents, v.Occurrences, v.Symbols)
}

func runExportScip(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	view := &ExportView{Output: exportOutput}
	docs := make([]*scippb.Document, 0, len(args))
	for _, arg := range args {
		spec := fileSpecFor(e.session, arg)
		f, err := e.session.GetFileInfo(ctx, spec, client.FileInfoOptions{})
		if err != nil {
			return err
		}
		doc, err := scipexport.ExportFile(ctx, f)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		view.Occurrences += len(doc.Occurrences)
		view.Symbols += len(doc.Symbols)
	}
	view.Documents = len(docs)

	root := "file://" + filepath.ToSlash(e.session.SourceRoot())
	if err := scipexport.WriteIndex(exportOutput, scipexport.BuildIndex(root, docs...)); err != nil {
		return err
	}
	e.logger.Logger.Info("Exported SCIP index", "output", exportOutput, "documents", view.Documents)
	return emit(cmd, view)
}
