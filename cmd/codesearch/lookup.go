package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"codesearch/internal/client"
	"codesearch/internal/protocol"
)

var (
	fileTextRange string
	fileOutline   bool

	symbolKind string

	searchKind string
	searchAll  bool
	searchMax  int
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Show what the server knows about a file",
	Long: `Show a file's metadata, and optionally part of its text or its outline.

Examples:
  codesearch file src/net/http/http_util.h
  codesearch file net/base/net_errors.h --text 10:1-20:80
  codesearch file net/base/net_errors.h --outline`,
	Args: cobra.ExactArgs(1),
	RunE: withEnv(runFile),
}

var signatureCmd = &cobra.Command{
	Use:   "signature <path> <line> <column>",
	Short: "Find the signature of the entity at a location",
	Args:  cobra.ExactArgs(3),
	RunE:  withEnv(runSignature),
}

var symbolCmd = &cobra.Command{
	Use:   "symbol <path> <symbol>",
	Short: "Find signatures of a symbol defined in a file",
	Long: `Find the signatures of a symbol defined or declared in a file. The symbol
may be qualified (net::HttpUtil::Foo) and matches on its trailing components.`,
	Args: cobra.ExactArgs(2),
	RunE: withEnv(runSymbol),
}

var searchSymbolCmd = &cobra.Command{
	Use:   "search-symbol <symbol>",
	Short: "Search the whole index for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  withEnv(runSearchSymbol),
}

var dirCmd = &cobra.Command{
	Use:   "dir <path>",
	Short: "List a directory on the server",
	Args:  cobra.ExactArgs(1),
	RunE:  withEnv(runDir),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend status",
	Args:  cobra.NoArgs,
	RunE:  withEnv(runStatus),
}

func init() {
	fileCmd.Flags().StringVar(&fileTextRange, "text", "", "Print the text in range L:C-L:C")
	fileCmd.Flags().BoolVar(&fileOutline, "outline", false, "Print the file outline")

	symbolCmd.Flags().StringVar(&symbolKind, "kind", "", "Only match this Kythe node kind (e.g. FUNCTION, RECORD_CLASS)")

	searchSymbolCmd.Flags().StringVar(&searchKind, "kind", "", "Only match this Kythe node kind")
	searchSymbolCmd.Flags().BoolVar(&searchAll, "all", false, "Return every match instead of the first file's")
	searchSymbolCmd.Flags().IntVar(&searchMax, "max", protocol.DefaultMaxResults, "Files to inspect per search")

	rootCmd.AddCommand(fileCmd, signatureCmd, symbolCmd, searchSymbolCmd, dirCmd, statusCmd)
}

func parseNodeKind(s string) (protocol.KytheNodeKind, error) {
	if s == "" {
		return 0, nil
	}
	return protocol.ParseKytheNodeKind(s)
}

func runFile(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	spec := fileSpecFor(e.session, args[0])
	f, err := e.session.GetFileInfo(ctx, spec, client.FileInfoOptions{})
	if err != nil {
		return err
	}
	info := f.Info()
	view := &FileView{
		Path:          info.Name,
		Package:       info.PackageName,
		Language:      info.Language,
		Lines:         len(f.Lines()),
		Revision:      info.Revision(),
		Generated:     info.Generated,
		GeneratedFrom: info.GeneratedFrom,
	}
	if fileTextRange != "" {
		r, err := protocol.ParseTextRange(fileTextRange)
		if err != nil {
			return err
		}
		if view.Text, err = f.Text(r); err != nil {
			return err
		}
	}
	if fileOutline {
		root, err := f.GetCodeBlock(ctx)
		if err != nil {
			return err
		}
		view.Outline = flattenOutline(root, 0, nil)
	}
	return emit(cmd, view)
}

func runSignature(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	line, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid line %q", args[1])
	}
	column, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid column %q", args[2])
	}
	spec := fileSpecFor(e.session, args[0])
	sig, err := e.session.GetSignatureForLocation(ctx, spec, line, column)
	if err != nil {
		return err
	}
	return emit(cmd, &SignatureView{File: spec.Name, Line: line, Column: column, Signatures: []string{sig}})
}

func runSymbol(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	kind, err := parseNodeKind(symbolKind)
	if err != nil {
		return err
	}
	spec := fileSpecFor(e.session, args[0])
	sigs, err := e.session.GetSignaturesForSymbol(ctx, spec, args[1], kind)
	if err != nil {
		return err
	}
	return emit(cmd, &SignatureView{File: spec.Name, Symbol: args[1], Signatures: sigs})
}

func runSearchSymbol(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	kind, err := parseNodeKind(searchKind)
	if err != nil {
		return err
	}
	nodes, err := e.session.SearchForSymbol(ctx, args[0], kind, client.SearchOptions{
		MaxResultsToAnalyze: searchMax,
		ReturnAllResults:    searchAll,
	})
	if err != nil {
		return err
	}
	return emit(cmd, &NodeList{Query: args[0], Nodes: nodeViews(nodes)})
}

func runDir(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	spec := fileSpecFor(e.session, args[0])
	resp, err := e.session.GetDirInfo(ctx, spec)
	if err != nil {
		return err
	}
	view := &DirView{Path: spec.Name, Entries: []DirEntry{}}
	for _, c := range resp.Child {
		view.Entries = append(view.Entries, DirEntry{Name: c.Name, Directory: c.IsDirectory, Deleted: c.IsDeleted})
	}
	return emit(cmd, view)
}

func runStatus(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	cfg := e.session.Config()
	view := &StatusView{
		Host:       cfg.Host,
		Package:    cfg.Package,
		SourceRoot: e.session.SourceRoot(),
		Cache:      cfg.Cache.Enabled,
	}
	st, err := e.session.GetStatus(ctx)
	if err != nil {
		e.logger.Logger.Warn("Status request failed", "error", err)
		return emit(cmd, view)
	}
	view.Healthy = st.Success
	view.BuildLabel = st.BuildLabel
	view.Announcement = st.Announcement
	for _, p := range st.InternalPackage {
		view.Packages = append(view.Packages, p.Name)
	}
	return emit(cmd, view)
}
