package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"codesearch/internal/client"
	cserrors "codesearch/internal/errors"
	"codesearch/internal/protocol"
)

var (
	xrefKinds []string
	xrefMax   int
	xrefFile  string

	callgraphDepth int

	nodeFile string
)

var xrefsCmd = &cobra.Command{
	Use:   "xrefs <signature>",
	Short: "List cross references of a signature",
	Long: `List cross references of a signature, optionally restricted to some kinds.

Kinds: ` + strings.Join(protocol.KytheXrefKindNames(), ", ") + `

Examples:
  codesearch xrefs 'kythe://chromium?lang=c%2B%2B?path=src/net/http/x.h#Foo' --kind DEFINITION
  codesearch xrefs <signature> --kind REFERENCE --kind CALLED_BY --max 20`,
	Args: cobra.ExactArgs(1),
	RunE: withEnv(runXrefs),
}

var callgraphCmd = &cobra.Command{
	Use:   "callgraph <signature>",
	Short: "Show the callers of a function",
	Args:  cobra.ExactArgs(1),
	RunE:  withEnv(runCallgraph),
}

var typeCmd = &cobra.Command{
	Use:   "type <signature>",
	Short: "Find the type of a variable or field",
	Args:  cobra.ExactArgs(1),
	RunE:  withEnv(runType),
}

var relatedCmd = &cobra.Command{
	Use:   "related <signature>",
	Short: "List definitions of the entities mentioned next to a signature",
	Args:  cobra.ExactArgs(1),
	RunE:  withEnv(runRelated),
}

func init() {
	xrefsCmd.Flags().StringArrayVar(&xrefKinds, "kind", nil, "Cross reference kind (repeatable)")
	xrefsCmd.Flags().IntVar(&xrefMax, "max", protocol.DefaultMaxResults, "Maximum number of results")
	xrefsCmd.Flags().StringVar(&xrefFile, "file", "", "File the signature is defined in")

	callgraphCmd.Flags().IntVar(&callgraphDepth, "depth", 1, "Levels of callers to expand")
	callgraphCmd.Flags().StringVar(&xrefFile, "file", "", "File the signature is defined in")

	for _, c := range []*cobra.Command{typeCmd, relatedCmd} {
		c.Flags().StringVar(&nodeFile, "file", "", "File the signature is defined in")
		_ = c.MarkFlagRequired("file")
	}

	rootCmd.AddCommand(xrefsCmd, callgraphCmd, typeCmd, relatedCmd)
}

// nodeFor builds the starting node for a signature, attaching file when
// given.
func nodeFor(s *client.Session, signature, file string) *client.XrefNode {
	if file == "" {
		return client.FromSignature(s, signature, nil)
	}
	spec := fileSpecFor(s, file)
	return client.FromSignature(s, signature, &spec)
}

func parseXrefKinds(names []string) ([]protocol.KytheXrefKind, error) {
	kinds := make([]protocol.KytheXrefKind, 0, len(names))
	for _, n := range names {
		k, err := protocol.ParseKytheXrefKind(strings.ToUpper(n))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func runXrefs(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	kinds, err := parseXrefKinds(xrefKinds)
	if err != nil {
		return err
	}
	nodes, err := nodeFor(e.session, args[0], xrefFile).Traverse(ctx, kinds, xrefMax)
	if err != nil {
		return err
	}
	if len(nodes) > xrefMax {
		nodes = nodes[:xrefMax]
	}
	return emit(cmd, &NodeList{Query: args[0], Nodes: nodeViews(nodes)})
}

func runCallgraph(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	root := nodeFor(e.session, args[0], xrefFile)
	view, err := expandCallers(ctx, root, callgraphDepth)
	if err != nil {
		return err
	}
	return emit(cmd, view)
}

// expandCallers walks CALLED_BY edges depth levels deep. Signatures already
// on the current path are not expanded again.
func expandCallers(ctx context.Context, n *client.XrefNode, depth int) (*CallerView, error) {
	view := &CallerView{NodeView: nodeView(n)}
	if depth <= 0 || onPath(n) {
		return view, nil
	}
	callers, err := n.Traverse(ctx, []protocol.KytheXrefKind{protocol.XrefCalledBy}, 0)
	if err != nil {
		return nil, err
	}
	for _, c := range callers {
		child, err := expandCallers(ctx, c, depth-1)
		if err != nil {
			return nil, err
		}
		view.Callers = append(view.Callers, *child)
	}
	return view, nil
}

func onPath(n *client.XrefNode) bool {
	sig := n.GetSignature()
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.GetSignature() == sig {
			return true
		}
	}
	return false
}

func runType(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	typ, err := nodeFor(e.session, args[0], nodeFile).GetType(ctx)
	if err != nil {
		return err
	}
	if typ == nil {
		return cserrors.Newf(cserrors.NotFound, "no type found for %s", args[0])
	}
	view := nodeView(typ)
	if name, err := typ.GetDisplayName(ctx, true); err == nil {
		view.DisplayName = name
	} else {
		e.logger.Logger.Debug("No display name for type", "signature", view.Signature, "error", err)
	}
	return emit(cmd, view)
}

func runRelated(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	defs, err := nodeFor(e.session, args[0], nodeFile).GetRelatedDefinitions(ctx)
	if err != nil {
		return err
	}
	return emit(cmd, &NodeList{Query: fmt.Sprintf("entities related to %s", args[0]), Nodes: nodeViews(defs)})
}
