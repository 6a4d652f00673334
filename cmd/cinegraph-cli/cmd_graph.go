package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinegraph/cinegraph/client"
)

func newGraphCmd() *cobra.Command {
	var (
		rels        []string
		root        string
		depth       int
		nodeInclude []string
		nodeExclude []string
		releasedGTE int64
		releasedLTE int64
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Browse the movies graph",
		Run: func(cmd *cobra.Command, args []string) {
			opts := client.BrowseOptions{
				Rels:        rels,
				Root:        root,
				Depth:       depth,
				NodeInclude: nodeInclude,
				NodeExclude: nodeExclude,
				Limit:       limit,
			}
			if cmd.Flags().Changed("released-gte") {
				opts.ReleasedGTE = &releasedGTE
			}
			if cmd.Flags().Changed("released-lte") {
				opts.ReleasedLTE = &releasedLTE
			}

			result, err := apiClient.Graph.Browse(context.Background(), opts)
			if err != nil {
				fatal("graph", err)
			}
			if flagFmt == "table" {
				printGraphTable(result)
				return
			}
			output(result)
		},
	}

	cmd.Flags().StringSliceVar(&rels, "rel", nil, "Relationship types to keep (e.g. ACTED_IN,DIRECTED)")
	cmd.Flags().StringVar(&root, "root", "", "Anchor node for a rooted walk (movie title, person name, or node id)")
	cmd.Flags().IntVar(&depth, "depth", 0, "Walk depth from the root (max 6)")
	cmd.Flags().StringSliceVar(&nodeInclude, "node-incl", nil, "Node labels to include")
	cmd.Flags().StringSliceVar(&nodeExclude, "node-excl", nil, "Node labels to exclude")
	cmd.Flags().Int64Var(&releasedGTE, "released-gte", 0, "Minimum release year for movies")
	cmd.Flags().Int64Var(&releasedLTE, "released-lte", 0, "Maximum release year for movies")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max links (default 200, max 1000)")
	return cmd
}

func printGraphTable(result *client.GraphResult) {
	headers := []string{"SOURCE", "REL", "TARGET"}
	var rows [][]string
	for _, l := range result.Links {
		src, dst := "", ""
		if l.Source >= 0 && l.Source < len(result.Nodes) {
			src = result.Nodes[l.Source].Title
		}
		if l.Target >= 0 && l.Target < len(result.Nodes) {
			dst = result.Nodes[l.Target].Title
		}
		rows = append(rows, []string{src, l.Rel, dst})
	}
	formatTable(headers, rows)
	fmt.Printf("\n%d nodes, %d links\n", len(result.Nodes), len(result.Links))
}
