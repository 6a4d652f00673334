package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinegraph/cinegraph/client"
)

func newSearchCmd() *cobra.Command {
	var offset, limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search movie titles",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			results, err := apiClient.Search.Movies(context.Background(), args[0], offset, limit)
			if err != nil {
				fatal("search", err)
			}
			if flagFmt == "table" {
				printMovieTable(results)
				return
			}
			output(results)
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Skip the first N results")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	return cmd
}

func printMovieTable(results []client.MovieResult) {
	headers := []string{"TITLE", "RELEASED", "VOTES"}
	var rows [][]string
	for _, r := range results {
		title, released, votes := "", "", ""
		if r.Movie.Title != nil {
			title = *r.Movie.Title
		}
		if r.Movie.Released != nil {
			released = fmt.Sprintf("%d", *r.Movie.Released)
		}
		if r.Movie.Votes != nil {
			votes = fmt.Sprintf("%d", *r.Movie.Votes)
		}
		rows = append(rows, []string{title, released, votes})
	}
	formatTable(headers, rows)
}
