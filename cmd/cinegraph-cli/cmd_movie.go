package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cinegraph/cinegraph/client"
)

func newMovieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movie",
		Short: "Single-movie commands",
	}
	cmd.AddCommand(movieGetCmd())
	cmd.AddCommand(movieVoteCmd())
	return cmd
}

func movieGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <title>",
		Short: "Fetch a movie and its cast by exact title",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			movie, err := apiClient.Movies.Get(context.Background(), args[0])
			if err != nil {
				fatal("movie get", err)
			}
			if flagFmt == "table" {
				printCastTable(movie)
				return
			}
			output(movie)
		},
	}
}

func movieVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <title>",
		Short: "Cast a vote for a movie",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Movies.Vote(context.Background(), args[0])
			if err != nil {
				fatal("movie vote", err)
			}
			output(result)
		},
	}
}

func printCastTable(movie *client.Movie) {
	headers := []string{"NAME", "JOB", "ROLE"}
	var rows [][]string
	for _, m := range movie.Cast {
		rows = append(rows, []string{m.Name, m.Job, strings.Join(m.Role, ", ")})
	}
	if movie.Title != nil {
		released := ""
		if movie.Released != nil {
			released = fmt.Sprintf(" (%d)", *movie.Released)
		}
		fmt.Printf("%s%s\n\n", *movie.Title, released)
	}
	formatTable(headers, rows)
}
