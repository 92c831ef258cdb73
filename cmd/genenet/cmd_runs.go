package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/persistorai/genenet/client"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect runs stored on a genenet server",
	}
	cmd.AddCommand(newRunsListCmd())
	cmd.AddCommand(newRunsCreateCmd())
	cmd.AddCommand(newRunsGetCmd())
	cmd.AddCommand(newRunsReportCmd())
	cmd.AddCommand(newRunsDeleteCmd())
	return cmd
}

func newRunsListCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runs, newest first",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runs, hasMore, err := apiClient.Runs.List(cmd.Context(), &client.ListOptions{Limit: limit, Offset: offset})
			if err != nil {
				fatal("list runs", err)
			}

			switch flagFmt {
			case "table":
				formatRuns(runs)
			case "quiet":
				for _, r := range runs {
					formatQuiet(r.ID)
				}
			default:
				formatJSON(map[string]any{"runs": runs, "has_more": hasMore})
			}
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum runs to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Runs to skip")
	return cmd
}

func newRunsCreateCmd() *cobra.Command {
	var quality float64

	cmd := &cobra.Command{
		Use:   "create <gene-list-file>",
		Short: "Start a run on the server from a gene list file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			genes, err := readGeneFile(args[0])
			if err != nil {
				fatal("read genes", err)
			}

			req := &client.CreateRunRequest{Genes: genes}
			if cmd.Flags().Changed("quality") {
				req.Quality = &quality
			} else if fileQuality != nil {
				req.Quality = fileQuality
			}

			run, err := apiClient.Runs.Create(cmd.Context(), req)
			if err != nil {
				fatal("create run", err)
			}
			output(run, run.ID)
		},
	}
	cmd.Flags().Float64Var(&quality, "quality", 0.4, "Minimum intact-miscore (server default when unset)")
	return cmd
}

func newRunsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <run-id>",
		Short: "Show a run",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run, err := apiClient.Runs.Get(cmd.Context(), args[0])
			if err != nil {
				fatal("get run", err)
			}
			if flagFmt == "table" {
				formatNetworks(clientNetworks(run.Networks))
				return
			}
			output(run, run.ID)
		},
	}
}

func newRunsReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <run-id>",
		Short: "Print the text network report of a run",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			text, err := apiClient.Runs.Report(cmd.Context(), args[0])
			if err != nil {
				fatal("get report", err)
			}
			fmt.Print(text)
		},
	}
}

func newRunsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a run",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Runs.Delete(cmd.Context(), args[0]); err != nil {
				if client.IsNotFound(err) {
					fatal("delete run", fmt.Errorf("run %s not found", args[0]))
				}
				fatal("delete run", err)
			}
			if flagFmt != "quiet" {
				fmt.Printf("deleted %s\n", args[0])
			}
		},
	}
}

func runRows(runs []client.RunSummary) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.Format(time.RFC3339),
			strconv.FormatFloat(r.Quality, 'f', -1, 64),
			strconv.Itoa(r.GeneCount),
			strconv.Itoa(r.InteractionCount),
			strconv.Itoa(r.NetworkCount),
		})
	}
	return rows
}
