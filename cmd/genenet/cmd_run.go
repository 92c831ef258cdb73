package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/persistorai/genenet/internal/config"
	"github.com/persistorai/genenet/internal/intact"
	"github.com/persistorai/genenet/internal/models"
	"github.com/persistorai/genenet/internal/report"
)

const defaultGeneList = "ArabidopsisSubNetwork_GeneList.txt"

func newRunCmd() *cobra.Command {
	var (
		quality         float64
		interactionsOut string
		reportOut       string
		noAnnotate      bool
	)

	cmd := &cobra.Command{
		Use:   "run [gene-list-file]",
		Short: "Fetch interactions, build networks and write the report locally",
		Long: "Reads one AGI locus code per line, queries IntAct for each, groups the\n" +
			"interactions into networks and annotates them via togows. Nothing is stored.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geneFile := defaultGeneList
			if len(args) == 1 {
				geneFile = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.Quality = resolveQuality(cmd.Flags().Changed("quality"), quality, cfg.Quality)

			log, err := newLogger()
			if err != nil {
				return err
			}

			genes, err := readGeneFile(geneFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := newRunService(cfg, nil, !noAnnotate, log)
			run, err := svc.Run(ctx, genes, cfg.Quality)
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			if err := writeFile(interactionsOut, func(f *os.File) error {
				return report.WriteInteractions(f, run.Interactions)
			}); err != nil {
				return err
			}
			if err := writeFile(reportOut, func(f *os.File) error {
				return report.WriteNetworks(f, run.Networks)
			}); err != nil {
				return err
			}

			printRun(run)
			return nil
		},
	}

	cmd.Flags().Float64Var(&quality, "quality", 0.4, "Minimum intact-miscore to keep an interaction (env: QUALITY)")
	cmd.Flags().StringVar(&interactionsOut, "interactions-out", "interactions.txt", "Interactions output file")
	cmd.Flags().StringVar(&reportOut, "report-out", "report.txt", "Network report output file")
	cmd.Flags().BoolVar(&noAnnotate, "no-annotate", false, "Skip KEGG and GO annotation")
	return cmd
}

// resolveQuality applies flag > env > config file > default.
func resolveQuality(flagSet bool, flagVal, loaded float64) float64 {
	if flagSet {
		return flagVal
	}
	if _, ok := os.LookupEnv("QUALITY"); ok {
		return loaded
	}
	if fileQuality != nil {
		return *fileQuality
	}
	return loaded
}

func readGeneFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gene list: %w", err)
	}
	defer f.Close()

	return intact.ReadGeneList(f)
}

// writeFile creates path and hands it to write, surfacing close errors.
func writeFile(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printRun(run *models.Run) {
	switch flagFmt {
	case "quiet":
		formatQuiet(run.ID.String())
	case "table":
		formatNetworks(run.Networks)
	default:
		formatJSON(run.Summary())
	}
}
