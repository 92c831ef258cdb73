package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/persistorai/genenet/internal/config"
	"github.com/persistorai/genenet/internal/report"
	"github.com/persistorai/genenet/internal/service"
)

func newNetworksCmd() *cobra.Command {
	var (
		reportOut string
		annotated bool
	)

	cmd := &cobra.Command{
		Use:   "networks <interactions-file>",
		Short: "Rebuild networks from a saved interactions file without querying IntAct",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening interactions: %w", err)
			}
			interactions, err := report.ReadInteractions(f)
			f.Close()
			if err != nil {
				return err
			}

			svc := service.NewRunService(nil, nil, nil, 0, log)
			networks := svc.Rebuild(interactions)

			if annotated {
				cfg, err := config.Load()
				if err != nil {
					return err
				}

				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				if err := newAnnotator(cfg, log).Annotate(ctx, networks); err != nil {
					return fmt.Errorf("annotating networks: %w", err)
				}
			}

			if reportOut != "" {
				return writeFile(reportOut, func(f *os.File) error {
					return report.WriteNetworks(f, networks)
				})
			}

			switch flagFmt {
			case "table":
				formatNetworks(networks)
			case "quiet":
				fmt.Println(len(networks))
			default:
				formatJSON(networks)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportOut, "report-out", "", "Write the text report to this file instead of stdout")
	cmd.Flags().BoolVar(&annotated, "annotate", false, "Annotate networks via togows")
	return cmd
}
