package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show duration and distance for one track",
	Example: `  tracklog info tracks/2024/baltic-crossing.gpx

  # Human-readable summary
  tracklog info tracks/2024/baltic-crossing.gpx --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(cmd, args[0])
	},
}

func runInfo(cmd *cobra.Command, path string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	info, err := svc.Info(ctx, path)
	if err != nil {
		return err
	}

	if isVerbose(cmd) {
		cmd.Printf("%s: %s over %s\n", path,
			FormatDuration(info.DurationSeconds),
			FormatDistance(info.DistanceMeters))
	}

	return printJSON(info)
}
