package main

import (
	"context"
	"errors"
	"time"

	"tracklog/internal/server/service"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:     "recent",
	Short:   "Show the most recently recorded track and boat position",
	Example: "  tracklog recent",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecent(cmd)
	},
}

func runRecent(cmd *cobra.Command) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	recent, err := svc.Recent(ctx)
	if errors.Is(err, service.ErrEmptyTree) {
		cmd.Println("No tracks found.")
		return nil
	}
	if err != nil {
		return err
	}

	return printJSON(recent)
}
