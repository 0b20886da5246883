package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func NewDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check dependencies and configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			fmt.Fprintln(cmd.OutOrStdout(), "reviewbot doctor")
			if err := app.GH.CheckInstalled(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "- gh: ok")
			if err := app.GH.AuthStatus(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "- gh auth: ok")
			if err := app.Reviewer.Ping(ctx); err != nil {
				fmt.Fprintf(cmd.OutOrStderr(), "- provider: failed\n%v\n", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "- provider: ok")
			fmt.Fprintln(cmd.OutOrStdout(), "doctor checks passed")
			return nil
		},
	}
	return cmd
}
