package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "reviewbot",
		Short:         "Single-pass AI review for pull requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withApp(context.Background(), app))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Override config path")

	root.AddCommand(NewRunCmd())
	root.AddCommand(NewDoctorCmd())
	root.AddCommand(NewVersionCmd())

	return root
}
