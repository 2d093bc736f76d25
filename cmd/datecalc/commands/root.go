package commands

import (
	"github.com/spf13/cobra"

	"github.com/meenmo/datecalc/internal/config"
	"github.com/meenmo/datecalc/internal/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

// NewRootCmd builds the datecalc command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "datecalc",
		Short:         "Day counts, IMM dates and business-day adjustment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			cfg = c
			log = logger.NewWithWriter(cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	root.AddCommand(
		newDayDiffCmd(),
		newIMMCmd(),
		newAdjustCmd(),
		newBizDaysCmd(),
	)
	return root
}

// Execute runs the root command. Errors are logged before being returned.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if log != nil {
			log.WithError(err).Error("command failed")
		} else {
			root.PrintErrln("Error:", err)
		}
		return err
	}
	return nil
}
