package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/datecalc/calendar"
	"github.com/meenmo/datecalc/imm"
	"github.com/meenmo/datecalc/utils"
)

func newIMMCmd() *cobra.Command {
	var periodName string

	cmd := &cobra.Command{
		Use:   "imm",
		Short: "IMM date calculations",
	}
	cmd.PersistentFlags().StringVarP(&periodName, "period", "p", "", "MONTHLY or QUARTERLY (default from DATECALC_IMM_PERIOD)")

	period := func() (imm.Period, error) {
		if periodName == "" {
			periodName = cfg.IMMPeriod
		}
		return imm.ParsePeriod(periodName)
	}

	step := func(use, short string, forward bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " DATE",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				start, err := utils.ParseDate(args[0])
				if err != nil {
					return err
				}
				p, err := period()
				if err != nil {
					return err
				}
				d, err := imm.NextIMMDate(forward, start, p)
				if err != nil {
					return err
				}
				log.WithField("period", p.String()).Debug(use)
				fmt.Fprintln(cmd.OutOrStdout(), d)
				return nil
			},
		}
	}

	dates := &cobra.Command{
		Use:   "dates START END",
		Short: "IMM dates after START up to and including END",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := utils.ParseDate(args[0])
			if err != nil {
				return err
			}
			end, err := utils.ParseDate(args[1])
			if err != nil {
				return err
			}
			p, err := period()
			if err != nil {
				return err
			}
			list, err := imm.Dates(start, end, p)
			if err != nil {
				return err
			}
			log.WithField("count", len(list)).Debug("imm dates")
			printDates(cmd, list)
			return nil
		},
	}

	bracket := &cobra.Command{
		Use:   "bracket DATE",
		Short: "IMM dates LO and HI with LO < DATE <= HI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := utils.ParseDate(args[0])
			if err != nil {
				return err
			}
			p, err := period()
			if err != nil {
				return err
			}
			lo, hi, err := immBracket(d, p)
			if err != nil {
				return err
			}
			log.WithField("period", p.String()).Debug("imm bracket")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", lo, hi)
			return nil
		},
	}

	cmd.AddCommand(
		step("next", "Next IMM date strictly after DATE", true),
		step("prev", "Previous IMM date strictly before DATE", false),
		dates,
		bracket,
	)
	return cmd
}

// immBracket lists the previous IMM date, DATE itself when it is one, and
// the next IMM date, then picks the pair around DATE.
func immBracket(d calendar.Date, p imm.Period) (calendar.Date, calendar.Date, error) {
	prev, err := imm.Previous(d, p)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	next, err := imm.Next(d, p)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	rest, err := imm.Dates(prev, next, p)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	lo, hi := utils.AdjacentDates(d, append([]calendar.Date{prev}, rest...))
	return lo, hi, nil
}

func printDates(cmd *cobra.Command, dates []calendar.Date) {
	for _, d := range dates {
		fmt.Fprintln(cmd.OutOrStdout(), d)
	}
}
