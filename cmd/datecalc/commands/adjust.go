package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/datecalc/calendar"
	"github.com/meenmo/datecalc/utils"
)

func resolveCalendar(name string) (calendar.CalendarID, error) {
	if name == "" {
		name = cfg.Calendar
	}
	return calendar.ParseCalendarID(name)
}

func newAdjustCmd() *cobra.Command {
	var calName, convName string

	cmd := &cobra.Command{
		Use:   "adjust DATE",
		Short: "Roll DATE onto a business day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := utils.ParseDate(args[0])
			if err != nil {
				return err
			}
			id, err := resolveCalendar(calName)
			if err != nil {
				return err
			}
			conv, err := calendar.ParseConvention(convName)
			if err != nil {
				return err
			}
			adjusted, err := calendar.AdjustWith(calendar.HolidayCalendar{ID: id}, d, conv)
			if err != nil {
				return err
			}
			log.WithFields(map[string]interface{}{"calendar": id, "convention": conv}).Debug("adjust")
			fmt.Fprintln(cmd.OutOrStdout(), adjusted)
			return nil
		},
	}

	cmd.Flags().StringVarP(&calName, "calendar", "c", "", "holiday calendar (default from DATECALC_CALENDAR)")
	cmd.Flags().StringVar(&convName, "convention", string(calendar.ModifiedFollowing), "business day convention")
	return cmd
}

func newBizDaysCmd() *cobra.Command {
	var calName string
	var add int

	cmd := &cobra.Command{
		Use:   "bizdays START [END]",
		Short: "Count business days in (START, END], or move START by --add business days",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := utils.ParseDate(args[0])
			if err != nil {
				return err
			}
			id, err := resolveCalendar(calName)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), calendar.AddBusinessDays(id, start, add))
				return nil
			}
			end, err := utils.ParseDate(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calendar.BusinessDaysBetween(id, start, end))
			return nil
		},
	}

	cmd.Flags().StringVarP(&calName, "calendar", "c", "", "holiday calendar (default from DATECALC_CALENDAR)")
	cmd.Flags().IntVarP(&add, "add", "n", 0, "business days to add when only START is given")
	return cmd
}
