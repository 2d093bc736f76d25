package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/datecalc/daycount"
	"github.com/meenmo/datecalc/utils"
)

func newDayDiffCmd() *cobra.Command {
	var (
		basisName string
		maturity  string
	)

	cmd := &cobra.Command{
		Use:   "daydiff START END",
		Short: "Day count and year fraction between two dates",
		Long: fmt.Sprintf(`Prints the day count and year fraction from START to END.

Conventions: %v (plus aliases such as ACT/360, 30/360, 30E/360).
With --maturity, 30E/360 ISDA applies the termination-date exception.`, daycount.Names()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := utils.ParseDate(args[0])
			if err != nil {
				return err
			}
			end, err := utils.ParseDate(args[1])
			if err != nil {
				return err
			}
			if basisName == "" {
				basisName = cfg.Basis
			}
			basis, err := daycount.Resolve(basisName)
			if err != nil {
				return err
			}

			days, err := daycount.DayDiff(start, end, basis)
			if err != nil {
				return err
			}
			years, err := daycount.YearDiff(start, end, basis)
			if err != nil {
				return err
			}

			if maturity != "" {
				if basis != daycount.Conv360EISDA {
					return fmt.Errorf("--maturity only applies to %s, got %s", daycount.Conv360EISDA, basis)
				}
				m, err := utils.ParseDate(maturity)
				if err != nil {
					return err
				}
				days = daycount.DayDiff360EISDAWithMaturity(start, end, m)
				years = daycount.YearDiff360EISDAWithMaturity(start, end, m)
			}

			log.WithFields(map[string]interface{}{
				"start": start.String(),
				"end":   end.String(),
				"basis": basis.String(),
			}).Debug("daydiff")

			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", days,
				utils.RoundHalfUp(years, int32(cfg.Precision)).StringFixed(int32(cfg.Precision)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&basisName, "basis", "b", "", "day count convention (default from DATECALC_BASIS)")
	cmd.Flags().StringVar(&maturity, "maturity", "", "maturity date for 30E/360 ISDA")
	return cmd
}
