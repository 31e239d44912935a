package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	plan "github.com/katalvlaran/combin/schedule"
)

func NewScheduleCommand() *cobra.Command {
	var (
		days      int
		maxPerDay int
		total     int
		countOnly bool
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Enumerate per-day event-count schedules with a total cap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(plan.Planner{Days: days, MaxPerDay: maxPerDay, Total: total}, countOnly, limit)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "number of days in the schedule")
	cmd.Flags().IntVar(&maxPerDay, "max-per-day", 9, "maximum events on a single day")
	cmd.Flags().IntVar(&total, "total", 10, "maximum events across all days")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of schedules")
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many schedules (0 = all)")

	return cmd
}

func run(p plan.Planner, countOnly bool, limit int) error {
	if countOnly {
		n, err := p.Count()
		if err != nil {
			return err
		}
		fmt.Println(n)

		return nil
	}

	seq, err := p.Stream()
	if err != nil {
		return err
	}

	printed := 0
	for sched, serr := range seq {
		if serr != nil {
			return serr
		}
		fmt.Println(sched)
		printed++
		if limit > 0 && printed == limit {
			break
		}
	}

	return nil
}
