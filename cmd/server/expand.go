package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/raid-planner/internal/engine"
	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
)

var (
	expandType     string
	expandCount    int
	expandEnd      string
	expandWeekdays string
)

var expandCmd = &cobra.Command{
	Use:   "expand [date]",
	Short: "Print the dates a recurrence rule generates",
	Long: `Expand a recurrence rule offline, without a server. Examples:

  expand 2024-01-01 --type weekly --weekdays 2,4 --count 6
  expand 2024-01-31 --type monthly --end 2024-06-30`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringVar(&expandType, "type", string(schedule.RecurrenceWeekly), "none, daily, weekly, biweekly or monthly")
	expandCmd.Flags().IntVar(&expandCount, "count", 0, "number of occurrences after the first date")
	expandCmd.Flags().StringVar(&expandEnd, "end", "", "inclusive end date, YYYY-MM-DD")
	expandCmd.Flags().StringVar(&expandWeekdays, "weekdays", "", "comma separated weekdays, Monday=0")
}

func runExpand(cmd *cobra.Command, args []string) error {
	date, err := time.Parse(time.DateOnly, args[0])
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", args[0], err)
	}

	days, err := schedule.ParseWeekdays(expandWeekdays)
	if err != nil {
		return err
	}
	rule := schedule.RecurrenceRule{
		Type:             schedule.RecurrenceType(expandType),
		SelectedWeekdays: days,
	}
	if expandCount > 0 {
		rule.OccurrenceCount = &expandCount
	}
	if expandEnd != "" {
		end, err := time.Parse(time.DateOnly, expandEnd)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %w", expandEnd, err)
		}
		rule.EndDate = &end
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return err
	}
	out, err := eng.ExpandRecurrence(context.Background(), &engine.ExpandRecurrenceInput{
		Template: &schedule.Template{ID: "preview", Date: date, Rule: rule},
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s  %s (first)\n", date.Format(time.DateOnly), date.Weekday())
	for _, occ := range out.Occurrences {
		fmt.Fprintf(w, "%s  %s\n", occ.Date.Format(time.DateOnly), occ.Date.Weekday())
	}
	fmt.Fprintf(w, "\n%d occurrences after the first date\n", len(out.Occurrences))
	return nil
}
