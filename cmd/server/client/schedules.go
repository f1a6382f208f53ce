package client

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	raidplannerv1alpha1 "github.com/KirkDiggler/raid-planner/gen/go/raidplanner/v1alpha1"
)

var (
	scheduleTitle     string
	scheduleStart     string
	scheduleEnd       string
	scheduleMinimum   int
	scheduleCreatedBy string
	scheduleMembers   []string
	recurrenceType    string
	recurrenceEnd     string
	recurrenceCount   int
	recurrenceDays    string
	rangeFrom         string
	rangeTo           string
	responseReason    string
	attended          bool
)

var createScheduleCmd = &cobra.Command{
	Use:   "create-schedule [group-id] [date]",
	Short: "Create a raid schedule and its recurring occurrences",
	Long: `Create a schedule. Example:

  create-schedule static-1 2024-01-03 --title "Savage prog" --start 20:00 \
    --type weekly --weekdays 2,4 --count 8 --members alice,bob`,
	Args: cobra.ExactArgs(2),
	RunE: createSchedule,
}

var listSchedulesCmd = &cobra.Command{
	Use:   "list-schedules [group-id]",
	Short: "List a group's upcoming and past schedules",
	Args:  cobra.ExactArgs(1),
	RunE:  listSchedules,
}

var respondCmd = &cobra.Command{
	Use:   "respond [schedule-id] [member-id] [status]",
	Short: "Respond to a schedule as confirmed, declined, tentative or pending",
	Args:  cobra.ExactArgs(3),
	RunE:  respond,
}

var recordAttendedCmd = &cobra.Command{
	Use:   "record-attended [schedule-id] [member-id]",
	Short: "Record whether a member showed up",
	Args:  cobra.ExactArgs(2),
	RunE:  recordAttended,
}

var cancelScheduleCmd = &cobra.Command{
	Use:   "cancel-schedule [schedule-id]",
	Short: "Cancel one schedule entry",
	Args:  cobra.ExactArgs(1),
	RunE:  cancelSchedule,
}

var attendanceStatsCmd = &cobra.Command{
	Use:   "attendance-stats [group-id]",
	Short: "Show per-member confirmation and attendance rates",
	Args:  cobra.ExactArgs(1),
	RunE:  attendanceStats,
}

func init() {
	f := createScheduleCmd.Flags()
	f.StringVar(&scheduleTitle, "title", "", "schedule title")
	f.StringVar(&scheduleStart, "start", "", "start time, HH:MM")
	f.StringVar(&scheduleEnd, "end", "", "end time, HH:MM")
	f.IntVar(&scheduleMinimum, "minimum", 0, "minimum members, defaults to a full party")
	f.StringVar(&scheduleCreatedBy, "created-by", "", "member creating the schedule")
	f.StringSliceVar(&scheduleMembers, "members", nil, "roster member IDs")
	f.StringVar(&recurrenceType, "type", "", "none, daily, weekly, biweekly or monthly")
	f.StringVar(&recurrenceEnd, "until", "", "inclusive recurrence end date, YYYY-MM-DD")
	f.IntVar(&recurrenceCount, "count", 0, "occurrences after the first date")
	f.StringVar(&recurrenceDays, "weekdays", "", "comma separated weekdays, Monday=0")

	for _, c := range []*cobra.Command{listSchedulesCmd, attendanceStatsCmd} {
		c.Flags().StringVar(&rangeFrom, "from", "", "first date, YYYY-MM-DD")
		c.Flags().StringVar(&rangeTo, "to", "", "last date, YYYY-MM-DD")
	}

	respondCmd.Flags().StringVar(&responseReason, "reason", "", "optional reason")
	recordAttendedCmd.Flags().BoolVar(&attended, "attended", true, "whether the member attended")
}

func createSchedule(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	rec := &raidplannerv1alpha1.Recurrence{
		Type:             recurrenceType,
		EndDate:          recurrenceEnd,
		SelectedWeekdays: recurrenceDays,
	}
	if recurrenceCount > 0 {
		rec.OccurrenceCount = proto.Int32(int32(recurrenceCount))
	}

	resp, err := client.CreateSchedule(ctx, &raidplannerv1alpha1.CreateScheduleRequest{
		GroupId:        args[0],
		CreatedBy:      scheduleCreatedBy,
		Date:           args[1],
		Title:          scheduleTitle,
		StartTime:      scheduleStart,
		EndTime:        scheduleEnd,
		MinimumMembers: int32(scheduleMinimum),
		Recurrence:     rec,
		MemberIds:      scheduleMembers,
	})
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	return printResponse(resp, func() {
		fmt.Printf("Created schedule %s\n", resp.GetTemplate().GetId())
		printEntry(resp.GetTemplate())
		for _, occ := range resp.GetOccurrences() {
			printEntry(occ)
		}
		fmt.Printf("\n%d occurrences, %d attendance records\n", len(resp.GetOccurrences()), resp.GetAttendanceCount())
	})
}

func listSchedules(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.ListSchedules(ctx, &raidplannerv1alpha1.ListSchedulesRequest{
		GroupId: args[0],
		From:    rangeFrom,
		To:      rangeTo,
	})
	if err != nil {
		return fmt.Errorf("failed to list schedules: %w", err)
	}

	return printResponse(resp, func() {
		fmt.Printf("Upcoming (%d):\n", len(resp.GetUpcoming()))
		for _, e := range resp.GetUpcoming() {
			printEntry(e)
		}
		fmt.Printf("\nPast (%d):\n", len(resp.GetPast()))
		for _, e := range resp.GetPast() {
			printEntry(e)
		}
	})
}

func respond(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.RespondAttendance(ctx, &raidplannerv1alpha1.RespondAttendanceRequest{
		ScheduleId: args[0],
		MemberId:   args[1],
		Status:     args[2],
		Reason:     responseReason,
	})
	if err != nil {
		return fmt.Errorf("failed to respond: %w", err)
	}
	return printResponse(resp, func() { printAttendance(resp.GetAttendance()) })
}

func recordAttended(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.RecordAttended(ctx, &raidplannerv1alpha1.RecordAttendedRequest{
		ScheduleId: args[0],
		MemberId:   args[1],
		Attended:   attended,
	})
	if err != nil {
		return fmt.Errorf("failed to record attendance: %w", err)
	}
	return printResponse(resp, func() { printAttendance(resp.GetAttendance()) })
}

func cancelSchedule(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.CancelSchedule(ctx, &raidplannerv1alpha1.CancelScheduleRequest{ScheduleId: args[0]})
	if err != nil {
		return fmt.Errorf("failed to cancel schedule: %w", err)
	}
	return printResponse(resp, func() { printEntry(resp.GetEntry()) })
}

func attendanceStats(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.GetAttendanceStats(ctx, &raidplannerv1alpha1.GetAttendanceStatsRequest{
		GroupId: args[0],
		From:    rangeFrom,
		To:      rangeTo,
	})
	if err != nil {
		return fmt.Errorf("failed to get attendance stats: %w", err)
	}

	return printResponse(resp, func() {
		fmt.Printf("%-16s %6s %9s %9s %8s %8s\n", "member", "total", "confirmed", "attended", "conf%", "att%")
		for _, s := range resp.GetStatistics() {
			fmt.Printf("%-16s %6d %9d %9d %7.1f%% %7.1f%%\n",
				s.GetMemberId(), s.GetTotalSchedules(), s.GetConfirmedCount(), s.GetActualAttendance(),
				s.GetConfirmationRate(), s.GetAttendanceRate())
		}
	})
}

func printEntry(e *raidplannerv1alpha1.ScheduleEntry) {
	if e == nil {
		return
	}
	fmt.Printf("  %s  %s  %-5s %-10s %s (%s)\n",
		e.GetDate(), e.GetId(), e.GetStartTime(), e.GetStatus(), e.GetTitle(), e.GetRecurrence().GetType())
}

func printAttendance(a *raidplannerv1alpha1.Attendance) {
	if a == nil {
		return
	}
	fmt.Printf("%s on %s: %s", a.GetMemberId(), a.GetScheduleId(), a.GetStatus())
	if a.GetReason() != "" {
		fmt.Printf(" (%s)", a.GetReason())
	}
	if a.Attended != nil {
		fmt.Printf(", attended=%t", a.GetAttended())
	}
	fmt.Println()
}
