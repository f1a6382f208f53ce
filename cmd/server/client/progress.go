package client

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	raidplannerv1alpha1 "github.com/KirkDiggler/raid-planner/gen/go/raidplanner/v1alpha1"
	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
)

var fromCurrent bool

var saveGearSetCmd = &cobra.Command{
	Use:   "save-gear-set [member-id] [group-id] [kind] [slot=piece-id...]",
	Short: "Store a member's starting, current or bis gear set",
	Long: `Store a gear set. Slots left out are empty. Example:

  save-gear-set alice static-1 bis weapon=weapon-savage head=head-tome`,
	Args: cobra.MinimumNArgs(3),
	RunE: saveGearSet,
}

var calculateResourcesCmd = &cobra.Command{
	Use:   "calculate-resources [member-id] [group-id]",
	Short: "Recalculate a member's required resources from their gear sets",
	Args:  cobra.ExactArgs(2),
	RunE:  calculateResources,
}

var getLedgerCmd = &cobra.Command{
	Use:   "get-ledger [member-id] [group-id]",
	Short: "Show a member's resource ledger",
	Args:  cobra.ExactArgs(2),
	RunE:  getLedger,
}

var updateObtainedCmd = &cobra.Command{
	Use:   "update-obtained [member-id] [group-id] [key=quantity...]",
	Short: "Replace a member's obtained resources",
	Args:  cobra.MinimumNArgs(2),
	RunE:  updateObtained,
}

var calculatePriorityCmd = &cobra.Command{
	Use:   "calculate-priority [group-id] [member-id...]",
	Short: "Rank a group's members for every tracked item",
	Args:  cobra.MinimumNArgs(1),
	RunE:  calculatePriority,
}

var getPriorityCmd = &cobra.Command{
	Use:   "get-priority [group-id]",
	Short: "Show the last stored priority ranking",
	Args:  cobra.ExactArgs(1),
	RunE:  getPriority,
}

func init() {
	calculateResourcesCmd.Flags().BoolVar(&fromCurrent, "from-current", false, "diff from the current set instead of the starting set")
}

func parseSlots(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		slot, pieceID, ok := strings.Cut(arg, "=")
		if !ok || pieceID == "" {
			return nil, fmt.Errorf("expected slot=piece-id, got %q", arg)
		}
		if !gear.Slot(slot).IsValid() {
			return nil, fmt.Errorf("unknown slot %q", slot)
		}
		out[slot] = pieceID
	}
	return out, nil
}

func saveGearSet(cmd *cobra.Command, args []string) error {
	items, err := parseSlots(args[3:])
	if err != nil {
		return err
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.SaveGearSet(ctx, &raidplannerv1alpha1.SaveGearSetRequest{Set: &raidplannerv1alpha1.GearSet{
		MemberId: args[0],
		GroupId:  args[1],
		Kind:     args[2],
		Items:    items,
	}})
	if err != nil {
		return fmt.Errorf("failed to save gear set: %w", err)
	}

	return printResponse(resp, func() {
		set := resp.GetSet()
		fmt.Printf("Saved %s set for %s (%d slots)\n", set.GetKind(), set.GetMemberId(), len(set.GetItems()))
		fmt.Printf("Average item level: %d\n", resp.GetAverageItemLevel())
	})
}

func calculateResources(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.CalculateResources(ctx, &raidplannerv1alpha1.CalculateResourcesRequest{
		MemberId:    args[0],
		GroupId:     args[1],
		FromCurrent: fromCurrent,
	})
	if err != nil {
		return fmt.Errorf("failed to calculate resources: %w", err)
	}

	return printResponse(resp, func() {
		fmt.Printf("Item level: %d -> %d\n", resp.GetCurrentItemLevel(), resp.GetTargetItemLevel())
		if changes := resp.GetGap().GetChanges(); len(changes) > 0 {
			fmt.Printf("\nChanges:\n")
			for _, c := range changes {
				fmt.Printf("  %-9s %s -> %s (%s)\n", c.GetSlot(), c.GetFrom(), c.GetTo(), c.GetTier())
			}
		}
		printLedger(resp.GetLedger())
	})
}

func getLedger(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.GetLedger(ctx, &raidplannerv1alpha1.GetLedgerRequest{MemberId: args[0], GroupId: args[1]})
	if err != nil {
		return fmt.Errorf("failed to get ledger: %w", err)
	}
	return printResponse(resp, func() { printLedger(resp.GetLedger()) })
}

func updateObtained(cmd *cobra.Command, args []string) error {
	obtained, err := parsePairs(args[2:])
	if err != nil {
		return err
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.UpdateObtainedResources(ctx, &raidplannerv1alpha1.UpdateObtainedResourcesRequest{
		MemberId: args[0],
		GroupId:  args[1],
		Obtained: obtained,
	})
	if err != nil {
		return fmt.Errorf("failed to update obtained resources: %w", err)
	}
	return printResponse(resp, func() { printLedger(resp.GetLedger()) })
}

func calculatePriority(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.CalculatePriority(ctx, &raidplannerv1alpha1.CalculatePriorityRequest{
		GroupId:   args[0],
		MemberIds: args[1:],
	})
	if err != nil {
		return fmt.Errorf("failed to calculate priority: %w", err)
	}
	return printResponse(resp, func() { printRanking(resp.GetRanking(), resp.GetTrackedItems()) })
}

func getPriority(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := withTimeout()
	defer cancel()

	resp, err := client.GetPriority(ctx, &raidplannerv1alpha1.GetPriorityRequest{GroupId: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get priority: %w", err)
	}
	return printResponse(resp, func() { printRanking(resp.GetRanking(), resp.GetTrackedItems()) })
}

func printLedger(l *raidplannerv1alpha1.Ledger) {
	if l == nil {
		return
	}
	fmt.Printf("\nLedger for %s in %s (%d%% complete)\n", l.GetMemberId(), l.GetGroupId(), l.GetCompletionPercentage())
	fmt.Printf("%-22s %9s %9s %9s\n", "resource", "required", "obtained", "remaining")
	keys := make([]string, 0, len(l.GetRequired()))
	for key := range l.GetRequired() {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%-22s %9d %9d %9d\n", key, l.GetRequired()[key], l.GetObtained()[key], l.GetRemaining()[key])
	}
}

func printRanking(r *raidplannerv1alpha1.Ranking, items []*raidplannerv1alpha1.TrackedItem) {
	if r == nil {
		return
	}
	calculated := r.GetCalculatedAt().AsTime().Format("2006-01-02 15:04")
	fmt.Printf("Priority for %s (%d members, %s)\n", r.GetGroupId(), r.GetMemberCount(), calculated)
	for _, item := range items {
		members := r.GetPriorities()[item.GetKey()].GetMemberIds()
		if len(members) == 0 {
			continue
		}
		fmt.Printf("  %-22s %s\n", item.GetKey(), strings.Join(members, " > "))
	}
}
