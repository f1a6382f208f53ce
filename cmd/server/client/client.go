// Package client provides commands that exercise a running planner server
package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	raidplannerv1alpha1 "github.com/KirkDiggler/raid-planner/gen/go/raidplanner/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the raid planner",
	Long:  `Client commands make real gRPC requests against a running planner server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output responses as JSON")

	// Progress commands
	ClientCmd.AddCommand(saveGearSetCmd)
	ClientCmd.AddCommand(calculateResourcesCmd)
	ClientCmd.AddCommand(getLedgerCmd)
	ClientCmd.AddCommand(updateObtainedCmd)
	ClientCmd.AddCommand(calculatePriorityCmd)
	ClientCmd.AddCommand(getPriorityCmd)

	// Schedule commands
	ClientCmd.AddCommand(createScheduleCmd)
	ClientCmd.AddCommand(listSchedulesCmd)
	ClientCmd.AddCommand(respondCmd)
	ClientCmd.AddCommand(recordAttendedCmd)
	ClientCmd.AddCommand(cancelScheduleCmd)
	ClientCmd.AddCommand(attendanceStatsCmd)
}

// createPlannerClient dials the server and returns a client plus its cleanup
func createPlannerClient() (raidplannerv1alpha1.PlannerServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return raidplannerv1alpha1.NewPlannerServiceClient(conn), cleanup, nil
}

// parsePairs turns key=value arguments into a map of quantities
func parsePairs(args []string) (map[string]int32, error) {
	out := make(map[string]int32, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity for %s: %w", key, err)
		}
		out[key] = int32(n)
	}
	return out, nil
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// printResponse writes resp as JSON when --json is set, otherwise runs text
func printResponse(resp proto.Message, text func()) error {
	if !jsonOutput {
		text()
		return nil
	}

	marshaler := protojson.MarshalOptions{
		Indent:          "  ",
		EmitUnpopulated: false,
	}
	jsonBytes, err := marshaler.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
