package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/raid-planner/internal/engine"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/repositories/ledger"
)

// Scans stored ledgers, recomputes remaining and completion from required and
// obtained, and offers to rewrite drifted ledgers and delete unreadable ones.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := ledger.NewRedis(&ledger.RedisConfig{Client: client})
	if err != nil {
		log.Fatal("Failed to create ledger repository:", err)
	}
	eng, err := engine.New(&engine.Config{})
	if err != nil {
		log.Fatal("Failed to create engine:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning ledgers...")

	iter := client.Scan(ctx, 0, ledger.LedgerKey("*", "*"), 0).Iterator()

	var corruptedKeys []string
	var drifted []*loot.Ledger
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, ledger.GroupKey("")) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var stored loot.Ledger
		if err := json.Unmarshal([]byte(data), &stored); err != nil || stored.MemberID == "" || stored.GroupID == "" {
			fmt.Printf("✗ Unreadable ledger in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		out, err := eng.ApplyObtained(ctx, &engine.ApplyObtainedInput{
			Ledger:   &stored,
			Obtained: stored.Obtained,
		})
		if err != nil {
			fmt.Printf("✗ Cannot recompute %s: %v\n", key, err)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		fixed := out.Ledger
		if !maps.Equal(fixed.Remaining, stored.Remaining) || fixed.CompletionPercentage != stored.CompletionPercentage {
			fmt.Printf("✗ Drifted ledger %s: completion %d%% should be %d%%\n",
				key, stored.CompletionPercentage, fixed.CompletionPercentage)
			drifted = append(drifted, fixed)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d ledgers: %d drifted, %d unreadable\n", checkedCount, len(drifted), len(corruptedKeys))

	if len(drifted) == 0 && len(corruptedKeys) == 0 {
		fmt.Println("All ledgers are consistent!")
		return
	}

	fmt.Print("\nRewrite drifted ledgers and DELETE unreadable ones? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, l := range drifted {
		if _, err := repo.Save(ctx, ledger.SaveInput{Ledger: l}); err != nil {
			fmt.Printf("Failed to rewrite %s/%s: %v\n", l.GroupID, l.MemberID, err)
		} else {
			fmt.Printf("Rewrote %s/%s\n", l.GroupID, l.MemberID)
		}
	}
	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nRepair complete!")
}
