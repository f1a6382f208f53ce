package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	redisclient "github.com/KirkDiggler/raid-planner/internal/redis"
)

const (
	ledgerKeyPrefix = "ledger:"
	groupKeyPrefix  = "ledger:group:"

	errMemberIDEmpty = "member ID cannot be empty"
	errGroupIDEmpty  = "group ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the redis ledger repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the config
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a redis-backed ledger repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

// LedgerKey returns the key holding one member's ledger
func LedgerKey(groupID, memberID string) string {
	return fmt.Sprintf("%s%s:%s", ledgerKeyPrefix, groupID, memberID)
}

// GroupKey returns the key of the set indexing a group's members
func GroupKey(groupID string) string {
	return groupKeyPrefix + groupID
}

func validateIDs(memberID, groupID string) error {
	if memberID == "" {
		return errors.InvalidArgument(errMemberIDEmpty)
	}
	if groupID == "" {
		return errors.InvalidArgument(errGroupIDEmpty)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateIDs(input.MemberID, input.GroupID); err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, LedgerKey(input.GroupID, input.MemberID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("ledger for member %s in group %s not found", input.MemberID, input.GroupID).
				WithMeta("member_id", input.MemberID).
				WithMeta("group_id", input.GroupID)
		}
		return nil, errors.Wrapf(err, "failed to get ledger for member %s", input.MemberID)
	}

	var l loot.Ledger
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ledger for member %s", input.MemberID)
	}
	return &GetOutput{Ledger: &l}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Ledger == nil {
		return nil, errors.InvalidArgument("ledger cannot be nil")
	}
	l := input.Ledger
	if err := validateIDs(l.MemberID, l.GroupID); err != nil {
		return nil, err
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal ledger")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, LedgerKey(l.GroupID, l.MemberID), data, 0)
	pipe.SAdd(ctx, GroupKey(l.GroupID), l.MemberID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save ledger for member %s", l.MemberID)
	}

	return &SaveOutput{Ledger: l}, nil
}

func (r *redisRepository) ListByGroup(ctx context.Context, input ListByGroupInput) (*ListByGroupOutput, error) {
	if input.GroupID == "" {
		return nil, errors.InvalidArgument(errGroupIDEmpty)
	}

	memberIDs := input.MemberIDs
	if len(memberIDs) == 0 {
		members, err := r.client.SMembers(ctx, GroupKey(input.GroupID)).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list members of group %s", input.GroupID)
		}
		memberIDs = members
	}
	if len(memberIDs) == 0 {
		return &ListByGroupOutput{Ledgers: []*loot.Ledger{}}, nil
	}

	keys := make([]string, len(memberIDs))
	for i, id := range memberIDs {
		keys[i] = LedgerKey(input.GroupID, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ledgers for group %s", input.GroupID)
	}

	ledgers := make([]*loot.Ledger, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var l loot.Ledger
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal ledger for member %s", memberIDs[i])
		}
		ledgers = append(ledgers, &l)
	}

	sort.Slice(ledgers, func(a, b int) bool {
		return ledgers[a].MemberID < ledgers[b].MemberID
	})
	return &ListByGroupOutput{Ledgers: ledgers}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateIDs(input.MemberID, input.GroupID); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, LedgerKey(input.GroupID, input.MemberID))
	pipe.SRem(ctx, GroupKey(input.GroupID), input.MemberID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete ledger for member %s", input.MemberID)
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("ledger for member %s in group %s not found", input.MemberID, input.GroupID)
	}
	return &DeleteOutput{}, nil
}
