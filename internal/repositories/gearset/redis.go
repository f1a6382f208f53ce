package gearset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	redisclient "github.com/KirkDiggler/raid-planner/internal/redis"
)

const gearSetKeyPrefix = "gearset:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the redis gear set repository
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

// NewRedis creates a redis-backed gear set repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

// SetKey returns the key holding one set
func SetKey(groupID, memberID string, kind gear.SetKind) string {
	return fmt.Sprintf("%s%s:%s:%s", gearSetKeyPrefix, groupID, memberID, kind)
}

func validate(memberID, groupID string, kind gear.SetKind) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("member_id", memberID, vb)
	errors.ValidateRequired("group_id", groupID, vb)
	if !kind.IsValid() {
		vb.Fieldf("kind", "unknown set kind %q", kind)
	}
	return vb.Build()
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validate(input.MemberID, input.GroupID, input.Kind); err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, SetKey(input.GroupID, input.MemberID, input.Kind)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("%s set for member %s not found", input.Kind, input.MemberID).
				WithMeta("member_id", input.MemberID).
				WithMeta("kind", string(input.Kind))
		}
		return nil, errors.Wrapf(err, "failed to get %s set for member %s", input.Kind, input.MemberID)
	}

	var set gear.Set
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s set", input.Kind)
	}
	if set.Items == nil {
		set.Items = map[gear.Slot]string{}
	}
	return &GetOutput{Set: &set}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Set == nil {
		return nil, errors.InvalidArgument("set cannot be nil")
	}
	set := input.Set
	if err := validate(set.MemberID, set.GroupID, set.Kind); err != nil {
		return nil, err
	}

	data, err := json.Marshal(set)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s set", set.Kind)
	}
	if err := r.client.Set(ctx, SetKey(set.GroupID, set.MemberID, set.Kind), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s set for member %s", set.Kind, set.MemberID)
	}
	return &SaveOutput{Set: set}, nil
}
