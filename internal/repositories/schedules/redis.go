package schedules

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	redisclient "github.com/KirkDiggler/raid-planner/internal/redis"
)

const (
	entryKeyPrefix      = "schedule:entry:"
	groupKeyPrefix      = "schedule:group:"
	attendanceKeyPrefix = "schedule:attendance:"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the redis schedule repository
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

// NewRedis creates a redis-backed schedule repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

// EntryKey returns the key of one schedule entry
func EntryKey(id string) string { return entryKeyPrefix + id }

// GroupKey returns the key of the sorted set of a group's entries, scored by date
func GroupKey(groupID string) string { return groupKeyPrefix + groupID }

// AttendanceKey returns the key of the hash of a schedule's attendance
func AttendanceKey(scheduleID string) string { return attendanceKeyPrefix + scheduleID }

func validateEntry(e *schedule.Entry) error {
	if e == nil {
		return errors.InvalidArgument("entry cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", e.ID, vb)
	errors.ValidateRequired("group_id", e.GroupID, vb)
	if e.Date.IsZero() {
		vb.RequiredField("date")
	}
	return vb.Build()
}

func (r *redisRepository) CreateSeries(ctx context.Context, input CreateSeriesInput) (*CreateSeriesOutput, error) {
	if len(input.Entries) == 0 {
		return nil, errors.InvalidArgument("at least one entry is required")
	}

	pipe := r.client.TxPipeline()
	for _, e := range input.Entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		data, err := json.Marshal(e)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal schedule %s", e.ID)
		}
		pipe.Set(ctx, EntryKey(e.ID), data, 0)
		pipe.ZAdd(ctx, GroupKey(e.GroupID), redis.Z{Score: float64(e.Date.Unix()), Member: e.ID})
	}
	for _, a := range input.Attendance {
		if a == nil || a.ScheduleID == "" || a.MemberID == "" {
			return nil, errors.InvalidArgument("attendance needs a schedule and a member")
		}
		data, err := json.Marshal(a)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal attendance")
		}
		pipe.HSet(ctx, AttendanceKey(a.ScheduleID), a.MemberID, data)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create schedule series")
	}
	return &CreateSeriesOutput{
		EntryCount:      len(input.Entries),
		AttendanceCount: len(input.Attendance),
	}, nil
}

func (r *redisRepository) GetEntry(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("schedule ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, EntryKey(input.ID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("schedule %s not found", input.ID).WithMeta("schedule_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get schedule %s", input.ID)
	}

	var e schedule.Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal schedule %s", input.ID)
	}
	return &GetEntryOutput{Entry: &e}, nil
}

func (r *redisRepository) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	if err := validateEntry(input.Entry); err != nil {
		return nil, err
	}
	e := input.Entry

	exists, err := r.client.Exists(ctx, EntryKey(e.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check schedule %s", e.ID)
	}
	if exists == 0 {
		return nil, errors.NotFoundf("schedule %s not found", e.ID).WithMeta("schedule_id", e.ID)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal schedule %s", e.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, EntryKey(e.ID), data, 0)
	pipe.ZAdd(ctx, GroupKey(e.GroupID), redis.Z{Score: float64(e.Date.Unix()), Member: e.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update schedule %s", e.ID)
	}
	return &UpdateEntryOutput{Entry: e}, nil
}

func (r *redisRepository) ListByGroup(ctx context.Context, input ListByGroupInput) (*ListByGroupOutput, error) {
	if input.GroupID == "" {
		return nil, errors.InvalidArgument("group ID cannot be empty")
	}

	rng := &redis.ZRangeBy{Min: "-inf", Max: "+inf"}
	if input.From != nil {
		rng.Min = strconv.FormatInt(schedule.DateOf(*input.From).Unix(), 10)
	}
	if input.To != nil {
		rng.Max = strconv.FormatInt(schedule.DateOf(*input.To).Unix(), 10)
	}

	ids, err := r.client.ZRangeByScore(ctx, GroupKey(input.GroupID), rng).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list schedules of group %s", input.GroupID)
	}
	if len(ids) == 0 {
		return &ListByGroupOutput{Entries: []*schedule.Entry{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = EntryKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schedules of group %s", input.GroupID)
	}

	entries := make([]*schedule.Entry, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var e schedule.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal schedule %s", ids[i])
		}
		entries = append(entries, &e)
	}
	return &ListByGroupOutput{Entries: entries}, nil
}

func (r *redisRepository) ListAttendance(
	ctx context.Context,
	input ListAttendanceInput,
) (*ListAttendanceOutput, error) {
	if len(input.ScheduleIDs) == 0 {
		return &ListAttendanceOutput{Attendance: []*schedule.Attendance{}}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(input.ScheduleIDs))
	for i, id := range input.ScheduleIDs {
		cmds[i] = pipe.HGetAll(ctx, AttendanceKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to read attendance")
	}

	var records []*schedule.Attendance
	for i, cmd := range cmds {
		fields := cmd.Val()
		members := make([]string, 0, len(fields))
		for m := range fields {
			members = append(members, m)
		}
		sort.Strings(members)

		for _, m := range members {
			var a schedule.Attendance
			if err := json.Unmarshal([]byte(fields[m]), &a); err != nil {
				return nil, errors.Wrapf(err, "failed to unmarshal attendance of %s for %s", m, input.ScheduleIDs[i])
			}
			records = append(records, &a)
		}
	}
	if records == nil {
		records = []*schedule.Attendance{}
	}
	return &ListAttendanceOutput{Attendance: records}, nil
}

func (r *redisRepository) SaveAttendance(
	ctx context.Context,
	input SaveAttendanceInput,
) (*SaveAttendanceOutput, error) {
	a := input.Attendance
	if a == nil || a.ScheduleID == "" || a.MemberID == "" {
		return nil, errors.InvalidArgument("attendance needs a schedule and a member")
	}

	key := AttendanceKey(a.ScheduleID)
	exists, err := r.client.HExists(ctx, key, a.MemberID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check attendance of %s", a.MemberID)
	}
	if !exists {
		return nil, errors.NotFoundf("member %s is not on schedule %s", a.MemberID, a.ScheduleID).
			WithMeta("schedule_id", a.ScheduleID).
			WithMeta("member_id", a.MemberID)
	}

	data, err := json.Marshal(a)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal attendance")
	}
	if err := r.client.HSet(ctx, key, a.MemberID, data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save attendance of %s", a.MemberID)
	}
	return &SaveAttendanceOutput{Attendance: a}, nil
}
