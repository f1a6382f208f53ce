// Package progress coordinates gear sets, resource ledgers and loot priority
// for raid groups
package progress

//go:generate mockgen -destination=mock/mock_service.go -package=progressmock github.com/KirkDiggler/raid-planner/internal/orchestrators/progress Service

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/raid-planner/internal/engine"
	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/logger"
	"github.com/KirkDiggler/raid-planner/internal/metrics"
	"github.com/KirkDiggler/raid-planner/internal/pkg/clock"
	"github.com/KirkDiggler/raid-planner/internal/pkg/keylock"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearcatalog"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearset"
	"github.com/KirkDiggler/raid-planner/internal/repositories/ledger"
	"github.com/KirkDiggler/raid-planner/internal/repositories/ranking"
)

// Service defines progress operations
type Service interface {
	// SaveGearSet stores a member's starting, current or BIS set after
	// checking every item against the catalog
	SaveGearSet(ctx context.Context, input *SaveGearSetInput) (*SaveGearSetOutput, error)

	// CalculateResources diffs the member's sets and rewrites the ledger's
	// requirement, keeping what was already obtained
	CalculateResources(ctx context.Context, input *CalculateResourcesInput) (*CalculateResourcesOutput, error)

	GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error)

	// UpdateObtainedResources replaces the obtained state wholesale
	UpdateObtainedResources(ctx context.Context, input *UpdateObtainedResourcesInput) (*UpdateObtainedResourcesOutput, error)

	// CalculatePriority ranks the group's members per tracked item and
	// stores the result, replacing the previous pass
	CalculatePriority(ctx context.Context, input *CalculatePriorityInput) (*CalculatePriorityOutput, error)

	GetPriority(ctx context.Context, input *GetPriorityInput) (*GetPriorityOutput, error)
}

// Config holds the dependencies for the progress orchestrator
type Config struct {
	Engine      engine.Engine
	LedgerRepo  ledger.Repository
	GearSetRepo gearset.Repository
	RankingRepo ranking.Repository
	CatalogRepo gearcatalog.Repository
	Clock       clock.Clock
	Logger      *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.LedgerRepo == nil {
		vb.RequiredField("LedgerRepo")
	}
	if c.GearSetRepo == nil {
		vb.RequiredField("GearSetRepo")
	}
	if c.RankingRepo == nil {
		vb.RequiredField("RankingRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	return vb.Build()
}

type orchestrator struct {
	engine      engine.Engine
	ledgerRepo  ledger.Repository
	gearSetRepo gearset.Repository
	rankingRepo ranking.Repository
	catalogRepo gearcatalog.Repository
	clock       clock.Clock
	logger      *zap.Logger

	// ledger writes and priority passes of one group never interleave
	groups keylock.Map
}

// NewOrchestrator creates a progress orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		engine:      cfg.Engine,
		ledgerRepo:  cfg.LedgerRepo,
		gearSetRepo: cfg.GearSetRepo,
		rankingRepo: cfg.RankingRepo,
		catalogRepo: cfg.CatalogRepo,
		clock:       clk,
		logger:      logger.OrNop(cfg.Logger),
	}, nil
}

func (o *orchestrator) SaveGearSet(ctx context.Context, input *SaveGearSetInput) (*SaveGearSetOutput, error) {
	if input == nil || input.Set == nil {
		return nil, errors.InvalidArgument("gear set is required")
	}
	set := input.Set

	catalog, err := gearcatalog.Snapshot(ctx, o.catalogRepo, set)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve gear set items")
	}

	vb := errors.NewValidationBuilder()
	for slot, id := range set.Items {
		if !slot.IsValid() {
			vb.Field("items."+string(slot), "unknown slot")
			continue
		}
		if id == "" {
			continue
		}
		piece, found := catalog.Resolve(id)
		if !found {
			vb.Fieldf("items."+string(slot), "unknown item %s", id)
			continue
		}
		if piece.Slot != slot {
			vb.Fieldf("items."+string(slot), "item %s belongs in slot %s", id, piece.Slot)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.gearSetRepo.Save(ctx, gearset.SaveInput{Set: set})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save gear set")
	}

	o.logger.Info("gear set saved",
		zap.String("group_id", set.GroupID),
		zap.String("member_id", set.MemberID),
		zap.String("kind", string(set.Kind)),
		zap.Int("items", len(set.Items)),
	)

	return &SaveGearSetOutput{
		Set:              out.Set,
		AverageItemLevel: gear.AverageItemLevel(out.Set, catalog),
	}, nil
}

func (o *orchestrator) CalculateResources(ctx context.Context, input *CalculateResourcesInput) (_ *CalculateResourcesOutput, err error) {
	defer func() { metrics.LedgerCalculations.WithLabelValues(metrics.Outcome(err)).Inc() }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMember(input.MemberID, input.GroupID); err != nil {
		return nil, err
	}

	unlock := o.groups.Lock(input.GroupID)
	defer unlock()

	fromKind := gear.SetKindStarting
	if input.FromCurrent {
		fromKind = gear.SetKindCurrent
	}
	current, err := o.loadSet(ctx, input.MemberID, input.GroupID, fromKind)
	if err != nil {
		return nil, err
	}
	target, err := o.loadSet(ctx, input.MemberID, input.GroupID, gear.SetKindBIS)
	if err != nil {
		return nil, err
	}

	catalog, err := gearcatalog.Snapshot(ctx, o.catalogRepo, current, target)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve gear set items")
	}

	gapOut, err := o.engine.CalculateGearGap(ctx, &engine.CalculateGearGapInput{
		Current: current,
		Target:  target,
		Catalog: catalog,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate gear gap")
	}

	existing, err := o.ledgerOrZero(ctx, input.MemberID, input.GroupID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	applied, err := o.engine.ApplyObtained(ctx, &engine.ApplyObtainedInput{
		Ledger: &loot.Ledger{
			MemberID:     input.MemberID,
			GroupID:      input.GroupID,
			Required:     gapOut.Gap.Required,
			CalculatedAt: now,
			UpdatedAt:    now,
		},
		Obtained: existing.Obtained,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply obtained resources")
	}

	saved, err := o.ledgerRepo.Save(ctx, ledger.SaveInput{Ledger: applied.Ledger})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save ledger")
	}

	o.logger.Info("resources calculated",
		zap.String("group_id", input.GroupID),
		zap.String("member_id", input.MemberID),
		zap.String("from", string(fromKind)),
		zap.Int("changes", len(gapOut.Gap.Changes)),
		zap.Int("required_total", saved.Ledger.Required.Total()),
		zap.Int("completion", saved.Ledger.CompletionPercentage),
	)

	return &CalculateResourcesOutput{
		Ledger:           saved.Ledger,
		Gap:              gapOut.Gap,
		CurrentItemLevel: gear.AverageItemLevel(current, catalog),
		TargetItemLevel:  gear.AverageItemLevel(target, catalog),
	}, nil
}

func (o *orchestrator) GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMember(input.MemberID, input.GroupID); err != nil {
		return nil, err
	}

	l, err := o.ledgerOrZero(ctx, input.MemberID, input.GroupID)
	if err != nil {
		return nil, err
	}
	return &GetLedgerOutput{Ledger: l}, nil
}

func (o *orchestrator) UpdateObtainedResources(
	ctx context.Context,
	input *UpdateObtainedResourcesInput,
) (_ *UpdateObtainedResourcesOutput, err error) {
	defer func() { metrics.ObtainedUpdates.WithLabelValues(metrics.Outcome(err)).Inc() }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("member_id", input.MemberID, vb)
	errors.ValidateRequired("group_id", input.GroupID, vb)
	errors.ValidateQuantities("obtained", input.Obtained, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock := o.groups.Lock(input.GroupID)
	defer unlock()

	existing, err := o.ledgerOrZero(ctx, input.MemberID, input.GroupID)
	if err != nil {
		return nil, err
	}

	applied, err := o.engine.ApplyObtained(ctx, &engine.ApplyObtainedInput{
		Ledger:   existing,
		Obtained: input.Obtained,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply obtained resources")
	}
	applied.Ledger.UpdatedAt = o.clock.Now()

	saved, err := o.ledgerRepo.Save(ctx, ledger.SaveInput{Ledger: applied.Ledger})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save ledger")
	}

	o.logger.Info("obtained resources updated",
		zap.String("group_id", input.GroupID),
		zap.String("member_id", input.MemberID),
		zap.Int("obtained_total", saved.Ledger.Obtained.Total()),
		zap.Int("completion", saved.Ledger.CompletionPercentage),
	)

	return &UpdateObtainedResourcesOutput{Ledger: saved.Ledger}, nil
}

func (o *orchestrator) CalculatePriority(
	ctx context.Context,
	input *CalculatePriorityInput,
) (_ *CalculatePriorityOutput, err error) {
	defer func() { metrics.PriorityPasses.WithLabelValues(metrics.Outcome(err)).Inc() }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.GroupID == "" {
		return nil, errors.InvalidArgument("group_id is required")
	}

	unlock := o.groups.Lock(input.GroupID)
	defer unlock()

	listed, err := o.ledgerRepo.ListByGroup(ctx, ledger.ListByGroupInput{
		GroupID:   input.GroupID,
		MemberIDs: input.MemberIDs,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ledgers")
	}
	if len(listed.Ledgers) == 0 {
		return nil, errors.FailedPreconditionf("no ledgers calculated for group %s", input.GroupID).
			WithMeta("group_id", input.GroupID)
	}

	ledgers := withRoster(input.GroupID, input.MemberIDs, listed.Ledgers)

	ranked, err := o.engine.RankPriorities(ctx, &engine.RankPrioritiesInput{Ledgers: ledgers})
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank priorities")
	}

	saved, err := o.rankingRepo.Save(ctx, ranking.SaveInput{Ranking: &loot.Ranking{
		GroupID:      input.GroupID,
		Priorities:   ranked.Ranking,
		MemberCount:  len(ledgers),
		CalculatedAt: o.clock.Now(),
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save ranking")
	}

	metrics.PriorityPassMembers.Observe(float64(len(ledgers)))
	o.logger.Info("priorities calculated",
		zap.String("group_id", input.GroupID),
		zap.Int("members", len(ledgers)),
		zap.Int("never_calculated", len(ledgers)-len(listed.Ledgers)),
		zap.Int("items_ranked", len(ranked.Ranking)),
	)

	return &CalculatePriorityOutput{Ranking: saved.Ranking}, nil
}

func (o *orchestrator) GetPriority(ctx context.Context, input *GetPriorityInput) (*GetPriorityOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.InvalidArgument("group_id is required")
	}

	out, err := o.rankingRepo.Get(ctx, ranking.GetInput{GroupID: input.GroupID})
	if err != nil {
		return nil, err
	}
	return &GetPriorityOutput{Ranking: out.Ranking}, nil
}

func (o *orchestrator) loadSet(ctx context.Context, memberID, groupID string, kind gear.SetKind) (*gear.Set, error) {
	out, err := o.gearSetRepo.Get(ctx, gearset.GetInput{MemberID: memberID, GroupID: groupID, Kind: kind})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPreconditionf("%s gear set has not been saved", kind).
				WithMeta("member_id", memberID).
				WithMeta("group_id", groupID).
				WithMeta("kind", string(kind))
		}
		return nil, errors.Wrapf(err, "failed to load %s gear set", kind)
	}
	return out.Set, nil
}

// ledgerOrZero treats a never-calculated ledger as all zero
func (o *orchestrator) ledgerOrZero(ctx context.Context, memberID, groupID string) (*loot.Ledger, error) {
	out, err := o.ledgerRepo.Get(ctx, ledger.GetInput{MemberID: memberID, GroupID: groupID})
	if err != nil {
		if errors.IsNotFound(err) {
			return loot.NewLedger(memberID, groupID), nil
		}
		return nil, errors.Wrap(err, "failed to load ledger")
	}
	return out.Ledger, nil
}

// withRoster orders ledgers by the caller's roster. Roster members without a
// stored ledger join with an all-zero one. An empty roster keeps stored as is.
func withRoster(groupID string, roster []string, stored []*loot.Ledger) []*loot.Ledger {
	if len(roster) == 0 {
		return stored
	}
	byMember := make(map[string]*loot.Ledger, len(stored))
	for _, l := range stored {
		byMember[l.MemberID] = l
	}

	out := make([]*loot.Ledger, 0, len(roster))
	seen := make(map[string]struct{}, len(roster))
	for _, memberID := range roster {
		if _, dup := seen[memberID]; dup {
			continue
		}
		seen[memberID] = struct{}{}
		if l, ok := byMember[memberID]; ok {
			out = append(out, l)
			continue
		}
		out = append(out, loot.NewLedger(memberID, groupID))
	}
	return out
}

func validateMember(memberID, groupID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("member_id", memberID, vb)
	errors.ValidateRequired("group_id", groupID, vb)
	return vb.Build()
}
