package gearcatalog

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

// pieceRecord is the table row for a catalog piece
type pieceRecord struct {
	ID          string `gorm:"primaryKey;size:64"`
	Name        string `gorm:"size:200;not null"`
	Slot        string `gorm:"size:20;index;not null"`
	Tier        string `gorm:"size:20;not null"`
	ItemLevel   int    `gorm:"not null"`
	UpgradeCost int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (pieceRecord) TableName() string {
	return "gear_pieces"
}

func (r *pieceRecord) toEntity() *gear.Piece {
	return &gear.Piece{
		ID:          r.ID,
		Name:        r.Name,
		Slot:        gear.Slot(r.Slot),
		Tier:        gear.Tier(r.Tier),
		ItemLevel:   r.ItemLevel,
		UpgradeCost: r.UpgradeCost,
	}
}

func recordFrom(p *gear.Piece) pieceRecord {
	return pieceRecord{
		ID:          p.ID,
		Name:        p.Name,
		Slot:        string(p.Slot),
		Tier:        string(p.Tier),
		ItemLevel:   p.ItemLevel,
		UpgradeCost: p.UpgradeCost,
	}
}

type gormRepository struct {
	db *gorm.DB
}

// GormConfig contains configuration for the gorm catalog repository
type GormConfig struct {
	DB *gorm.DB
	// AutoMigrate creates or updates the gear_pieces table on construction
	AutoMigrate bool
}

// Validate validates the config
func (cfg *GormConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewGorm creates a catalog repository on a relational database
func NewGorm(cfg *GormConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := cfg.DB.AutoMigrate(&pieceRecord{}); err != nil {
			return nil, errors.Wrapf(err, "failed to migrate gear catalog")
		}
	}
	return &gormRepository{db: cfg.DB}, nil
}

func (r *gormRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("piece ID cannot be empty")
	}

	var rec pieceRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", input.ID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("gear piece %s not found", input.ID).WithMeta("piece_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get gear piece %s", input.ID)
	}
	return &GetOutput{Piece: rec.toEntity()}, nil
}

func (r *gormRepository) ListByIDs(ctx context.Context, input ListByIDsInput) (*ListByIDsOutput, error) {
	pieces := make(map[string]*gear.Piece, len(input.IDs))
	if len(input.IDs) == 0 {
		return &ListByIDsOutput{Pieces: pieces}, nil
	}

	var recs []pieceRecord
	if err := r.db.WithContext(ctx).Where("id IN ?", input.IDs).Find(&recs).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %d gear pieces", len(input.IDs))
	}
	for i := range recs {
		pieces[recs[i].ID] = recs[i].toEntity()
	}
	return &ListByIDsOutput{Pieces: pieces}, nil
}

func (r *gormRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	q := r.db.WithContext(ctx).Order("slot").Order("item_level DESC").Order("id")
	if input.Slot != "" {
		if !input.Slot.IsValid() {
			return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
		}
		q = q.Where("slot = ?", string(input.Slot))
	}

	var recs []pieceRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list gear pieces")
	}

	pieces := make([]*gear.Piece, len(recs))
	for i := range recs {
		pieces[i] = recs[i].toEntity()
	}
	return &ListOutput{Pieces: pieces}, nil
}

func (r *gormRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if len(input.Pieces) == 0 {
		return &UpsertOutput{}, nil
	}

	recs := make([]pieceRecord, 0, len(input.Pieces))
	for i, p := range input.Pieces {
		if err := validatePiece(p); err != nil {
			return nil, errors.Wrapf(err, "piece %d is invalid", i)
		}
		recs = append(recs, recordFrom(p))
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "slot", "tier", "item_level", "upgrade_cost", "updated_at"}),
	}).Create(&recs).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upsert %d gear pieces", len(recs))
	}
	return &UpsertOutput{Count: len(recs)}, nil
}

func validatePiece(p *gear.Piece) error {
	if p == nil {
		return errors.InvalidArgument("piece cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", p.ID, vb)
	errors.ValidateRequired("name", p.Name, vb)
	if !p.Slot.IsValid() {
		vb.Fieldf("slot", "unknown slot %q", p.Slot)
	}
	if !p.Tier.IsValid() {
		vb.Fieldf("tier", "unknown tier %q", p.Tier)
	}
	if p.ItemLevel < 0 {
		vb.Field("item_level", "must not be negative")
	}
	if p.UpgradeCost < 0 {
		vb.Field("upgrade_cost", "must not be negative")
	}
	return vb.Build()
}
