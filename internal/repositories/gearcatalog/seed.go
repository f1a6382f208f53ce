package gearcatalog

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

type seedFile struct {
	Pieces []seedPiece `yaml:"pieces"`
}

type seedPiece struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Slot        string `yaml:"slot"`
	Tier        string `yaml:"tier"`
	ItemLevel   int    `yaml:"item_level"`
	UpgradeCost int    `yaml:"upgrade_cost"`
}

// ParseSeed decodes a YAML document with a top-level pieces list
func ParseSeed(raw []byte) ([]*gear.Piece, error) {
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog seed")
	}

	pieces := make([]*gear.Piece, 0, len(doc.Pieces))
	for i, p := range doc.Pieces {
		piece := &gear.Piece{
			ID:          p.ID,
			Name:        p.Name,
			Slot:        gear.Slot(p.Slot),
			Tier:        gear.Tier(p.Tier),
			ItemLevel:   p.ItemLevel,
			UpgradeCost: p.UpgradeCost,
		}
		if err := validatePiece(piece); err != nil {
			return nil, errors.Wrapf(err, "seed piece %d", i)
		}
		pieces = append(pieces, piece)
	}
	return pieces, nil
}

// SeedFromFile upserts every piece listed in a YAML seed file
func SeedFromFile(ctx context.Context, repo Repository, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read catalog seed %s", path)
	}
	pieces, err := ParseSeed(raw)
	if err != nil {
		return 0, err
	}
	if len(pieces) == 0 {
		return 0, nil
	}

	out, err := repo.Upsert(ctx, UpsertInput{Pieces: pieces})
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}
