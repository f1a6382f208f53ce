// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearcatalog"
	gearcatalogmock "github.com/KirkDiggler/raid-planner/internal/repositories/gearcatalog/mock"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearset"
	gearsetmock "github.com/KirkDiggler/raid-planner/internal/repositories/gearset/mock"
	"github.com/KirkDiggler/raid-planner/internal/repositories/ledger"
	ledgermock "github.com/KirkDiggler/raid-planner/internal/repositories/ledger/mock"
)

// ExpectCatalogLookups serves every ListByIDs call from a fixed catalog,
// leaving unknown IDs out the way the real repository does
func ExpectCatalogLookups(mockRepo *gearcatalogmock.MockRepository, catalog gear.StaticCatalog) *gomock.Call {
	return mockRepo.EXPECT().
		ListByIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in gearcatalog.ListByIDsInput) (*gearcatalog.ListByIDsOutput, error) {
			pieces := make(map[string]*gear.Piece, len(in.IDs))
			for _, id := range in.IDs {
				if p, ok := catalog.Resolve(id); ok {
					pieces[id] = p
				}
			}
			return &gearcatalog.ListByIDsOutput{Pieces: pieces}, nil
		}).
		AnyTimes()
}

// ExpectGearSetGet sets up a mock expectation for loading one of a member's sets
func ExpectGearSetGet(mockRepo *gearsetmock.MockRepository, set *gear.Set, err error) *gomock.Call {
	call := mockRepo.EXPECT().
		Get(gomock.Any(), gearset.GetInput{MemberID: set.MemberID, GroupID: set.GroupID, Kind: set.Kind})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&gearset.GetOutput{Set: set}, nil)
}

// ExpectGearSetSaveEcho accepts one save and returns the set unchanged
func ExpectGearSetSaveEcho(mockRepo *gearsetmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in gearset.SaveInput) (*gearset.SaveOutput, error) {
			return &gearset.SaveOutput{Set: in.Set}, nil
		})
}

// ExpectLedgerGet sets up a mock expectation for loading a member's ledger
func ExpectLedgerGet(
	mockRepo *ledgermock.MockRepository,
	memberID, groupID string, l *loot.Ledger, err error,
) *gomock.Call {
	call := mockRepo.EXPECT().
		Get(gomock.Any(), ledger.GetInput{MemberID: memberID, GroupID: groupID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&ledger.GetOutput{Ledger: l}, nil)
}

// ExpectLedgerSaveEcho accepts one save and returns the ledger unchanged
func ExpectLedgerSaveEcho(mockRepo *ledgermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in ledger.SaveInput) (*ledger.SaveOutput, error) {
			return &ledger.SaveOutput{Ledger: in.Ledger}, nil
		})
}
