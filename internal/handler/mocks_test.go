package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/lootbox"
)

// MockLedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetStatus(ctx context.Context, walletAddress string) (*domain.GenerationStatus, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationStatus), args.Error(1)
}

func (m *MockLedgerService) RecordGeneration(ctx context.Context, walletAddress string, wasFree bool) error {
	args := m.Called(ctx, walletAddress, wasFree)
	return args.Error(0)
}

// MockLootboxService
type MockLootboxService struct {
	mock.Mock
}

func (m *MockLootboxService) OpenBox(ctx context.Context, req lootbox.OpenRequest) (*lootbox.OpenResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lootbox.OpenResult), args.Error(1)
}

func (m *MockLootboxService) PreviewBox(ctx context.Context) (*lootbox.BoxPreview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lootbox.BoxPreview), args.Error(1)
}

// MockMarketService
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) Listings(ctx context.Context) []domain.LootItem {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.LootItem)
}

func (m *MockMarketService) List(ctx context.Context, item domain.LootItem, askingPrice *int) (int, error) {
	args := m.Called(ctx, item, askingPrice)
	return args.Int(0), args.Error(1)
}

func (m *MockMarketService) Buy(ctx context.Context, itemID, buyerAddress string) (*domain.LootItem, error) {
	args := m.Called(ctx, itemID, buyerAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LootItem), args.Error(1)
}

// MockCollectibleReader
type MockCollectibleReader struct {
	mock.Mock
}

func (m *MockCollectibleReader) GetByID(ctx context.Context, nftID string) (*domain.LootItem, error) {
	args := m.Called(ctx, nftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LootItem), args.Error(1)
}

func (m *MockCollectibleReader) ListByCreator(ctx context.Context, creatorAddress string) ([]domain.LootItem, error) {
	args := m.Called(ctx, creatorAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LootItem), args.Error(1)
}
