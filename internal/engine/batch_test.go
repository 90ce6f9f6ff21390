package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditMocks "github.com/donaldgifford/dataset-pricer/internal/auditlog/mocks"
	"github.com/donaldgifford/dataset-pricer/internal/store"
	storeMocks "github.com/donaldgifford/dataset-pricer/internal/store/mocks"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

func batchItem(id string, status domain.ItemStatus) *domain.Item {
	item := testItem()
	item.ID = id
	item.Status = status
	return item
}

// expectAppliedItem wires the full compute-then-apply path for a published
// item whose current one-time price is $480.
func expectAppliedItem(ms *storeMocks.MockStore, item *domain.Item) {
	snapID := "snap-" + item.ID
	var saved *domain.PricingSnapshot

	ms.EXPECT().GetItem(mock.Anything, item.ID).Return(item, nil)
	ms.EXPECT().GetPurchaseStats(mock.Anything, item.ID, mock.Anything).
		Return(&domain.PurchaseStats{}, nil)
	ms.EXPECT().GetPricePlan(mock.Anything, item.ID, domain.PlanOneTime).
		Return(&domain.PricePlan{ID: "plan-" + item.ID, PriceUSD: decimal.NewFromInt(480)}, nil)
	ms.EXPECT().ListPeerPrices(mock.Anything, mock.Anything, item.ID).Return(nil, nil)
	ms.EXPECT().InsertSnapshot(mock.Anything, mock.MatchedBy(func(s *domain.PricingSnapshot) bool {
		return s.ItemID == item.ID
	})).RunAndReturn(func(_ context.Context, s *domain.PricingSnapshot) error {
		s.ID = snapID
		saved = s
		return nil
	}).Once()
	ms.EXPECT().GetSnapshot(mock.Anything, snapID).
		RunAndReturn(func(context.Context, string) (*domain.PricingSnapshot, error) {
			return saved, nil
		}).Once()
	ms.EXPECT().ApplyPrice(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(applyWithGuard(decimal.NewFromInt(480), nil)).Once()
}

func TestRunAutoPricingForAll_OutcomesAreIsolated(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ma := auditMocks.NewMockSink(t)
	eng := newTestEngine(ms, ma)

	ms.EXPECT().ListAutoPricingItemIDs(mock.Anything).
		Return([]string{"item-a", "item-b", "item-c", "item-d"}, nil).Once()

	expectAppliedItem(ms, batchItem("item-a", domain.ItemPublished))
	ms.EXPECT().GetItem(mock.Anything, "item-b").Return(batchItem("item-b", domain.ItemDraft), nil).Once()
	ms.EXPECT().GetItem(mock.Anything, "item-c").Return(nil, errors.New("connection refused")).Once()
	expectAppliedItem(ms, batchItem("item-d", domain.ItemPublished))

	ma.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Times(2)

	outcomes, err := eng.RunAutoPricingForAll(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	assert.Equal(t, domain.RepriceOutcome{ItemID: "item-a", Status: domain.OutcomeApplied}, outcomes[0])
	assert.Equal(t, domain.RepriceOutcome{
		ItemID: "item-b", Status: domain.OutcomeSkipped, Detail: "not published",
	}, outcomes[1])
	assert.Equal(t, domain.OutcomeError, outcomes[2].Status)
	assert.Contains(t, outcomes[2].Detail, "connection refused")
	assert.Equal(t, domain.OutcomeApplied, outcomes[3].Status)

	assert.Equal(t, domain.RepriceSummary{Applied: 2, Skipped: 1, Errors: 1}, domain.Summarize(outcomes))
}

func TestRunAutoPricingForAll_AppliesAsSystemActor(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ma := auditMocks.NewMockSink(t)
	eng := newTestEngine(ms, ma)

	ms.EXPECT().ListAutoPricingItemIDs(mock.Anything).Return([]string{"item-a"}, nil).Once()
	expectAppliedItem(ms, batchItem("item-a", domain.ItemPublished))

	ma.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := eng.RunAutoPricingForAll(context.Background(), "")
	require.NoError(t, err)

	ms.AssertCalled(t, "ApplyPrice", mock.Anything, mock.MatchedBy(func(r *store.ApplyRequest) bool {
		return r.ActorID == SystemActor && r.Reason == domain.ReasonAutoReprice
	}), mock.Anything)
}

func TestRunAutoPricingForAll_GuardrailIsErrorOutcome(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, auditMocks.NewMockSink(t))

	item := batchItem("item-a", domain.ItemPublished)
	cfg := domain.DefaultPricingConfig(item.ID)
	cfg.MaxPriceUSD = decimal.NewFromInt(100)

	var saved *domain.PricingSnapshot
	ms.EXPECT().ListAutoPricingItemIDs(mock.Anything).Return([]string{item.ID}, nil).Once()
	ms.EXPECT().GetItem(mock.Anything, item.ID).Return(item, nil)
	ms.EXPECT().GetPurchaseStats(mock.Anything, item.ID, mock.Anything).Return(&domain.PurchaseStats{}, nil)
	ms.EXPECT().GetPricePlan(mock.Anything, item.ID, domain.PlanOneTime).
		Return(&domain.PricePlan{PriceUSD: decimal.NewFromInt(480)}, nil)
	ms.EXPECT().ListPeerPrices(mock.Anything, mock.Anything, item.ID).Return(nil, nil)
	ms.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, s *domain.PricingSnapshot) error {
			s.ID = "snap-a"
			saved = s
			return nil
		}).Once()
	ms.EXPECT().GetSnapshot(mock.Anything, "snap-a").
		RunAndReturn(func(context.Context, string) (*domain.PricingSnapshot, error) {
			return saved, nil
		}).Once()
	ms.EXPECT().ApplyPrice(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(applyWithGuard(decimal.NewFromInt(480), &cfg)).Once()

	outcomes, err := eng.RunAutoPricingForAll(context.Background(), SystemActor)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.OutcomeError, outcomes[0].Status)
	assert.Contains(t, outcomes[0].Detail, "exceeds seller maximum")
}

func TestRunAutoPricingForAll_RecoversPanics(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, auditMocks.NewMockSink(t))

	ms.EXPECT().ListAutoPricingItemIDs(mock.Anything).Return([]string{"item-x", "item-b"}, nil).Once()
	ms.EXPECT().GetItem(mock.Anything, "item-x").
		RunAndReturn(func(context.Context, string) (*domain.Item, error) {
			panic("boom")
		}).Once()
	ms.EXPECT().GetItem(mock.Anything, "item-b").Return(batchItem("item-b", domain.ItemArchived), nil).Once()

	outcomes, err := eng.RunAutoPricingForAll(context.Background(), SystemActor)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, domain.RepriceOutcome{ItemID: "item-x", Status: domain.OutcomeError, Detail: "panic: boom"}, outcomes[0])
	assert.Equal(t, domain.OutcomeSkipped, outcomes[1].Status)
}

func TestRunAutoPricingForAll_ListError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, auditMocks.NewMockSink(t))

	ms.EXPECT().ListAutoPricingItemIDs(mock.Anything).Return(nil, errors.New("db down")).Once()

	outcomes, err := eng.RunAutoPricingForAll(context.Background(), SystemActor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing auto-pricing items")
	assert.Nil(t, outcomes)
}

func TestRunAutoPricingForAll_Empty(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, auditMocks.NewMockSink(t))

	ms.EXPECT().ListAutoPricingItemIDs(mock.Anything).Return(nil, nil).Once()

	outcomes, err := eng.RunAutoPricingForAll(context.Background(), SystemActor)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestRunAutoPricingForAll_CancelledContext(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := NewEngine(ms, nil, WithLogger(quietLogger()), WithRepriceRate(1, 1))

	ms.EXPECT().ListAutoPricingItemIDs(mock.Anything).Return([]string{"item-a"}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := eng.RunAutoPricingForAll(ctx, SystemActor)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outcomes)
}
