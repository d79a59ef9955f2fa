package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/clock"
	docnumberdomain "github.com/chonx19/act-r/internal/docnumber/domain"
	docnumberrepo "github.com/chonx19/act-r/internal/docnumber/repository"
	docnumberservice "github.com/chonx19/act-r/internal/docnumber/service"
	"github.com/chonx19/act-r/internal/inventory/domain"
	"github.com/chonx19/act-r/internal/inventory/repository"
	"github.com/chonx19/act-r/internal/observability/metrics"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.StockLevel{},
		&domain.StockTransaction{},
		&docnumberdomain.DocumentSequence{},
	))
	return db
}

func newService(t *testing.T, db *gorm.DB, clk clock.Clock) domain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	log := zap.NewNop()

	numbers := docnumberservice.New(docnumberservice.Params{
		DB:   db,
		Log:  log,
		Repo: docnumberrepo.Provide(),
	})

	return New(Params{
		DB:      db,
		Log:     log,
		GenID:   node,
		Clock:   clk,
		Repo:    repository.Provide(),
		Numbers: numbers,
		Metrics: metrics.New(),
	})
}

func TestRecordTransaction_InOutFlow(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2025, 12, 31, 10, 0, 0, 0, time.UTC))
	svc := newService(t, db, clk)
	ctx := context.Background()

	node, _ := snowflake.NewNode(2)
	productID := node.Generate().String()

	in, err := svc.RecordTransaction(ctx, domain.RecordTransactionRequest{
		Type:      domain.TransactionIn,
		ProductID: productID,
		Quantity:  50,
	})
	require.NoError(t, err)
	assert.Equal(t, "ACTIN25-12-31-001", in.DocumentNumber)

	level, err := svc.StockLevel(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), level)

	// Withdrawing more than on hand is rejected and must leave the level,
	// the ledger, and the document counter untouched.
	_, err = svc.RecordTransaction(ctx, domain.RecordTransactionRequest{
		Type:      domain.TransactionOut,
		ProductID: productID,
		Quantity:  60,
	})
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(50), insufficient.Available)
	assert.Equal(t, "insufficient stock (available: 50)", insufficient.Error())

	level, err = svc.StockLevel(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), level)

	records, err := svc.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// The rejected OUT rolled its counter back, so the first successful
	// OUT still gets run 001.
	out, err := svc.RecordTransaction(ctx, domain.RecordTransactionRequest{
		Type:      domain.TransactionOut,
		ProductID: productID,
		Quantity:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, "ACTOUT25-12-31-001", out.DocumentNumber)

	level, err = svc.StockLevel(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), level)
}

func TestRecordTransaction_AdjAddsQuantity(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	svc := newService(t, db, clk)
	ctx := context.Background()

	node, _ := snowflake.NewNode(2)
	productID := node.Generate().String()

	adj, err := svc.RecordTransaction(ctx, domain.RecordTransactionRequest{
		Type:      domain.TransactionAdj,
		ProductID: productID,
		Quantity:  7,
		Notes:     "stocktake correction",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACTADJ25-06-01-001", adj.DocumentNumber)

	level, err := svc.StockLevel(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), level)
}

func TestRecordTransaction_Validation(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	svc := newService(t, db, clk)
	ctx := context.Background()

	node, _ := snowflake.NewNode(2)
	productID := node.Generate().String()

	_, err := svc.RecordTransaction(ctx, domain.RecordTransactionRequest{
		Type:      "TRANSFER",
		ProductID: productID,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	_, err = svc.RecordTransaction(ctx, domain.RecordTransactionRequest{
		Type:      domain.TransactionIn,
		ProductID: productID,
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.RecordTransaction(ctx, domain.RecordTransactionRequest{
		Type:      domain.TransactionIn,
		ProductID: "not-a-number",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)
}

func TestLedgerReplayMatchesLevel(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	svc := newService(t, db, clk)
	ctx := context.Background()

	node, _ := snowflake.NewNode(2)
	productID := node.Generate().String()

	moves := []struct {
		typ domain.TransactionType
		qty int64
	}{
		{domain.TransactionIn, 100},
		{domain.TransactionOut, 30},
		{domain.TransactionAdj, 5},
		{domain.TransactionOut, 25},
	}
	for _, m := range moves {
		_, err := svc.RecordTransaction(ctx, domain.RecordTransactionRequest{
			Type:      m.typ,
			ProductID: productID,
			Quantity:  m.qty,
		})
		require.NoError(t, err)
	}

	records, err := svc.Transactions(ctx)
	require.NoError(t, err)
	var replayed int64
	for _, r := range records {
		if r.Type == domain.TransactionOut {
			replayed -= r.Quantity
		} else {
			replayed += r.Quantity
		}
	}

	level, err := svc.StockLevel(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, replayed, level)
	assert.Equal(t, int64(50), level)
}

func TestStockLevel_UnknownProductIsZero(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	svc := newService(t, db, clk)

	node, _ := snowflake.NewNode(2)
	level, err := svc.StockLevel(context.Background(), node.Generate().String())
	require.NoError(t, err)
	assert.Equal(t, int64(0), level)
}
