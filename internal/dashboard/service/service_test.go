package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/dashboard/domain"
	"github.com/chonx19/act-r/internal/dashboard/repository"
	inventorydomain "github.com/chonx19/act-r/internal/inventory/domain"
	messagedomain "github.com/chonx19/act-r/internal/message/domain"
	productdomain "github.com/chonx19/act-r/internal/product/domain"
	purchaseorderdomain "github.com/chonx19/act-r/internal/purchaseorder/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newFixture(t *testing.T) (*gorm.DB, domain.Service, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&productdomain.Product{},
		&inventorydomain.StockLevel{},
		&purchaseorderdomain.PurchaseOrder{},
		&messagedomain.Message{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return db, svc, node
}

func TestStats(t *testing.T) {
	db, svc, node := newFixture(t)
	ctx := context.Background()

	p1, p2, p3 := node.Generate(), node.Generate(), node.Generate()
	require.NoError(t, db.Create(&[]productdomain.Product{
		{ID: p1, ProductCode: "V-1", ProductName: "valve", Cost: 2.5, MinStockLevel: 15},
		{ID: p2, ProductCode: "G-1", ProductName: "gasket", Cost: 1, MinStockLevel: 5},
		{ID: p3, ProductCode: "W-1", ProductName: "washer", Cost: 0.1, MinStockLevel: 1},
	}).Error)
	require.NoError(t, db.Create(&[]inventorydomain.StockLevel{
		{ProductID: p1, Quantity: 10},
		{ProductID: p2, Quantity: 20},
	}).Error)
	require.NoError(t, db.Create(&[]purchaseorderdomain.PurchaseOrder{
		{ID: node.Generate(), Title: "a", CustomerName: "x", Status: purchaseorderdomain.StatusRFQ},
		{ID: node.Generate(), Title: "b", CustomerName: "x", Status: purchaseorderdomain.StatusInProgress},
		{ID: node.Generate(), Title: "c", CustomerName: "x", Status: purchaseorderdomain.StatusDone},
	}).Error)
	require.NoError(t, db.Create(&[]messagedomain.Message{
		{ID: node.Generate(), Subject: "hi", Category: messagedomain.CategoryGeneral, IsRead: false, CreatedAt: time.Now()},
		{ID: node.Generate(), Subject: "yo", Category: messagedomain.CategoryGeneral, IsRead: true, CreatedAt: time.Now()},
	}).Error)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(30), stats.TotalStock)
	assert.InDelta(t, 45.0, stats.TotalValue, 1e-9)
	// valve is under its minimum; washer has no stock row at all.
	assert.Equal(t, int64(2), stats.LowStockCount)
	assert.Equal(t, int64(2), stats.ActiveJobs)
	assert.Equal(t, int64(1), stats.UnreadMessages)
}

func TestStats_EmptyDatabase(t *testing.T) {
	_, svc, _ := newFixture(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{}, stats)
}

func TestMonthlyJobs_BucketsByStartDate(t *testing.T) {
	db, svc, node := newFixture(t)
	ctx := context.Background()

	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]purchaseorderdomain.PurchaseOrder{
		{ID: node.Generate(), Title: "a", CustomerName: "x", Status: purchaseorderdomain.StatusDone, StartDate: &jan, TotalAmount: 100},
		{ID: node.Generate(), Title: "b", CustomerName: "x", Status: purchaseorderdomain.StatusDone, StartDate: &jan, TotalAmount: 50},
		{ID: node.Generate(), Title: "c", CustomerName: "x", Status: purchaseorderdomain.StatusDone, StartDate: &feb, TotalAmount: 70},
		// No start date: bucketed by creation time.
		{ID: node.Generate(), Title: "d", CustomerName: "x", Status: purchaseorderdomain.StatusRFQ, CreatedAt: feb, TotalAmount: 30},
	}).Error)

	months, err := svc.MonthlyJobs(ctx)
	require.NoError(t, err)
	require.Len(t, months, 2)

	assert.Equal(t, 2025, months[0].Year)
	assert.Equal(t, time.January, months[0].Month)
	assert.Equal(t, 2, months[0].Count)
	assert.InDelta(t, 150, months[0].Total, 1e-9)

	assert.Equal(t, time.February, months[1].Month)
	assert.Equal(t, 2, months[1].Count)
	assert.InDelta(t, 100, months[1].Total, 1e-9)
}

func TestMonthlyJobs_KeepsOnlyRecentMonths(t *testing.T) {
	db, svc, node := newFixture(t)
	ctx := context.Background()

	for i := 0; i < domain.MonthlyBucketLimit+3; i++ {
		at := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		require.NoError(t, db.Create(&purchaseorderdomain.PurchaseOrder{
			ID: node.Generate(), Title: "j", CustomerName: "x",
			Status: purchaseorderdomain.StatusDone, StartDate: &at, TotalAmount: 1,
		}).Error)
	}

	months, err := svc.MonthlyJobs(ctx)
	require.NoError(t, err)
	require.Len(t, months, domain.MonthlyBucketLimit)
	// Oldest three buckets fell off the front.
	assert.Equal(t, time.April, months[0].Month)
	assert.Equal(t, 2024, months[0].Year)
}
