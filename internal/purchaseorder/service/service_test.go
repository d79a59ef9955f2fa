package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/clock"
	customerdomain "github.com/chonx19/act-r/internal/customer/domain"
	customerrepo "github.com/chonx19/act-r/internal/customer/repository"
	customerservice "github.com/chonx19/act-r/internal/customer/service"
	docnumberdomain "github.com/chonx19/act-r/internal/docnumber/domain"
	docnumberrepo "github.com/chonx19/act-r/internal/docnumber/repository"
	docnumberservice "github.com/chonx19/act-r/internal/docnumber/service"
	historydomain "github.com/chonx19/act-r/internal/history/domain"
	historyrepo "github.com/chonx19/act-r/internal/history/repository"
	historyservice "github.com/chonx19/act-r/internal/history/service"
	"github.com/chonx19/act-r/internal/observability/metrics"
	"github.com/chonx19/act-r/internal/purchaseorder/domain"
	"github.com/chonx19/act-r/internal/purchaseorder/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	clk       *clock.FakeClock
	svc       domain.Service
	customers customerdomain.Service
	history   historydomain.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.PurchaseOrder{},
		&customerdomain.Customer{},
		&historydomain.CustomerProduct{},
		&docnumberdomain.DocumentSequence{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	log := zap.NewNop()
	clk := clock.NewFakeClock(time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC))

	customers := customerservice.New(customerservice.Params{
		DB:    db,
		Log:   log,
		GenID: node,
		Clock: clk,
		Repo:  customerrepo.Provide(),
	})
	history := historyservice.New(historyservice.Params{
		DB:    db,
		Log:   log,
		GenID: node,
		Clock: clk,
		Repo:  historyrepo.Provide(),
	})
	numbers := docnumberservice.New(docnumberservice.Params{
		DB:   db,
		Log:  log,
		Repo: docnumberrepo.Provide(),
	})

	svc := New(Params{
		DB:        db,
		Log:       log,
		GenID:     node,
		Clock:     clk,
		Repo:      repository.Provide(),
		Numbers:   numbers,
		Customers: customers,
		History:   history,
		Metrics:   metrics.New(),
	})

	return &fixture{db: db, clk: clk, svc: svc, customers: customers, history: history}
}

func TestSave_AssignsQuoteNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.customers.Save(ctx, customerdomain.Customer{
		CompanyName: "Acme Industrial",
		Code:        "acme",
	})
	require.NoError(t, err)

	first, err := f.svc.Save(ctx, domain.PurchaseOrder{
		Title:        "Pump overhaul",
		CustomerName: "Acme Industrial",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACT25-12-001 ACME", first.PONumber)
	assert.Equal(t, domain.StatusRFQ, first.Status)

	second, err := f.svc.Save(ctx, domain.PurchaseOrder{
		Title:        "Valve replacement",
		CustomerName: "Acme Industrial",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACT25-12-002 ACME", second.PONumber)
}

func TestSave_UnknownCustomerFallsBackToDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	po, err := f.svc.Save(ctx, domain.PurchaseOrder{
		Title:        "Walk-in job",
		CustomerName: "Somebody New",
	})
	require.NoError(t, err)
	assert.Equal(t, "DRAFT", po.PONumber)
}

func TestSave_CustomerWithoutCodeFallsBackToDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.customers.Save(ctx, customerdomain.Customer{CompanyName: "No Code Co"})
	require.NoError(t, err)

	po, err := f.svc.Save(ctx, domain.PurchaseOrder{
		Title:        "Job",
		CustomerName: "No Code Co",
	})
	require.NoError(t, err)
	assert.Equal(t, "DRAFT", po.PONumber)
}

func TestSave_KeepsUserProvidedNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	po, err := f.svc.Save(ctx, domain.PurchaseOrder{
		Title:        "Manual ref",
		CustomerName: "Acme Industrial",
		PONumber:     "CUSTOM-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM-42", po.PONumber)
}

func TestSave_ComputesTotalsFromActiveLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	po, err := f.svc.Save(ctx, domain.PurchaseOrder{
		Title:        "Quote",
		CustomerName: "Acme Industrial",
		Discount:     20,
		Items: []domain.Item{
			{ID: "1", Name: "valve", Quantity: 10, UnitPrice: 15, IsActive: true},
			{ID: "2", Name: "gasket", Quantity: 5, UnitPrice: 10, IsActive: true},
			{ID: "3", Name: "obsolete", Quantity: 99, UnitPrice: 99, IsActive: false},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 12.6, po.VAT, 1e-9)
	assert.InDelta(t, 192.6, po.TotalAmount, 1e-9)
	assert.InDelta(t, 150, po.Items[0].Amount, 1e-9)
	assert.InDelta(t, 50, po.Items[1].Amount, 1e-9)
}

func TestSave_SyncsHistoryIdempotently(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	po, err := f.svc.Save(ctx, domain.PurchaseOrder{
		Title:        "Quote",
		CustomerName: "Acme Industrial",
		Items: []domain.Item{
			{ID: "1", Name: "valve", Quantity: 10, UnitPrice: 15, IsActive: true},
			{ID: "2", Name: "obsolete", Quantity: 1, UnitPrice: 1, IsActive: false},
		},
	})
	require.NoError(t, err)

	rows, err := f.history.Search(ctx, "Acme Industrial", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "valve", rows[0].ProductName)
	assert.Equal(t, float64(15), rows[0].Price)

	// Saving again replaces the rows instead of stacking duplicates.
	po.Items[0].UnitPrice = 18
	_, err = f.svc.Save(ctx, po)
	require.NoError(t, err)

	rows, err = f.history.Search(ctx, "Acme Industrial", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(18), rows[0].Price)
}

func TestSave_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Save(ctx, domain.PurchaseOrder{CustomerName: "Acme"})
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)

	_, err = f.svc.Save(ctx, domain.PurchaseOrder{Title: "Job"})
	assert.ErrorIs(t, err, domain.ErrInvalidCustomerName)

	_, err = f.svc.Save(ctx, domain.PurchaseOrder{Title: "Job", CustomerName: "Acme", Status: "LIMBO"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdateStatus_StampsAndClearsDeletedAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	po, err := f.svc.Save(ctx, domain.PurchaseOrder{Title: "Job", CustomerName: "Acme"})
	require.NoError(t, err)

	cancelled, err := f.svc.UpdateStatus(ctx, po.ID.String(), domain.StatusCancelled)
	require.NoError(t, err)
	require.NotNil(t, cancelled.DeletedAt)
	assert.Equal(t, f.clk.Now(), cancelled.DeletedAt.UTC())

	restored, err := f.svc.UpdateStatus(ctx, po.ID.String(), domain.StatusInProgress)
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)
}

func TestRetention_PrunesOnlyExpiredCancelledOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	po, err := f.svc.Save(ctx, domain.PurchaseOrder{Title: "Doomed", CustomerName: "Acme"})
	require.NoError(t, err)
	keeper, err := f.svc.Save(ctx, domain.PurchaseOrder{Title: "Keeper", CustomerName: "Acme"})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, po.ID.String(), domain.StatusCancelled)
	require.NoError(t, err)

	// 29 days in, the cancelled order is still inside the window.
	f.clk.Advance(29 * 24 * time.Hour)
	orders, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	// Past 30 days it is swept; the active order survives.
	f.clk.Advance(2 * 24 * time.Hour)
	orders, err = f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, keeper.ID, orders[0].ID)

	_, err = f.svc.Get(ctx, po.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRetention_RestoreExemptsFromSweep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	po, err := f.svc.Save(ctx, domain.PurchaseOrder{Title: "Back from the dead", CustomerName: "Acme"})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, po.ID.String(), domain.StatusCancelled)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(ctx, po.ID.String(), domain.StatusRFQ)
	require.NoError(t, err)

	f.clk.Advance(60 * 24 * time.Hour)
	pruned, err := f.svc.PruneExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, pruned)

	_, err = f.svc.Get(ctx, po.ID.String())
	assert.NoError(t, err)
}

func TestDelete_KeepsHistoryRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	po, err := f.svc.Save(ctx, domain.PurchaseOrder{
		Title:        "Quote",
		CustomerName: "Acme Industrial",
		Items: []domain.Item{
			{ID: "1", Name: "valve", Quantity: 1, UnitPrice: 15, IsActive: true},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, po.ID.String()))

	_, err = f.svc.Get(ctx, po.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rows, err := f.history.Search(ctx, "Acme Industrial", "")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
