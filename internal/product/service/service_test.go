package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/clock"
	"github.com/chonx19/act-r/internal/product/domain"
	"github.com/chonx19/act-r/internal/product/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Product{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	clk := clock.NewFakeClock(time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clk,
		Repo:  repository.Provide(),
	})
	return svc, clk
}

func TestSave_StampsTimesFromClock(t *testing.T) {
	svc, clk := newService(t)
	ctx := context.Background()

	created, err := svc.Save(ctx, domain.Product{
		ProductCode: "V-1",
		ProductName: "Ball Valve",
		Unit:        "pcs",
		Cost:        2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, clk.Now(), created.CreatedAt)
	assert.Equal(t, clk.Now(), created.UpdatedAt)

	clk.Advance(time.Hour)
	created.Cost = 3
	updated, err := svc.Save(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, clk.Now(), updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestSave_Validation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Save(context.Background(), domain.Product{ProductCode: "V-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestGetListDelete(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Save(ctx, domain.Product{ProductCode: "V-1", ProductName: "Ball Valve"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ball Valve", got.ProductName)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))
	_, err = svc.Get(ctx, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
