package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	accessdomain "github.com/chonx19/act-r/internal/accesscontrol/domain"
	"github.com/chonx19/act-r/internal/clock"
	customerdomain "github.com/chonx19/act-r/internal/customer/domain"
	docnumberdomain "github.com/chonx19/act-r/internal/docnumber/domain"
	historydomain "github.com/chonx19/act-r/internal/history/domain"
	inventorydomain "github.com/chonx19/act-r/internal/inventory/domain"
	messagedomain "github.com/chonx19/act-r/internal/message/domain"
	productdomain "github.com/chonx19/act-r/internal/product/domain"
	purchaseorderdomain "github.com/chonx19/act-r/internal/purchaseorder/domain"
	userdomain "github.com/chonx19/act-r/internal/user/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newFixture(t *testing.T) (*gorm.DB, *Service, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&productdomain.Product{},
		&inventorydomain.StockLevel{},
		&inventorydomain.StockTransaction{},
		&docnumberdomain.DocumentSequence{},
		&purchaseorderdomain.PurchaseOrder{},
		&customerdomain.Customer{},
		&historydomain.CustomerProduct{},
		&userdomain.User{},
		&accessdomain.WhitelistEntry{},
		&accessdomain.ActiveSession{},
		&messagedomain.Message{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)),
	})
	return db, svc, node
}

func TestExportImport_RoundTrip(t *testing.T) {
	db, svc, node := newFixture(t)
	ctx := context.Background()

	productID := node.Generate()
	require.NoError(t, db.Create(&productdomain.Product{
		ID: productID, ProductCode: "V-1", ProductName: "valve", Cost: 2.5,
	}).Error)
	require.NoError(t, db.Create(&inventorydomain.StockLevel{
		ProductID: productID, Quantity: 40,
	}).Error)
	require.NoError(t, db.Create(&userdomain.User{
		ID: node.Generate(), Username: "chana19", PasswordHash: "$2a$10$fakehash", Role: userdomain.RoleAdmin, IsActive: true,
	}).Error)

	bundle, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, BundleVersion, bundle.Version)
	require.Len(t, bundle.Products, 1)
	require.Len(t, bundle.Users, 1)
	// The hash rides along even though the public user JSON hides it.
	assert.Equal(t, "$2a$10$fakehash", bundle.Users[0].PasswordHash)

	payload, err := json.Marshal(bundle)
	require.NoError(t, err)

	// Wreck the data, then restore from the export.
	require.NoError(t, db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&productdomain.Product{}).Error)
	require.NoError(t, db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&userdomain.User{}).Error)

	require.NoError(t, svc.Import(ctx, payload))

	var products []productdomain.Product
	require.NoError(t, db.Find(&products).Error)
	require.Len(t, products, 1)
	assert.Equal(t, "valve", products[0].ProductName)

	var users []userdomain.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "$2a$10$fakehash", users[0].PasswordHash)

	var levels []inventorydomain.StockLevel
	require.NoError(t, db.Find(&levels).Error)
	require.Len(t, levels, 1)
	assert.Equal(t, int64(40), levels[0].Quantity)
}

func TestImport_AbsentCollectionsAreUntouched(t *testing.T) {
	db, svc, node := newFixture(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&messagedomain.Message{
		ID: node.Generate(), Subject: "keep me", Category: messagedomain.CategoryGeneral, CreatedAt: time.Now(),
	}).Error)

	payload := []byte(`{"version":"10","products":[]}`)
	require.NoError(t, svc.Import(ctx, payload))

	var messages []messagedomain.Message
	require.NoError(t, db.Find(&messages).Error)
	assert.Len(t, messages, 1)
}

func TestImport_PresentEmptyCollectionClears(t *testing.T) {
	db, svc, node := newFixture(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&productdomain.Product{
		ID: node.Generate(), ProductCode: "V-1", ProductName: "valve",
	}).Error)

	require.NoError(t, svc.Import(ctx, []byte(`{"products":[]}`)))

	var products []productdomain.Product
	require.NoError(t, db.Find(&products).Error)
	assert.Empty(t, products)
}

func TestImport_MalformedPayloadRejectedWhole(t *testing.T) {
	db, svc, node := newFixture(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&productdomain.Product{
		ID: node.Generate(), ProductCode: "V-1", ProductName: "valve",
	}).Error)

	err := svc.Import(ctx, []byte(`not json`))
	assert.ErrorIs(t, err, ErrMalformedPayload)

	// One bad collection poisons the whole payload; the good one must
	// not have been applied.
	err = svc.Import(ctx, []byte(`{"products":[],"messages":"nope"}`))
	assert.ErrorIs(t, err, ErrMalformedPayload)

	var products []productdomain.Product
	require.NoError(t, db.Find(&products).Error)
	assert.Len(t, products, 1)
}
