package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

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
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BundleVersion tags exported bundles; bumping it resets seed data on the
// next release, mirroring the storage-key versioning of earlier builds.
const BundleVersion = "10"

var ErrMalformedPayload = errors.New("malformed backup payload")

// Bundle is the full dataset as one JSON document, one field per
// collection. Keys absent from an imported bundle are left untouched.
type Bundle struct {
	Version          string                              `json:"version"`
	ExportedAt       time.Time                           `json:"exported_at"`
	Products         []productdomain.Product             `json:"products"`
	Stock            []inventorydomain.StockLevel        `json:"stock"`
	Transactions     []inventorydomain.StockTransaction  `json:"transactions"`
	PurchaseOrders   []purchaseorderdomain.PurchaseOrder `json:"purchase_orders"`
	Customers        []customerdomain.Customer           `json:"customers"`
	CustomerProducts []historydomain.CustomerProduct     `json:"customer_products"`
	Users            []userRecord                        `json:"users"`
	Sessions         []accessdomain.ActiveSession        `json:"sessions"`
	Whitelist        []accessdomain.WhitelistEntry       `json:"ip_whitelist"`
	Messages         []messagedomain.Message             `json:"messages"`
	Sequences        []docnumberdomain.DocumentSequence  `json:"document_sequences"`
}

// userRecord carries the password hash the public user JSON hides; a
// restored backup must keep logins working.
type userRecord struct {
	userdomain.User
	PasswordHash string `json:"password_hash"`
}

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
}

func New(p Params) *Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("backup.service"),
		clock: p.Clock,
	}
}

func (s *Service) Export(ctx context.Context) (Bundle, error) {
	bundle := Bundle{
		Version:    BundleVersion,
		ExportedAt: s.clock.Now(),
	}

	db := s.db.WithContext(ctx)
	for _, dest := range []interface{}{
		&bundle.Products,
		&bundle.Stock,
		&bundle.Transactions,
		&bundle.PurchaseOrders,
		&bundle.Customers,
		&bundle.CustomerProducts,
		&bundle.Sessions,
		&bundle.Whitelist,
		&bundle.Messages,
		&bundle.Sequences,
	} {
		if err := db.Find(dest).Error; err != nil {
			return Bundle{}, err
		}
	}

	var users []userdomain.User
	if err := db.Find(&users).Error; err != nil {
		return Bundle{}, err
	}
	bundle.Users = make([]userRecord, 0, len(users))
	for _, u := range users {
		bundle.Users = append(bundle.Users, userRecord{User: u, PasswordHash: u.PasswordHash})
	}

	return bundle, nil
}

// Import replaces every collection present in the payload and leaves the
// rest alone. A payload that fails to parse is rejected whole.
func (s *Service) Import(ctx context.Context, payload []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	type collection struct {
		key   string
		model interface{}
		rows  interface{}
	}
	collections := []collection{
		{"products", &productdomain.Product{}, &[]productdomain.Product{}},
		{"stock", &inventorydomain.StockLevel{}, &[]inventorydomain.StockLevel{}},
		{"transactions", &inventorydomain.StockTransaction{}, &[]inventorydomain.StockTransaction{}},
		{"purchase_orders", &purchaseorderdomain.PurchaseOrder{}, &[]purchaseorderdomain.PurchaseOrder{}},
		{"customers", &customerdomain.Customer{}, &[]customerdomain.Customer{}},
		{"customer_products", &historydomain.CustomerProduct{}, &[]historydomain.CustomerProduct{}},
		{"sessions", &accessdomain.ActiveSession{}, &[]accessdomain.ActiveSession{}},
		{"ip_whitelist", &accessdomain.WhitelistEntry{}, &[]accessdomain.WhitelistEntry{}},
		{"messages", &messagedomain.Message{}, &[]messagedomain.Message{}},
		{"document_sequences", &docnumberdomain.DocumentSequence{}, &[]docnumberdomain.DocumentSequence{}},
	}

	// Parse everything up front so a bad collection rejects the whole
	// import before any write happens.
	present := make([]collection, 0, len(collections))
	for _, c := range collections {
		blob, ok := raw[c.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(blob, c.rows); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedPayload, c.key, err)
		}
		present = append(present, c)
	}

	var users []userdomain.User
	importUsers := false
	if blob, ok := raw["users"]; ok {
		var records []userRecord
		if err := json.Unmarshal(blob, &records); err != nil {
			return fmt.Errorf("%w: users: %v", ErrMalformedPayload, err)
		}
		for _, record := range records {
			u := record.User
			u.PasswordHash = record.PasswordHash
			users = append(users, u)
		}
		importUsers = true
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range present {
			if err := replaceCollection(tx, c.model, c.rows); err != nil {
				return fmt.Errorf("import %s: %w", c.key, err)
			}
		}
		if importUsers {
			if err := replaceCollection(tx, &userdomain.User{}, &users); err != nil {
				return fmt.Errorf("import users: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("backup imported", zap.Int("collections", len(present)))
	return nil
}

func replaceCollection(tx *gorm.DB, model, rows interface{}) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
		return err
	}
	if isEmptySlice(rows) {
		return nil
	}
	return tx.Create(rows).Error
}

func isEmptySlice(rows interface{}) bool {
	data, err := json.Marshal(rows)
	if err != nil {
		return true
	}
	return string(data) == "[]" || string(data) == "null"
}
