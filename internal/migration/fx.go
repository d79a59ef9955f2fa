package migration

import (
	accessdomain "github.com/chonx19/act-r/internal/accesscontrol/domain"
	"github.com/chonx19/act-r/internal/config"
	customerdomain "github.com/chonx19/act-r/internal/customer/domain"
	docnumberdomain "github.com/chonx19/act-r/internal/docnumber/domain"
	historydomain "github.com/chonx19/act-r/internal/history/domain"
	inventorydomain "github.com/chonx19/act-r/internal/inventory/domain"
	messagedomain "github.com/chonx19/act-r/internal/message/domain"
	productdomain "github.com/chonx19/act-r/internal/product/domain"
	purchaseorderdomain "github.com/chonx19/act-r/internal/purchaseorder/domain"
	"github.com/chonx19/act-r/internal/seed"
	userdomain "github.com/chonx19/act-r/internal/user/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module migrates the schema on startup so a fresh sqlite file is fully
// usable out of the box, then seeds the default logins when enabled.
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if err := conn.AutoMigrate(
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
		); err != nil {
			return err
		}

		if cfg.SeedDefaultUsers {
			return seed.EnsureDefaultUsers(conn)
		}
		return nil
	}),
)
