package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/accesscontrol"
	"github.com/chonx19/act-r/internal/backup"
	"github.com/chonx19/act-r/internal/clock"
	"github.com/chonx19/act-r/internal/config"
	"github.com/chonx19/act-r/internal/customer"
	"github.com/chonx19/act-r/internal/dashboard"
	"github.com/chonx19/act-r/internal/docnumber"
	"github.com/chonx19/act-r/internal/history"
	"github.com/chonx19/act-r/internal/inventory"
	"github.com/chonx19/act-r/internal/message"
	"github.com/chonx19/act-r/internal/migration"
	"github.com/chonx19/act-r/internal/observability"
	"github.com/chonx19/act-r/internal/product"
	"github.com/chonx19/act-r/internal/purchaseorder"
	"github.com/chonx19/act-r/internal/server"
	"github.com/chonx19/act-r/internal/user"
	"github.com/chonx19/act-r/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// Functional domains
		docnumber.Module,
		inventory.Module,
		product.Module,
		customer.Module,
		purchaseorder.Module,
		history.Module,
		dashboard.Module,
		message.Module,
		accesscontrol.Module,
		user.Module,
		backup.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
