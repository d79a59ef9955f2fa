package server

import (
	"context"
	"net/http"
	"time"

	accessdomain "github.com/chonx19/act-r/internal/accesscontrol/domain"
	"github.com/chonx19/act-r/internal/backup"
	"github.com/chonx19/act-r/internal/config"
	customerdomain "github.com/chonx19/act-r/internal/customer/domain"
	dashboarddomain "github.com/chonx19/act-r/internal/dashboard/domain"
	historydomain "github.com/chonx19/act-r/internal/history/domain"
	inventorydomain "github.com/chonx19/act-r/internal/inventory/domain"
	messagedomain "github.com/chonx19/act-r/internal/message/domain"
	"github.com/chonx19/act-r/internal/observability/logger"
	obsmetrics "github.com/chonx19/act-r/internal/observability/metrics"
	productdomain "github.com/chonx19/act-r/internal/product/domain"
	purchaseorderdomain "github.com/chonx19/act-r/internal/purchaseorder/domain"
	userdomain "github.com/chonx19/act-r/internal/user/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, m *obsmetrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	log    *zap.Logger

	inventorySvc inventorydomain.Service
	productSvc   productdomain.Service
	customerSvc  customerdomain.Service
	orderSvc     purchaseorderdomain.Service
	historySvc   historydomain.Service
	dashboardSvc dashboarddomain.Service
	messageSvc   messagedomain.Service
	accessSvc    accessdomain.Service
	userSvc      userdomain.Service
	backupSvc    *backup.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	InventorySvc inventorydomain.Service
	ProductSvc   productdomain.Service
	CustomerSvc  customerdomain.Service
	OrderSvc     purchaseorderdomain.Service
	HistorySvc   historydomain.Service
	DashboardSvc dashboarddomain.Service
	MessageSvc   messagedomain.Service
	AccessSvc    accessdomain.Service
	UserSvc      userdomain.Service
	BackupSvc    *backup.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log.Named("http.server"),
		inventorySvc: p.InventorySvc,
		productSvc:   p.ProductSvc,
		customerSvc:  p.CustomerSvc,
		orderSvc:     p.OrderSvc,
		historySvc:   p.HistorySvc,
		dashboardSvc: p.DashboardSvc,
		messageSvc:   p.MessageSvc,
		accessSvc:    p.AccessSvc,
		userSvc:      p.UserSvc,
		backupSvc:    p.BackupSvc,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	api.POST("/transactions", s.createTransaction)
	api.GET("/transactions", s.listTransactions)
	api.GET("/stock", s.listStock)
	api.GET("/stock/:productId", s.getStock)

	api.GET("/products", s.listProducts)
	api.POST("/products", s.saveProduct)
	api.GET("/products/:id", s.getProduct)
	api.DELETE("/products/:id", s.deleteProduct)

	api.GET("/customers", s.listCustomers)
	api.POST("/customers", s.saveCustomer)
	api.GET("/customers/history", s.searchCustomerHistory)
	api.GET("/customers/:id", s.getCustomer)
	api.DELETE("/customers/:id", s.deleteCustomer)

	api.GET("/purchase-orders", s.listPurchaseOrders)
	api.POST("/purchase-orders", s.savePurchaseOrder)
	api.GET("/purchase-orders/:id", s.getPurchaseOrder)
	api.PATCH("/purchase-orders/:id/status", s.updatePurchaseOrderStatus)
	api.DELETE("/purchase-orders/:id", s.deletePurchaseOrder)

	api.GET("/history", s.listHistory)
	api.POST("/history/import", s.importHistory)
	api.POST("/history/import/xlsx", s.importHistoryXLSX)

	api.GET("/suggestions", s.listSuggestions)

	api.GET("/dashboard", s.getDashboard)

	api.GET("/messages", s.listMessages)
	api.POST("/messages", s.sendMessage)
	api.POST("/messages/:id/read", s.markMessageRead)

	api.POST("/auth/login", s.login)
	api.GET("/users", s.listUsers)
	api.POST("/users", s.saveUser)
	api.DELETE("/users/:id", s.deleteUser)

	api.GET("/whitelist", s.listWhitelist)
	api.POST("/whitelist", s.addWhitelistEntry)
	api.DELETE("/whitelist/:id", s.removeWhitelistEntry)
	api.GET("/sessions", s.listSessions)

	api.GET("/backup", s.exportBackup)
	api.POST("/backup", s.importBackup)
}
