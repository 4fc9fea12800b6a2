package router

import (
	"transaction-ledger/internal/config"
	"transaction-ledger/internal/handler"
	"transaction-ledger/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, middleware and routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// only the configured origins may call the API
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	txHandler := handler.NewTransactionHandler(db, cfg.App.PageSize)
	// gin's trailing-slash redirect also serves POST /transactions/
	r.POST("/transactions", txHandler.CreateTransaction)
	r.GET("/transactions", txHandler.ListTransactions)

	exportHandler := handler.NewExportHandler(db)
	r.GET("/transactions/export/csv", exportHandler.ExportCSV)
	r.GET("/transactions/export/xlsx", exportHandler.ExportXLSX)

	return r
}
