// Package v1 implements the HTTP API of the finance tracker.
package v1

import (
	"time"

	"github.com/finance-tracker/backend/internal/export"
	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/report"
	"github.com/finance-tracker/backend/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller holds the services the HTTP handlers delegate to.
type Controller struct {
	DB           *gorm.DB
	Store        ledger.Store
	Users        *service.Users
	Categories   *service.Categories
	Transactions *service.Transactions
	Reports      *report.Service
	Exports      *export.Service
}

// NewController wires all services to a ledger on db. Every database
// call is bounded by timeout.
func NewController(db *gorm.DB, timeout time.Duration) Controller {
	store := ledger.New(db, timeout)

	return Controller{
		DB:           db,
		Store:        store,
		Users:        service.NewUsers(store),
		Categories:   service.NewCategories(store),
		Transactions: service.NewTransactions(store, nil),
		Reports:      report.NewService(store),
		Exports:      export.NewService(store, export.NewProcessor(export.DefaultRenderers())),
	}
}

// RegisterRoutes registers all routes of the v1 API with the RouterGroup
// that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterUserRoutes(r.Group("/users"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterReportRoutes(r.Group("/reports"))
	co.RegisterExportRoutes(r.Group("/export"))
}
