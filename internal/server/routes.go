package server

import (
	"pyxpay-admin/internal/app"
	"pyxpay-admin/internal/handlers"
	"pyxpay-admin/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the dashboard API on top of the application's services
func NewRouter(a *app.App, limiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(a.Registry)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(a.Logger))
	e.Use(middleware.SecurityHeaders())
	if origins := a.Config.Server.CORSAllowOrigins; len(origins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:  origins,
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
			ExposeHeaders: []string{middleware.TraceIDHeader},
		}))
	}
	if limiter != nil {
		e.Use(limiter.Middleware())
	}

	sessionHandler := handlers.NewSessionHandler(a.Session, a.Tokens)
	savedKeyHandler := handlers.NewSavedKeyHandler(a.SavedKeys)
	walletHandler := handlers.NewWalletHandler(a.Wallet)
	transactionHandler := handlers.NewTransactionHandler(a.Transactions, a.Forms, a.Columns)
	preferencesHandler := handlers.NewPreferencesHandler(a.Columns)
	dashboardHandler := handlers.NewDashboardHandler(a.Dashboard)
	healthHandler := handlers.NewHealthCheckHandler(a.DB, a.Session)

	v1 := e.Group("/api/v1")

	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})))

	v1.POST("/session/login", sessionHandler.Login)
	v1.POST("/session/login/saved/:id", sessionHandler.LoginWithSavedKey)
	v1.GET("/session", sessionHandler.GetSession)

	requireSession := middleware.RequireSession(a.Session, a.Tokens)

	v1.POST("/session/logout", sessionHandler.Logout, requireSession)

	v1.GET("/keys", savedKeyHandler.ListKeys, requireSession)
	v1.POST("/keys", savedKeyHandler.CreateKey, requireSession)
	v1.PUT("/keys/:id", savedKeyHandler.UpdateKey, requireSession)
	v1.DELETE("/keys/:id", savedKeyHandler.DeleteKey, requireSession)

	v1.GET("/dashboard", dashboardHandler.GetOverview, requireSession)

	v1.GET("/wallet/balance", walletHandler.GetBalance, requireSession)
	v1.POST("/wallet/cashout", walletHandler.Cashout, requireSession)
	v1.POST("/quotes/to-foreign", walletHandler.ConvertToForeign, requireSession)
	v1.POST("/quotes/to-real", walletHandler.ConvertToReal, requireSession)

	// static transaction paths are matched ahead of :id by the router
	v1.GET("/transactions", transactionHandler.ListTransactions, requireSession)
	v1.PUT("/transactions/filters", transactionHandler.ApplyFilters, requireSession)
	v1.DELETE("/transactions/filters", transactionHandler.ClearFilters, requireSession)
	v1.GET("/transactions/find", transactionHandler.FindTransaction, requireSession)
	v1.POST("/transactions/pix", transactionHandler.CreatePix, requireSession)
	v1.POST("/transactions/boleto", transactionHandler.CreateBoleto, requireSession)
	v1.POST("/transactions/card", transactionHandler.CreateCard, requireSession)
	v1.GET("/transactions/:id", transactionHandler.GetTransaction, requireSession)
	v1.PUT("/transactions/:id/postback", transactionHandler.ReschedulePostback, requireSession)

	v1.GET("/preferences/columns", preferencesHandler.GetColumns, requireSession)
	v1.PUT("/preferences/columns", preferencesHandler.UpdateColumns, requireSession)

	return e
}
