package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "loanbook-backend/internal/adapter/http"
	"loanbook-backend/internal/adapter/middleware"
	"loanbook-backend/internal/adapter/repository/gormstore"
	"loanbook-backend/internal/config"
	"loanbook-backend/internal/infrastructure/cache"
	"loanbook-backend/internal/infrastructure/db"
	"loanbook-backend/internal/infrastructure/seed"
	"loanbook-backend/internal/usecase/dashboard"
	loanuc "loanbook-backend/internal/usecase/loan"
	"loanbook-backend/internal/usecase/portfolio"
	useruc "loanbook-backend/internal/usecase/user"
	"loanbook-backend/pkg/id"
	"loanbook-backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	zlog := logger.L()

	if err := cfg.Validate(); err != nil {
		zlog.Fatal("invalid config", zap.Error(err))
	}

	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case config.DriverMySQL:
		gdb, err = db.OpenMySQL(cfg.MySQLDSN())
	default:
		gdb, err = db.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		zlog.Fatal("open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	ds := seed.Fixture()
	if err := seed.Apply(gdb, ds); err != nil {
		zlog.Fatal("seed dataset", zap.Error(err))
	}
	zlog.Info("dataset seeded",
		zap.Int("users", len(ds.Users)),
		zap.Int("loans", len(ds.Loans)),
		zap.Int("payments", len(ds.Payments)),
		zap.Int("transactions", len(ds.Transactions)),
	)

	loanRepo := gormstore.NewLoanRepository(gdb)
	paymentRepo := gormstore.NewPaymentRepository(gdb)
	txnRepo := gormstore.NewTransactionRepository(gdb)
	userRepo := gormstore.NewUserRepository(gdb)

	pfSvc := portfolio.NewService(loanRepo, txnRepo)
	loanUC := loanuc.NewUsecase(loanRepo, paymentRepo, txnRepo)
	userUC := useruc.NewUsecase(userRepo)
	dashUC := dashboard.NewUsecase(loanUC, paymentRepo, userRepo, pfSvc)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC)
	pfH := httpadp.NewPortfolioHandler(pfSvc)
	userH := httpadp.NewUserHandler(userUC)
	dashH := httpadp.NewDashboardHandler(dashUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.NewID32}),
		echomw.Recover(),
		echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
			LogURI:       true,
			LogStatus:    true,
			LogMethod:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
				zlog.Info("request",
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("request_id", v.RequestID),
				)
				return nil
			},
		}),
	)

	// routes
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	pf := api.Group("/portfolio")
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			zlog.Fatal("open redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		pf.Use(middleware.ResponseCache(rdb, time.Duration(cfg.CacheTTLSecs)*time.Second))
		zlog.Info("response cache enabled", zap.Int("ttl_seconds", cfg.CacheTTLSecs))
	}
	pf.GET("/summary", pfH.Summary)
	pf.GET("/cashflow", pfH.CashFlow)
	pf.GET("/risk-distribution", pfH.RiskDistribution)
	pf.GET("/status-distribution", pfH.StatusDistribution)
	pf.GET("/rate-buckets", pfH.RateBuckets)

	api.GET("/loans", loanH.ListLoans)
	api.GET("/loans/:loan_id", loanH.GetLoan)
	api.GET("/loans/:loan_id/payments", loanH.ListPayments)
	api.GET("/loans/:loan_id/transactions", loanH.ListTransactions)

	api.GET("/users", userH.ListUsers)
	api.GET("/users/:user_id", userH.GetUser)

	api.GET("/dashboard/borrower/:user_id", dashH.Borrower)
	api.GET("/dashboard/lender/:user_id", dashH.Lender)
	api.GET("/dashboard/analyst", dashH.Analyst)
	api.GET("/dashboard/admin", dashH.Admin)

	addr := ":" + cfg.AppPort
	zlog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
