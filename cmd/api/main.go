package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "ruralbank/internal/adapter/http"
	authmw "ruralbank/internal/adapter/middleware"
	"ruralbank/internal/adapter/repository/memory"
	"ruralbank/internal/adapter/snapshot/filesnap"
	"ruralbank/internal/adapter/snapshot/gormsnap"
	"ruralbank/internal/config"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/snapshot"
	"ruralbank/internal/infrastructure/cache"
	"ruralbank/internal/infrastructure/db"
	identityuc "ruralbank/internal/usecase/identity"
	ledgeruc "ruralbank/internal/usecase/ledger"
	"ruralbank/internal/usecase/loanengine"
	"ruralbank/internal/usecase/query"
	"ruralbank/internal/usecase/registry"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	mirror, err := openSnapshotStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	snap, err := mirror.Load(context.Background())
	switch {
	case err == nil:
		log.Printf("snapshot loaded: %d identities, %d accounts, %d transactions, %d loans",
			len(snap.Identities), len(snap.Accounts), len(snap.Transactions), len(snap.Loans))
	case errors.Is(err, snapshot.ErrNoSnapshot):
		log.Println("no snapshot stored, seeding default staff identities")
		snap = &snapshot.Snapshot{Identities: identity.SeedStaff()}
	default:
		log.Fatal(err)
	}

	store := memory.NewStore(snap, mirror)

	identityUC := identityuc.NewUsecase(store)
	registryUC := registry.NewUsecase(store)
	ledgerUC := ledgeruc.NewUsecase(store)
	loanUC := loanengine.NewUsecase(store)
	queryUC := query.NewUsecase(store)

	secret := []byte(cfg.SessionSecret)
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour

	h := httpadp.NewHandler()
	auth := httpadp.NewAuthHandler(identityUC, secret, sessionTTL)
	accounts := httpadp.NewAccountHandler(registryUC)
	money := httpadp.NewLedgerHandler(ledgerUC)
	loans := httpadp.NewLoanHandler(loanUC)
	views := httpadp.NewQueryHandler(queryUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)
	e.POST("/login", auth.Login)

	api := e.Group("/api", authmw.Session(secret))

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		api.Use(authmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	admin := authmw.RequireRole(identity.RoleAdmin)

	// account registry
	api.GET("/accounts", accounts.ListAccounts)
	api.GET("/accounts/:account_id", accounts.GetAccount)
	api.POST("/accounts", accounts.CreateAccount,
		authmw.RequireRole(identity.RoleAdmin, identity.RoleTellerAccount))
	api.POST("/accounts/:account_id/approve", accounts.ApproveAccount, admin)
	api.POST("/accounts/:account_id/reject", accounts.RejectAccount, admin)

	// ledger
	teller := authmw.RequireRole(identity.RoleAdmin, identity.RoleTellerTransaction)
	api.POST("/accounts/:account_id/deposit", money.Deposit, teller)
	api.POST("/accounts/:account_id/withdraw", money.Withdraw, teller)
	api.POST("/transfers", money.Transfer, teller)

	// loan engine
	api.POST("/loans/preview", loans.PreviewTerms)
	api.POST("/loans", loans.ApplyLoan,
		authmw.RequireRole(identity.RoleAdmin, identity.RoleTellerLoan))
	api.POST("/loans/:loan_id/approve", loans.ApproveLoan, admin)
	api.POST("/loans/:loan_id/reject", loans.RejectLoan, admin)
	api.GET("/loans", loans.ListLoans)
	api.GET("/loans/:loan_id", loans.GetLoan)

	// derived read views
	api.GET("/accounts/:account_id/transactions", views.AccountTransactions)
	api.GET("/accounts/:account_id/loans", views.AccountLoans)
	api.GET("/customers/:customer_id/accounts", views.CustomerAccounts)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

func openSnapshotStore(cfg *config.Config) (snapshot.Store, error) {
	switch cfg.SnapshotBackend {
	case config.BackendFile:
		return filesnap.New(cfg.SnapshotFile), nil
	case config.BackendSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return gormsnap.New(gdb)
	case config.BackendMySQL:
		gdb, err := db.OpenMySQL(cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		return gormsnap.New(gdb)
	}
	return nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
}
