package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	authapp "github.com/Lexv0lk/merch-ledger/internal/auth/application"
	authdomain "github.com/Lexv0lk/merch-ledger/internal/auth/domain"
	"github.com/Lexv0lk/merch-ledger/internal/auth/infrastructure/ledger"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/jwt"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	"github.com/Lexv0lk/merch-ledger/internal/store/application"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/Lexv0lk/merch-ledger/internal/store/infrastructure/httpapi"
	"github.com/Lexv0lk/merch-ledger/internal/store/infrastructure/postgres"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 5 * time.Second
)

type StoreApp struct {
	cfg    StoreConfig
	logger logging.Logger

	dbpool      *pgxpool.Pool
	txManager   *database.DelegateTxManager
	catalogCase *application.CatalogCase
	server      *http.Server
}

func NewStoreApp(cfg StoreConfig, logger logging.Logger) *StoreApp {
	return &StoreApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Prepare connects to the database, applies migrations and seeds the catalog. It is safe to run repeatedly.
func (a *StoreApp) Prepare(ctx context.Context) error {
	dbURL := a.cfg.DbSettings.GetUrl()

	err := database.MigrateDatabase(dbURL, postgres.Migrations, postgres.MigrationsDir,
		database.PgxDriverName, database.PostgresDialect, a.logger)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.dbpool = dbpool
	a.txManager = database.NewDelegateTxManager(dbpool, a.logger, database.WithMaxRetries(uint64(a.cfg.TxMaxRetries)))

	catalogSeeder := postgres.NewCatalogSeeder(a.txManager, domain.DefaultCatalog)
	a.catalogCase = application.NewCatalogCase(postgres.NewGoodsRepository(dbpool), catalogSeeder, a.logger)

	return a.catalogCase.EnsureCatalogSeeded(ctx)
}

func (a *StoreApp) Run(ctx context.Context, lis net.Listener) error {
	if a.dbpool == nil {
		if err := a.Prepare(ctx); err != nil {
			return err
		}
	}

	a.server = &http.Server{
		Handler:           a.newRouter(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		a.logger.Info("starting http server", "addr", lis.Addr().String())

		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error while serving http: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		a.shutdownServer()

		return nil
	})

	return group.Wait()
}

func (a *StoreApp) newRouter() *gin.Engine {
	dbpool := a.dbpool
	txManager := a.txManager

	usersRepository := postgres.NewUsersRepository(dbpool, txManager, a.cfg.StartBalance)
	goodsRepository := postgres.NewGoodsRepository(dbpool)
	balanceLocker := postgres.NewBalanceLocker()

	sendCoinsCase := application.NewSendCoinsCase(txManager, usersRepository, balanceLocker, postgres.NewTransactionProceeder())
	purchaseCase := application.NewPurchaseCase(goodsRepository, balanceLocker, postgres.NewPurchaser(), txManager)
	userInfoCase := application.NewUserInfoCase(postgres.NewUserInfoRepository(), txManager)

	authenticator := authapp.NewAuthenticator(
		ledger.NewUsersRepository(usersRepository),
		authdomain.NewArgonPasswordHasher(),
		jwt.NewJWTTokenIssuer(),
		a.cfg.JwtSecret,
		a.cfg.TokenTTL(),
	)

	return httpapi.NewRouter(httpapi.RouterDeps{
		AuthHandler:    httpapi.NewAuthHandler(authenticator, a.logger),
		StoreHandler:   httpapi.NewStoreHandler(userInfoCase, sendCoinsCase, purchaseCase, a.catalogCase, a.logger),
		AuthMiddleware: httpapi.NewAuthMiddleware(jwt.NewJWTTokenParser(), a.cfg.JwtSecret),
		AccessLogger:   a.accessLogger(),
	})
}

func (a *StoreApp) accessLogger() *zap.Logger {
	if zapLogger, ok := a.logger.(*logging.ZapLogger); ok {
		return zapLogger.Zap()
	}

	accessLogger, err := zap.NewProduction()
	if err != nil {
		a.logger.Warn("access log disabled", "error", err.Error())
		return zap.NewNop()
	}

	return accessLogger
}

func (a *StoreApp) shutdownServer() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}
}

func (a *StoreApp) Shutdown() {
	a.shutdownServer()

	if a.dbpool != nil {
		a.dbpool.Close()
		a.dbpool = nil
	}

	a.logger.Info("store stopped")
}
