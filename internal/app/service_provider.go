package app

import (
	authAPI "casino_platform/internal/api/auth"
	blackjackAPI "casino_platform/internal/api/blackjack"
	paymentAPI "casino_platform/internal/api/payment"
	slotAPI "casino_platform/internal/api/slot"
	"casino_platform/internal/config"
	"casino_platform/internal/config/env"
	"casino_platform/internal/middleware"
	"casino_platform/internal/repository"
	"casino_platform/internal/repository/auth_repo"
	"casino_platform/internal/repository/round_repo"
	"casino_platform/internal/repository/stats_repo"
	"casino_platform/internal/repository/tx_repo"
	"casino_platform/internal/repository/user_repo"
	"casino_platform/internal/service"
	"casino_platform/internal/service/auth"
	"casino_platform/internal/service/blackjack"
	"casino_platform/internal/service/payment"
	"casino_platform/internal/service/slot"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Transaction log
	txRepo repository.TransactionRepository

	// Blackjack bits
	blackjackCfg   config.BlackjackConfig
	roundRepo      repository.RoundRepository
	blackjackStats repository.StatsRepository
	blackjackServ  service.BlackjackService
	blackjackHand  *blackjackAPI.Handler

	// Slot bits
	slotCfg   config.SlotConfig
	slotStats repository.StatsRepository
	slotServ  service.SlotService
	slotHand  *slotAPI.Handler

	// Payment bits
	paymentServ service.PaymentService
	paymentHand *paymentAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) TransactionRepo(ctx context.Context) repository.TransactionRepository {
	if sp.txRepo == nil {
		sp.txRepo = tx_repo.NewTransactionRepository(sp.DBClient(ctx))
	}
	return sp.txRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) BlackjackCfg() config.BlackjackConfig {
	if sp.blackjackCfg == nil {
		cfg, err := env.NewBlackjackConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get blackjack config: " + err.Error())
		}
		sp.blackjackCfg = cfg
	}
	return sp.blackjackCfg
}

func (sp *ServiceProvider) RoundRepository() repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository()
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) BlackjackStatsRepository() repository.StatsRepository {
	if sp.blackjackStats == nil {
		sp.blackjackStats = stats_repo.NewStatsRepository()
	}
	return sp.blackjackStats
}

func (sp *ServiceProvider) BlackjackService(ctx context.Context) service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(
			sp.BlackjackCfg(),
			sp.RoundRepository(),
			sp.UserRepo(ctx),
			sp.TransactionRepo(ctx),
			sp.BlackjackStatsRepository(),
			sp.TXManager(ctx),
		)
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{
			Serv: sp.BlackjackService(ctx),
		})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) SlotStatsRepository() repository.StatsRepository {
	if sp.slotStats == nil {
		sp.slotStats = stats_repo.NewStatsRepository()
	}
	return sp.slotStats
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(
			sp.SlotCfg(),
			sp.UserRepo(ctx),
			sp.TransactionRepo(ctx),
			sp.SlotStatsRepository(),
			sp.TXManager(ctx),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{Serv: sp.SlotService(ctx)})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) PaymentService(ctx context.Context) service.PaymentService {
	if sp.paymentServ == nil {
		sp.paymentServ = payment.NewPaymentService(sp.UserRepo(ctx), sp.TransactionRepo(ctx), sp.TXManager(ctx))
	}
	return sp.paymentServ
}

func (sp *ServiceProvider) PaymentHandler(ctx context.Context) *paymentAPI.Handler {
	if sp.paymentHand == nil {
		sp.paymentHand = paymentAPI.NewHandler(paymentAPI.HandlerDeps{Serv: sp.PaymentService(ctx)})
	}
	return sp.paymentHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Game endpoints за JWT middleware
		authMW := middleware.Auth(sp.JWTCfg())

		blackjackHandler := sp.BlackjackHandler(ctx)
		r.Route("/blackjack", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/start", blackjackHandler.Start)
			rr.Post("/{roundID}/action", blackjackHandler.Action)
			rr.Post("/{roundID}/settle", blackjackHandler.Settle)
			rr.Get("/{roundID}", blackjackHandler.State)
		})

		slotHandler := sp.SlotHandler(ctx)
		r.Route("/slot", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/spin", slotHandler.Spin)
		})

		paymentHandler := sp.PaymentHandler(ctx)
		r.Route("/payment", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/deposit", paymentHandler.Deposit)
			rr.Get("/balance", paymentHandler.Balance)
			rr.Get("/history", paymentHandler.History)
		})

		sp.router = r
	}

	return sp.router
}
