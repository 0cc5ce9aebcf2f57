package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	pgdb "github.com/MUHULILAMRI/DoneFastAdmin/internal/adapter/postgres"
	pgagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/adapter/postgres/agent"
	pgaudit "github.com/MUHULILAMRI/DoneFastAdmin/internal/adapter/postgres/audit"
	pgdist "github.com/MUHULILAMRI/DoneFastAdmin/internal/adapter/postgres/distribution"
	pgeventbus "github.com/MUHULILAMRI/DoneFastAdmin/internal/adapter/postgres/eventbus"
	pglocker "github.com/MUHULILAMRI/DoneFastAdmin/internal/adapter/postgres/locker"
	pgorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/adapter/postgres/order"
	redisadapter "github.com/MUHULILAMRI/DoneFastAdmin/internal/adapter/redis"

	"github.com/MUHULILAMRI/DoneFastAdmin/internal/config"

	agentsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/agent"
	distsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/distribution"
	ordersvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/order"
	selectorsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/selector"

	"github.com/MUHULILAMRI/DoneFastAdmin/internal/transport"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool     *pgxpool.Pool
	Redis    *goredis.Client
	Server   *http.Server
	Engine   *distsvc.Service
	OrderSvc *ordersvc.Service
	AgentSvc *agentsvc.Service
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	// ── Database ─────────────────────────────────────────────────────────────
	pool, err := pgdb.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	orderRepo := pgorder.New(pool)
	agentRepo := pgagent.New(pool)
	distRepo := pgdist.New(pool)
	auditRec := pgaudit.New(pool)
	eventBus := pgeventbus.New(pool)
	locker := pglocker.New(pool)
	sched := redisadapter.NewScheduler(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	selector := selectorsvc.NewService(agentRepo)

	engine := distsvc.NewService(orderRepo, agentRepo, distRepo, selector, locker, eventBus, sched, auditRec)

	orderSvcInstance := ordersvc.NewService(orderRepo, agentRepo, eventBus, engine)
	agentSvcInstance := agentsvc.NewService(agentRepo, eventBus)

	// ── Transport ────────────────────────────────────────────────────────────
	router := transport.NewRouter(ctx, orderSvcInstance, agentSvcInstance, engine, eventBus)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	slog.Info("application wired", "port", cfg.Server.Port)

	app := &App{
		Pool:     pool,
		Redis:    rdb,
		Server:   server,
		Engine:   engine,
		OrderSvc: orderSvcInstance,
		AgentSvc: agentSvcInstance,
	}

	// ── Offer Deadline Sweeper ───────────────────────────────────────────────
	startSweeper(ctx, engine, sched, cfg.Distribution)

	return app, nil
}
