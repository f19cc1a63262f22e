package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/config"
	"github.com/Astemirdum/library-lending/library/internal/auth"
	"github.com/Astemirdum/library-lending/library/internal/handler"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/repository"
	"github.com/Astemirdum/library-lending/library/internal/server"
	"github.com/Astemirdum/library-lending/library/internal/service"
	"github.com/Astemirdum/library-lending/library/internal/session"
	"github.com/Astemirdum/library-lending/library/migrations"
	"github.com/Astemirdum/library-lending/pkg/logger"
	"github.com/Astemirdum/library-lending/pkg/postgres"
	"github.com/Astemirdum/library-lending/pkg/redis"
	"github.com/Astemirdum/library-lending/pkg/tracing"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logger.NewLogger(cfg.Log, "library")
	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, "library")
	if err != nil {
		log.Fatal("tracing init", zap.Error(err))
	}
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	verifier, err := auth.NewVerifier(repo, auth.NewArgon2Hasher(cfg.Argon2), log)
	if err != nil {
		log.Fatal("verifier", zap.Error(err))
	}

	var store session.Store
	closeStore := func() error { return nil }
	if cfg.Redis.Enabled() {
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("redis init", zap.Error(err))
		}
		store = session.NewRedisStore(rdb, cfg.Breaker)
		closeStore = rdb.Close
		log.Info("session store: redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		store = session.NewMemoryStore()
		log.Info("session store: memory")
	}
	sessions := session.NewManager(store, verifier, repo, cfg.Session.TTL, log)

	svc := service.NewService(repo, sessions, verifier, log)
	if cfg.Admin.Email != "" {
		err = svc.EnsureAdmin(ctx, model.RegisterRequest{
			Email:    cfg.Admin.Email,
			Name:     cfg.Admin.Name,
			Password: cfg.Admin.Password,
		})
		if err != nil {
			log.Fatal("ensure admin", zap.Error(err))
		}
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	if err = closeStore(); err != nil {
		log.Error("session store close", zap.Error(err))
	}
	db.Close()
	if err = shutdownTracing(closeCtx); err != nil {
		log.Error("tracing shutdown", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	_ = log.Sync()
}
