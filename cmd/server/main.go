package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"

	"meeting-planner-api/internal/config"
	gweb "meeting-planner-api/internal/grpcweb"
	"meeting-planner-api/internal/handler"
	"meeting-planner-api/internal/middleware"
	"meeting-planner-api/internal/session"
	"meeting-planner-api/internal/store"
	pb "meeting-planner-api/rpc/meetingv1"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	// database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Error("db", "err", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		log.Error("db ping", "err", err)
		os.Exit(1)
	}
	log.Info("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile(cfg.MigrationsFile); err != nil {
		log.Warn("migration file not found, skipping", "err", err)
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		log.Warn("migration", "err", err)
	} else {
		log.Info("migration applied")
	}

	// session-change notifications: log every sign-in/refresh/sign-out
	sessions := session.NewHub()
	unsubscribe := sessions.Subscribe(func(e session.Event) {
		log.Info("session change", "kind", string(e.Kind), "user", e.UserID)
	})
	defer unsubscribe()

	st := store.New(pool)
	h := handler.New(st, sessions, cfg.JWTSecret)

	// grpc server
	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.RateLimit(rl),
			middleware.Auth(cfg.JWTSecret),
		),
	)
	pb.RegisterMeetingServiceServer(srv, h)

	// start grpc on TCP
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Error("listen", "err", err)
		os.Exit(1)
	}
	go func() {
		log.Info("grpc listening", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			log.Error("grpc", "err", err)
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:"+cfg.GRPCPort, h, cfg.JWTSecret, log)
	if err != nil {
		log.Error("bridge", "err", err)
		os.Exit(1)
	}
	defer bridge.Close()

	httpSrv := &http.Server{
		Addr:    ":" + cfg.WebPort,
		Handler: bridge.Handler(),
	}
	go func() {
		log.Info("grpc-web listening", "port", cfg.WebPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http", "err", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")
	srv.GracefulStop()
	httpSrv.Close()
}
