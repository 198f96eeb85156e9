package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc/reflection"

	"github.com/Leganyst/scheduling-core/internal/config"
	"github.com/Leganyst/scheduling-core/internal/db"
	"github.com/Leganyst/scheduling-core/internal/events"
	"github.com/Leganyst/scheduling-core/internal/grpcserver"
	"github.com/Leganyst/scheduling-core/internal/lock"
	"github.com/Leganyst/scheduling-core/internal/logging"
	"github.com/Leganyst/scheduling-core/internal/model"
	"github.com/Leganyst/scheduling-core/internal/ops"
	"github.com/Leganyst/scheduling-core/internal/scheduling"
	"github.com/Leganyst/scheduling-core/internal/service"
	"github.com/Leganyst/scheduling-core/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Конфиг: .env (если есть) + окружение.
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger, err := logging.NewLogger(appCfg.ServiceName, appCfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 2. Трассировка.
	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      appCfg.OTelEnabled,
		ServiceName:  appCfg.ServiceName,
		Environment:  appCfg.OTelEnvironment,
		OTLPEndpoint: appCfg.OTelEndpoint,
		Insecure:     appCfg.OTelInsecureGRPC,
		SampleRatio:  appCfg.OTelSampleRatio,
	})
	if err != nil {
		logger.Fatal("init tracing", zap.Error(err))
	}

	// 3. БД и миграции.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		logger.Fatal("init db", zap.Error(err))
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		logger.Fatal("auto migrate", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("sql DB", zap.Error(err))
	}
	defer sqlDB.Close()

	checks := []ops.ReadyCheck{{Name: "db", Check: db.ReadyCheck(gormDB)}}

	// 4. Блокировки по клиенту: Redis, если настроен, иначе в памяти процесса.
	var locker lock.Locker = lock.NewLocal()
	if appCfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     appCfg.RedisAddr,
			Password: appCfg.RedisPassword,
			DB:       appCfg.RedisDB,
		})
		defer rdb.Close()
		locker = lock.NewRedis(rdb, appCfg.ServiceName, appCfg.LockTTL, logger)
		checks = append(checks, ops.ReadyCheck{Name: "redis", Check: lock.ReadyCheck(rdb)})
		logger.Info("using redis customer locks", zap.String("addr", appCfg.RedisAddr))
	} else {
		logger.Warn("REDIS_ADDR not set, customer locks are process-local")
	}

	// 5. Публикация событий.
	var publisher events.Publisher = events.Nop{}
	if len(appCfg.KafkaBrokers) > 0 {
		k, err := events.NewKafka(appCfg.KafkaBrokers, appCfg.KafkaTopicPrefix)
		if err != nil {
			logger.Fatal("init kafka", zap.Error(err))
		}
		publisher = k
		checks = append(checks, ops.ReadyCheck{Name: "kafka", Check: events.ReadyCheck(appCfg.KafkaBrokers)})
	}
	defer publisher.Close()

	// 6. Валидатор и сервисы.
	cal, err := appCfg.Calendar()
	if err != nil {
		logger.Fatal("business calendar", zap.Error(err))
	}
	localZone, err := scheduling.LoadZone(appCfg.LocalTZ)
	if err != nil {
		logger.Fatal("local zone", zap.Error(err))
	}
	deps := service.Deps{
		DB:             gormDB,
		Validator:      scheduling.NewValidator(cal, scheduling.WithLocalZone(localZone)),
		Locker:         locker,
		Publisher:      publisher,
		Logger:         logger,
		UpcomingWindow: appCfg.UpcomingWindow,
	}
	srv := grpcserver.New(service.NewAppointmentService(deps), service.NewCustomerService(deps), service.NewDirectoryService(deps), cal.Location)

	// 7. gRPC.
	grpcServer, healthSrv := grpcserver.NewGRPCServer(logger, srv)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", appCfg.GRPCAddr)
	if err != nil {
		logger.Fatal("listen grpc", zap.String("addr", appCfg.GRPCAddr), zap.Error(err))
	}
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", appCfg.GRPCAddr),
			zap.String("reference_tz", cal.Location.String()),
			zap.String("business_hours", cal.Open.String()+"-"+cal.Close.String()))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", zap.Error(err))
			stop()
		}
	}()

	// 8. Служебный HTTP.
	httpServer := &http.Server{
		Addr:              appCfg.HTTPAddr,
		Handler:           ops.NewRouter(logger, checks...),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("ops http listening", zap.String("addr", appCfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", zap.Error(err))
			stop()
		}
	}()

	// 9. Грейсфул-шатдаун по сигналу.
	<-ctx.Done()
	logger.Info("shutting down")

	healthSrv.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = httpServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracing shutdown", zap.Error(err))
	}
}
