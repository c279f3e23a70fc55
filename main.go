package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leave-tracking/config"
	"leave-tracking/config/middleware"
	"leave-tracking/handlers"
	"leave-tracking/messaging"
	applogger "leave-tracking/pkg/logger"
	"leave-tracking/pkg/paseto"
	util "leave-tracking/pkg/utils"
	"leave-tracking/repository"
	"leave-tracking/router"
	"leave-tracking/seeder"
	"leave-tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	_ "time/tzdata"
)

// @title Leave Tracking API
// @version 1.0
// @description Leave request approval workflow with manager routing and notification inbox.
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a PASETO token.
//
// @tag.name Leave Requests
// @tag.description Submission, approval and cancellation of leave requests
//
// @tag.name Notifications
// @tag.description Per-user notification inbox
//
// @tag.name Users
// @tag.description Directory lookups
//
// @tag.name Admin
// @tag.description Admin only endpoints
func main() {
	seed := flag.Bool("seed", false, "seed demo users and exit")
	genSecret := flag.Bool("gen-secret", false, "print a new PASETO_SECRET value and exit")
	issueToken := flag.String("issue-token", "", "print a bearer token for the user with this email and exit")
	flag.Parse()

	if *genSecret {
		secret, err := util.GeneratePasetoSecret()
		if err != nil {
			log.Fatalf("failed to generate secret: %v", err)
		}
		fmt.Println(secret)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := applogger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zl, *seed, *issueToken); err != nil {
		zl.Fatal("application stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.AppConfig, zl *zap.Logger, seed bool, issueTokenFor string) error {
	client, err := config.MongoConnect(ctx, cfg.MongoString, zl)
	if err != nil {
		return err
	}
	defer config.DisconnectDB(client, zl)

	db := client.Database(cfg.DBName)
	if err := config.InitDatabase(ctx, db); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db.Collection(config.UserCollection))
	if seed {
		return seeder.SeedUsers(ctx, userRepo, zl)
	}

	tokens, err := paseto.NewPasetoMaker(cfg.PasetoSecret, 24*time.Hour)
	if err != nil {
		return err
	}
	if issueTokenFor != "" {
		return printToken(ctx, userRepo, tokens, issueTokenFor)
	}

	var (
		directory   repository.UserDirectory = userRepo
		invalidator service.CacheInvalidator
	)
	if cfg.RedisAddr != "" {
		rdb, err := config.ConnectRedisWithRetry(ctx, cfg.RedisAddr, 3, zl)
		if err != nil {
			zl.Warn("continuing without user directory cache", zap.Error(err))
		} else {
			defer rdb.Close()
			cached := repository.NewCachedUserDirectory(userRepo, rdb, cfg.UserCacheTTL, zl)
			directory = cached
			invalidator = cached
		}
	}

	var events messaging.EventPublisher = messaging.NoopEventPublisher{}
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		events = messaging.NewKafkaEventPublisher(writer, cfg.KafkaTopic)
		zl.Info("publishing leave events", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	leaveRepo := repository.NewLeaveRequestRepository(db.Collection(config.LeaveRequestCollection))
	notificationRepo := repository.NewNotificationRepository(db.Collection(config.NotificationCollection))
	balanceRepo := repository.NewLeaveBalanceRepository(db.Collection(config.LeaveBalanceCollection))
	roleChangeRepo := repository.NewRoleChangeLogRepository(db.Collection(config.RoleChangeCollection))

	dispatcher := service.NewNotificationDispatcher(notificationRepo, directory, events, service.SystemClock, zl)
	leaves := service.NewLeaveApprovalService(leaveRepo, directory, dispatcher, service.SystemClock, zl)
	inbox := service.NewNotificationInbox(notificationRepo, service.SystemClock)
	balances := service.NewLeaveBalanceService(balanceRepo, service.SystemClock, zl)
	admin := service.NewUserAdminService(userRepo, roleChangeRepo, invalidator, service.SystemClock, zl)

	app := fiber.New(fiber.Config{AppName: "Leave Tracking API"})
	config.SetupCORS(app)
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:request_id} ${status} - ${latency} ${method} ${path}\n",
	}))

	router.SetupRoutes(app, router.Handlers{
		Leave:        handlers.NewLeaveRequestHandler(leaves, zl),
		Notification: handlers.NewNotificationHandler(inbox, zl),
		Balance:      handlers.NewLeaveBalanceHandler(balances, zl),
		User:         handlers.NewUserHandler(directory, admin, zl),
		Health:       handlers.NewHealthHandler(client),
	}, tokens, zl)

	go func() {
		<-ctx.Done()
		zl.Info("shutting down HTTP server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	zl.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("docs", fmt.Sprintf("http://localhost:%s/docs/index.html", cfg.Port)),
		zap.Strings("cors_origins", config.GetAllowedOrigins()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printToken(ctx context.Context, users *repository.UserRepository, tokens *paseto.Maker, email string) error {
	user, err := users.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("no user with email %s", email)
	}
	token, err := tokens.GenerateToken(user)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
