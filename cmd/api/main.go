// server/cmd/api/main.go
package main

import (
	"errors"
	"log"
	"os"

	"zk-salon-api-server/config"
	"zk-salon-api-server/internal/api/routes"
	"zk-salon-api-server/internal/auth"
	"zk-salon-api-server/internal/database"
	"zk-salon-api-server/internal/imagestore"
	"zk-salon-api-server/internal/mailer"
	"zk-salon-api-server/internal/socket"
	"zk-salon-api-server/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	// 1. Load .env and configuration
	godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Logger
	initLogger(cfg.Logger)
	defer zap.S().Sync()

	auth.SetJWTSecret(cfg.JWT.Secret)

	// 3. Document store (optionally mirrored to a remote JSON store)
	var mirror *store.Mirror
	if cfg.Storage.RemoteURL != "" {
		mirror = store.NewMirror(cfg.Storage.RemoteURL, cfg.Storage.RemoteKey)
		zap.S().Infof("Remote store mirroring enabled: %s", cfg.Storage.RemoteURL)
	}
	st := store.New(cfg.Storage.File, mirror)

	// A corrupt document is fatal here rather than on the first request.
	if _, err := st.Load(); err != nil {
		if errors.Is(err, store.ErrMalformedStorage) {
			zap.S().Fatalf("Storage document is not valid JSON: %v", err)
		}
		zap.S().Fatalf("Failed to open storage: %v", err)
	}

	// 4. Seed the admin account on first boot
	if err := database.SeedAdmin(st, cfg); err != nil {
		zap.S().Fatalf("Failed to seed admin account: %v", err)
	}

	// 5. Image store for the configured uploads mode
	images, err := imagestore.New(cfg)
	if err != nil {
		zap.S().Fatalf("Failed to initialize image store: %v", err)
	}
	zap.S().Infof("Image storage mode: %s", images.Mode())

	// 6. Notification mailer and websocket hub
	ml := mailer.New(cfg.Email)
	if !ml.Enabled() {
		zap.S().Warn("SMTP not configured; booking notification emails are disabled")
	}
	wsHub := socket.NewHub()

	// 7. Router and server
	router := routes.SetupRouter(st, images, ml, wsHub, cfg)

	zap.S().Infof("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zap.S().Fatalf("Failed to run server: %v", err)
	}
}

// initLogger builds the global zap logger, with file rotation when enabled.
func initLogger(cfg config.LoggerConfig) {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.FileEnable && cfg.Filename != "" {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}
