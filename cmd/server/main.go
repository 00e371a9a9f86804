package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "clubdesk/internal/adapters/email"
	web "clubdesk/internal/adapters/http"
	"clubdesk/internal/adapters/http/perf"
	"clubdesk/internal/adapters/presence"
	"clubdesk/internal/adapters/storage"
	accountStorePkg "clubdesk/internal/adapters/storage/account"
	matchStorePkg "clubdesk/internal/adapters/storage/match"
	paymentStorePkg "clubdesk/internal/adapters/storage/payment"
	playerStorePkg "clubdesk/internal/adapters/storage/player"
	settingsStorePkg "clubdesk/internal/adapters/storage/settings"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load(envOrDefault("CLUBDESK_CONFIG", "config.yaml"))
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Open SQLite with WAL mode, foreign keys, and busy timeout
	db, err := sql.Open("sqlite", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStorePkg.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:  acctStore,
		PlayerStore:   playerStorePkg.NewSQLiteStore(timedDB),
		SettingsStore: settingsStorePkg.NewSQLiteStore(timedDB),
		MatchStore:    matchStorePkg.NewSQLiteStore(timedDB),
		StatStore:     matchStorePkg.NewStatSQLiteStore(timedDB),
		PaymentStore:  paymentStorePkg.NewSQLiteStore(timedDB),
	}

	// Seed default admin account if no accounts exist
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Configure email sender
	if cfg.Email.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.Email.ResendKey, cfg.Email.From), cfg.Email.From, cfg.Email.ReplyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.Email.From, cfg.Email.ReplyTo)
		if cfg.Env == "production" {
			log.Println("WARNING: no Resend key configured — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set CLUBDESK_RESEND_KEY for real delivery)")
		}
	}

	// Configure presence tracking: Redis when available, in-process otherwise
	if cfg.Redis.Addr != "" {
		tracker, err := presence.NewRedisTracker(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer tracker.Close()
		web.SetPresenceTracker(tracker)
		log.Println("Presence tracker configured (Redis)")
	} else {
		web.SetPresenceTracker(presence.NewMemoryTracker(cfg.Redis.TTL))
		log.Println("Presence tracker configured (in-memory)")
	}

	web.SetUploads(cfg.Uploads.Dir, cfg.Uploads.MaxSizeBytes)

	mux := web.NewMux(cfg.Server.StaticDir, stores, collector)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Printf("Club Desk %s starting on %s (env=%s)", version, cfg.Server.Addr, cfg.Env)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
