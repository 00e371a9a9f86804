package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"clubdesk/internal/adapters/email"
	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/adapters/http/perf"
	"clubdesk/internal/adapters/presence"
	accountStore "clubdesk/internal/adapters/storage/account"
	matchStore "clubdesk/internal/adapters/storage/match"
	paymentStore "clubdesk/internal/adapters/storage/payment"
	playerStore "clubdesk/internal/adapters/storage/player"
	settingsStore "clubdesk/internal/adapters/storage/settings"
	"clubdesk/internal/application/report"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore  accountStore.Store
	PlayerStore   playerStore.Store
	SettingsStore settingsStore.Store
	MatchStore    matchStore.Store
	StatStore     matchStore.StatStore
	PaymentStore  paymentStore.Store
}

// loadCSRFKey reads the CSRF secret from CLUBDESK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("CLUBDESK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("CLUBDESK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("CLUBDESK_ENV") == "production" {
		log.Fatal("CLUBDESK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set CLUBDESK_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global report builder (set by NewMux)
var reportBuilder *report.Builder

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string

// Global presence tracker (set by SetPresenceTracker)
var presenceTracker presence.Tracker

// Upload configuration (set by SetUploads)
var uploadsDir = "uploads"
var uploadsMaxBytes int64 = 5 << 20

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// SetPresenceTracker sets the global presence tracker for the application.
func SetPresenceTracker(tracker presence.Tracker) {
	presenceTracker = tracker
}

// SetUploads configures where uploaded files are stored and the per-file size cap.
func SetUploads(dir string, maxBytes int64) {
	if dir != "" {
		uploadsDir = dir
	}
	if maxBytes > 0 {
		uploadsMaxBytes = maxBytes
	}
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("CLUBDESK_ENV") == "production"

	builder, err := report.NewBuilder()
	if err != nil {
		log.Fatalf("failed to load report locales: %v", err)
	}
	reportBuilder = builder

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
