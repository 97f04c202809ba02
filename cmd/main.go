package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"nammareport/backend/internal/api/handler"
	"nammareport/backend/internal/config"
	"nammareport/backend/internal/localization"
	"nammareport/backend/internal/notify"
	"nammareport/backend/internal/session"
	"nammareport/backend/internal/telemetry"
	"nammareport/backend/internal/token"
	"nammareport/backend/internal/workflow"
)

// newNotifier selects the simulated SMS backend. The redis driver publishes
// to a pub/sub channel; console just logs. Neither sends a real SMS.
func newNotifier(cfg config.Config) notify.Notifier {
	if cfg.NotifyDriver != "redis" {
		return notify.ConsoleNotifier{}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}
	return notify.NewRedisNotifier(rdb, cfg.NotifyChannel)
}

func randomSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func main() {
	log.Printf("Starting %s backend...", config.AppName)

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	localizer, err := localization.NewLocalizer(cfg.LocalesDir)
	if err != nil {
		log.Fatalf("Failed to load locales: %v", err)
	}

	rng := workflow.NewLockedRand(randomSeed())
	gen := telemetry.NewGenerator(rng)
	hub := telemetry.NewHub(gen, cfg.TelemetryInterval)
	go hub.Run()

	h := handler.NewHandler(
		session.NewRegistry(),
		token.NewManager(cfg.JWTSecret, cfg.TokenTTL),
		localizer,
		hub,
		gen,
		newNotifier(cfg),
		rng,
		cfg,
	)

	r := gin.Default()
	h.Register(r)

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Listening on %s", cfg.Addr)
	log.Fatal(server.ListenAndServe())
}
