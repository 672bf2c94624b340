package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview-ai-backend/internal/config"
	"interview-ai-backend/internal/domain/ports/adapter"
	"interview-ai-backend/internal/domain/ports/repository"
	aiAdapters "interview-ai-backend/internal/infra/adapters/ai"
	"interview-ai-backend/internal/infra/adapters/extract"
	ttsAdapters "interview-ai-backend/internal/infra/adapters/tts"
	"interview-ai-backend/internal/infra/audio"
	pg "interview-ai-backend/internal/infra/db/postgres"
	"interview-ai-backend/internal/infra/logging"
	mem "interview-ai-backend/internal/infra/memory"
	"interview-ai-backend/internal/infra/metrics"
	red "interview-ai-backend/internal/infra/redis"
	"interview-ai-backend/internal/infra/web"
	"interview-ai-backend/internal/usecase"
)

// backendDeps bundles the storage implementations selected at startup.
type backendDeps struct {
	interviews repository.InterviewRepository
	users      repository.UserRepository
	resumes    repository.ResumeRepository
	tm         repository.TransactionManager
	locker     usecase.Locker
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, noop fallbacks)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("dev mode enabled")
	}
	metrics.MustRegister()

	// ---- Storage backend ----
	var deps backendDeps
	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := pg.Connect(ctx, cfg.Database.URL)
		if err != nil {
			logger.Fatal().Err(err).Msg("postgres connect failed")
		}
		defer pool.Close()

		redisClient, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connect failed")
		}
		defer redisClient.Close()

		cache := red.NewSessionCache(redisClient, cfg.Redis.TTL)
		deps = backendDeps{
			interviews: pg.NewInterviewRepo(pool, cache),
			users:      pg.NewUserRepo(pool),
			resumes:    pg.NewResumeRepo(pool),
			tm:         pg.NewTxManager(pool),
			locker:     red.NewLocker(redisClient),
		}
		logger.Info().Msg("storage backend: postgres + redis")
	case "memory":
		deps = backendDeps{
			interviews: mem.NewInterviewRepo(),
			users:      mem.NewUserRepo(),
			resumes:    mem.NewResumeRepo(),
			tm:         mem.NewTxManager(),
			locker:     mem.NewLocker(),
		}
		logger.Warn().Msg("storage backend: memory (sessions are lost on restart)")
	}

	// ---- AI adapter (Groq -> Gemini -> noop in dev) ----
	var ai adapter.AIClient
	switch {
	case cfg.AI.GroqKey != "":
		ai, err = aiAdapters.NewGroqAdapter(cfg.AI.GroqKey, cfg.AI.GroqBaseURL, cfg.AI.Model, cfg.AI.Timeout)
		if err != nil {
			logger.Fatal().Err(err).Msg("groq adapter")
		}
		logger.Info().Str("base", cfg.AI.GroqBaseURL).Str("model", cfg.AI.Model).Msg("AI adapter: Groq (OpenAI compatible)")
	case cfg.AI.GeminiKey != "":
		ai, err = aiAdapters.NewGeminiAdapter(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
		if err != nil {
			logger.Fatal().Err(err).Msg("gemini adapter")
		}
		logger.Info().Str("model", cfg.AI.Model).Msg("AI adapter: Gemini")
	case cfg.Runtime.Dev:
		ai = aiAdapters.NewNoopAIAdapter()
		logger.Warn().Msg("AI adapter: noop (dev mode, canned responses)")
	default:
		logger.Fatal().Msgf("no AI provider configured: set ai.groq_key or ai.gemini_key in %s", *cfgPath)
	}
	ai = aiAdapters.NewBreakerAI(ai, cfg.AI.Breaker, logger)
	ai = aiAdapters.NewLimitedAI(ai, cfg.AI.ConcurrentLimit)

	// ---- Speech synthesis + audio storage ----
	var tts adapter.SpeechSynthesizer
	if cfg.TTS.Enabled {
		tts, err = ttsAdapters.NewGoogleSynthesizer(cfg.TTS.APIKey, cfg.TTS.Voice, cfg.TTS.Language, cfg.TTS.Timeout)
		if err != nil {
			logger.Fatal().Err(err).Msg("tts adapter")
		}
		logger.Info().Str("voice", cfg.TTS.Voice).Msg("speech synthesis enabled")
	} else {
		tts = ttsAdapters.NewNoopSynthesizer()
	}

	var audioStore adapter.AudioStore
	var audioDir string
	switch cfg.Audio.Backend {
	case "s3":
		audioStore, err = audio.NewS3Store(ctx, cfg.Audio.S3)
		if err != nil {
			logger.Fatal().Err(err).Msg("s3 audio store")
		}
	default:
		local, err := audio.NewLocalStore(cfg.Audio.Dir, cfg.Server.BaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("local audio store")
		}
		audioStore = local
		audioDir = local.Dir()
	}

	// ---- Use cases ----
	extractor := extract.New()
	interviewUC := usecase.NewInterviewUseCase(deps.interviews, deps.users, deps.tm, ai, tts, audioStore, deps.locker, logger)
	resumeUC := usecase.NewResumeUseCase(deps.resumes, deps.users, ai, extractor, logger)
	userUC := usecase.NewUserUseCase(deps.users, logger)

	// ---- HTTP server ----
	srv := web.NewServer(interviewUC, resumeUC, userUC, audioDir, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	cancel()
}
