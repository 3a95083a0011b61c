package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vasantha-kumar-s/career-bot/config"
	"github.com/vasantha-kumar-s/career-bot/internal/api/handlers"
	"github.com/vasantha-kumar-s/career-bot/internal/api/middleware"
	"github.com/vasantha-kumar-s/career-bot/internal/api/routes"
	"github.com/vasantha-kumar-s/career-bot/internal/cache"
	"github.com/vasantha-kumar-s/career-bot/internal/logger"
	"github.com/vasantha-kumar-s/career-bot/internal/providers/llm"
	"github.com/vasantha-kumar-s/career-bot/internal/providers/stt"
	mongorepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/mongo"
	pgrepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/postgres"
	"github.com/vasantha-kumar-s/career-bot/internal/services"
	"github.com/vasantha-kumar-s/career-bot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitPostgres(cfg)
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(db); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	log.Info("PostgreSQL connected")

	mongoClient, mongoDB, err := config.InitMongo(ctx, cfg)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	if err := config.EnsureMongoIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	log.Info("MongoDB connected")

	var recCache cache.Cache
	rdb, err := config.InitRedis(ctx, cfg)
	switch {
	case err != nil:
		log.WithError(err).Warn("Redis unavailable, using in-process cache")
		recCache = cache.NewMemoryCache(cfg.RecommendationCacheTTL, 10*time.Minute)
	case rdb == nil:
		log.Info("Redis not configured, using in-process cache")
		recCache = cache.NewMemoryCache(cfg.RecommendationCacheTTL, 10*time.Minute)
	default:
		defer rdb.Close()
		recCache = cache.NewRedisCache(rdb, "career-bot:")
		log.Info("Redis connected")
	}

	var gen llm.Provider
	if cfg.AIEnabled() {
		g, err := llm.NewVertexGemini(ctx, cfg.VertexProjectID, cfg.VertexLocation, cfg.GeminiModel, cfg.GeminiAPIKey)
		if err != nil {
			log.WithError(err).Warn("generation client unavailable, serving fallback content")
		} else {
			defer g.Close()
			gen = g
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, running in limited mode")
	}

	var speech stt.Provider
	if cfg.SpeechEnabled {
		s, err := stt.NewGoogleSpeech(ctx)
		if err != nil {
			log.WithError(err).Warn("speech client unavailable, voice chat disabled")
		} else {
			defer s.Close()
			speech = s
		}
	}

	var uploader storage.Uploader
	if cfg.GCSBucket != "" {
		u, err := storage.NewGCSUploader(ctx, cfg.GCSBucket)
		if err != nil {
			log.WithError(err).Warn("storage client unavailable, resume upload disabled")
		} else {
			defer u.Close()
			uploader = u
		}
	}

	users := pgrepo.NewUserRepo(db)
	quiz := pgrepo.NewQuizRepo(db)
	recs := pgrepo.NewRecommendationRepo(db)
	mentors := pgrepo.NewMentorRepo(db)
	conns := pgrepo.NewConnectionRepo(db)
	jobs := pgrepo.NewJobRepo(db)
	resumes := pgrepo.NewResumeRepo(db)
	convos := mongorepo.NewConversationRepo(mongoDB)

	userSvc := services.NewUserService(users)
	chatSvc := services.NewChatService(services.ChatDeps{
		Users:     users,
		Quiz:      quiz,
		Convos:    convos,
		Assembler: services.NewContextAssembler(users, quiz, recs, mentors, jobs),
		LLM:       gen,
		Timeout:   cfg.GenerationTimeout,
		Logger:    log,
	})
	recSvc := services.NewRecommendationService(services.RecommendationDeps{
		Users:    users,
		Quiz:     quiz,
		Recs:     recs,
		Cache:    recCache,
		CacheTTL: cfg.RecommendationCacheTTL,
		LLM:      gen,
		Timeout:  cfg.GenerationTimeout,
		Logger:   log,
	})

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS(cfg.CORSAllowedOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		User:            handlers.NewUserHandler(userSvc),
		Chat:            handlers.NewChatHandler(chatSvc, services.NewVoiceService(speech, chatSvc, log)),
		Quiz:            handlers.NewQuizHandler(services.NewQuizService(users, quiz)),
		Recommendation:  handlers.NewRecommendationHandler(recSvc),
		Mentor:          handlers.NewMentorHandler(services.NewMentorService(users, mentors, conns, cfg.MentorListLimit)),
		Job:             handlers.NewJobHandler(services.NewJobService(jobs)),
		Resume:          handlers.NewResumeHandler(services.NewResumeService(users, resumes, uploader)),
		WS:              handlers.NewWSHandler(chatSvc, userSvc, log, cfg.CORSAllowedOrigins),
		MentorJWTSecret: cfg.MentorJWTSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
