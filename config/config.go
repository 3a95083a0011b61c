package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at process start and passed to every component that needs it.
type Config struct {
	Port    string
	GinMode string

	LogLevel string
	LogFile  string

	PostgresURI string

	MongoURI           string
	MongoDB            string
	MongoForceTLS      bool
	MongoInsecureTLS   bool
	RedisAddr          string
	CORSAllowedOrigins []string

	GeminiAPIKey      string
	VertexProjectID   string
	VertexLocation    string
	GeminiModel       string
	GenerationTimeout time.Duration

	RecommendationCacheTTL time.Duration
	MentorListLimit        int

	MentorJWTSecret string
	GCSBucket       string
	SpeechEnabled   bool
}

// AIEnabled reports whether a generation-service key was provided.
func (c Config) AIEnabled() bool { return c.GeminiAPIKey != "" }

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := Config{
		Port:     strDefault("PORT", "8080"),
		GinMode:  opt("GIN_MODE"),
		LogLevel: opt("LOG_LEVEL"),
		LogFile:  opt("LOG_FILE"),

		PostgresURI: req("POSTGRES_URI"),

		MongoURI:         req("MONGO_URI"),
		MongoDB:          strDefault("MONGO_DB", "career_bot"),
		MongoForceTLS:    opt("MONGO_FORCE_TLS_CONFIG") == "true" || opt("GO_ENV") == "development",
		MongoInsecureTLS: opt("MONGO_INSECURE_TLS") == "true",

		RedisAddr: firstNonEmpty(opt("REDIS_ADDR"), opt("REDIS_URI"), opt("REDIS_URL")),

		GeminiAPIKey:      opt("GEMINI_API_KEY"),
		VertexProjectID:   firstNonEmpty(opt("VERTEX_PROJECT_ID"), opt("GOOGLE_CLOUD_PROJECT")),
		VertexLocation:    strDefault("VERTEX_LOCATION", "us-central1"),
		GeminiModel:       strDefault("GEMINI_MODEL", "gemini-2.0-flash-lite"),
		GenerationTimeout: durationDefault("GENERATION_TIMEOUT", 30*time.Second),

		RecommendationCacheTTL: durationDefault("RECOMMENDATION_CACHE_TTL", time.Hour),
		MentorListLimit:        intDefault("MENTOR_LIST_LIMIT", 50),

		MentorJWTSecret: opt("MENTOR_JWT_SECRET"),
		GCSBucket:       opt("GCS_BUCKET"),
		SpeechEnabled:   opt("SPEECH_ENABLED") == "true",
	}

	if origins := opt("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return cfg, nil
}

func opt(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func strDefault(key, def string) string {
	if v := opt(key); v != "" {
		return v
	}
	return def
}

func intDefault(key string, def int) int {
	v := opt(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// durationDefault accepts Go durations ("45s") or plain seconds ("45").
func durationDefault(key string, def time.Duration) time.Duration {
	v := opt(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
