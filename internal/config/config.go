package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// DSN demo：
	// root:@tcp(127.0.0.1:3306)/ai_teacher?charset=utf8mb4&parseTime=true&loc=Local
	DBDSN string `env:"DB_DSN" envDefault:"root:@tcp(127.0.0.1:3306)/ai_teacher?charset=utf8mb4&parseTime=true&loc=Local"`

	// OpenAI
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL"`
	OpenAIModel     string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	TranscribeModel string `env:"OPENAI_TRANSCRIBE_MODEL" envDefault:"whisper-1"`
	SpeechModel     string `env:"OPENAI_SPEECH_MODEL" envDefault:"tts-1"`
	SpeechVoice     string `env:"OPENAI_SPEECH_VOICE" envDefault:"alloy"`

	// Server-side speech synthesis for chat replies (off by default; the
	// browser falls back to its own speechSynthesis when disabled).
	FeatureServerTTS bool `env:"FEATURE_SERVER_TTS" envDefault:"false"`

	DemoUserEmail string `env:"DEMO_USER_EMAIL" envDefault:"demo@ai-teacher.local"`
	DemoUserName  string `env:"DEMO_USER_NAME" envDefault:"Demo User"`

	ContextWindow int `env:"CHAT_CONTEXT_WINDOW_SIZE" envDefault:"12"`

	MediaDir       string `env:"MEDIA_DIR" envDefault:"web/media/tts"`
	MediaURLPrefix string `env:"MEDIA_URL_PREFIX" envDefault:"/media/tts"`
	WebDir         string `env:"WEB_DIR" envDefault:"web"`

	// Catalog cache (disabled when REDIS_ADDR is empty)
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`
}

func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
