package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/levelspeak/ai-teacher/internal/ai"
	"github.com/levelspeak/ai-teacher/internal/catalog"
	"github.com/levelspeak/ai-teacher/internal/config"
	"github.com/levelspeak/ai-teacher/internal/db"
	"github.com/levelspeak/ai-teacher/internal/dialogue"
	"github.com/levelspeak/ai-teacher/internal/httpapi"
	"github.com/levelspeak/ai-teacher/internal/httpapi/handlers"
	"github.com/levelspeak/ai-teacher/internal/store/redisstore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using process environment")
	}
	cfg := config.Load()

	gdb := db.Connect(cfg.DBDSN)
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := catalog.Seed(gdb); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	cache := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	gateway := ai.NewOpenAIGateway(ai.GatewayConfig{
		APIKey:          cfg.OpenAIAPIKey,
		BaseURL:         cfg.OpenAIBaseURL,
		Model:           cfg.OpenAIModel,
		TranscribeModel: cfg.TranscribeModel,
		SpeechModel:     cfg.SpeechModel,
		SpeechVoice:     cfg.SpeechVoice,
	})

	repo := dialogue.NewRepo(gdb, cfg.DemoUserEmail, cfg.DemoUserName)
	dlgSvc := dialogue.NewService(repo, gateway, dialogue.ServiceConfig{
		ContextWindow:  cfg.ContextWindow,
		ServerTTS:      cfg.FeatureServerTTS,
		MediaDir:       cfg.MediaDir,
		MediaURLPrefix: cfg.MediaURLPrefix,
	})
	catSvc := catalog.NewService(gdb, cache, cfg.CatalogCacheTTL)

	h := handlers.NewHandler(cfg, dlgSvc, catSvc, gateway)
	r := httpapi.NewRouter(cfg, h)

	log.Printf("ai-teacher listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
