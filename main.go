package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"clipforge/api"
	"clipforge/common"
	"clipforge/config"
	"clipforge/imagegen"
	"clipforge/pipeline"
	"clipforge/publish"
	"clipforge/queue"
	"clipforge/script"
	"clipforge/store"
	"clipforge/topics"
	"clipforge/tts"
	"clipforge/video"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	enableKafka := flag.Bool("kafka", false, "Consume generation requests from Kafka")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scripts, err := script.NewGenerator()
	if err != nil {
		log.Fatalf("Failed to initialize script generator: %v", err)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}
	images := imagegen.New(apiKey)

	speech, err := tts.NewClient()
	if err != nil {
		log.Fatalf("Failed to initialize speech client: %v", err)
	}

	documents, err := store.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	defer documents.Close()

	assembler := video.NewAssembler(config.GetFFmpegPath(), config.TranscodeTimeout)

	deps := pipeline.Deps{
		Scripts:   scripts,
		Images:    images,
		Speech:    speech,
		Assembler: assembler,
		Store:     documents,
	}

	// Artifact upload and publishing are optional; skipped when unconfigured.
	if s3cfg, ok := common.S3ConfigFromEnv(); ok {
		uploader, err := common.NewS3(ctx, s3cfg)
		if err != nil {
			log.Printf("Warning: failed to init S3 client: %v (uploads disabled)", err)
		} else {
			deps.Uploader = uploader
			log.Printf("S3 uploads enabled (bucket %s)", s3cfg.Bucket)
		}
	} else {
		log.Println("S3 not configured; skipping artifact uploads")
	}

	if saFile := os.Getenv("YOUTUBE_SERVICE_ACCOUNT_FILE"); saFile != "" {
		publisher, err := publish.NewYouTube(ctx, saFile)
		if err != nil {
			log.Printf("Warning: failed to init YouTube client: %v (publishing disabled)", err)
		} else {
			deps.Publisher = publisher
			log.Println("YouTube publishing enabled")
		}
	} else {
		log.Println("YouTube not configured; skipping publishing")
	}

	p := pipeline.New(deps)

	if *enableKafka {
		consumer, err := queue.NewGenerationConsumer(p)
		if err != nil {
			log.Fatalf("Failed to create Kafka consumer: %v", err)
		}
		if err := queue.StartWithGracefulShutdown(ctx, consumer); err != nil {
			log.Fatalf("Failed to start Kafka consumer: %v", err)
		}
	}

	r := api.NewRouter(p, documents, speech, topics.NewSuggester())

	addr := config.GetPort()
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		log.Println("Shutting down API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
	log.Println("Server stopped")
}
