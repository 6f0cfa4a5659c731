package queue

import (
	"context"
	"log"
	"os"
	"strings"

	"clipforge/config"
	"clipforge/pipeline"
	"clipforge/types"
)

// GetBrokers reads KAFKA_BROKERS as a comma-separated list.
func GetBrokers() []string {
	raw := os.Getenv("KAFKA_BROKERS")
	if raw == "" {
		raw = "localhost:9092"
	}
	brokers := strings.Split(raw, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}

// GetTopic reads KAFKA_TOPIC.
func GetTopic() string {
	if topic := os.Getenv("KAFKA_TOPIC"); topic != "" {
		return topic
	}
	return "video-generation-requests"
}

// GetGroupID reads KAFKA_GROUP_ID.
func GetGroupID() string {
	if group := os.Getenv("KAFKA_GROUP_ID"); group != "" {
		return group
	}
	return "clipforge-workers"
}

// NewGenerationConsumer wires a consumer that runs the full pipeline
// for each queued generation request. Malformed and invalid requests
// are marked and skipped; transient failures leave the message for
// retry.
func NewGenerationConsumer(p *pipeline.Pipeline) (*Consumer, error) {
	handler := &TypedMessageHandler[types.GenerationRequest]{
		Validate: func(req *types.GenerationRequest) bool {
			if strings.TrimSpace(req.Prompt) == "" {
				log.Println("Skipping request with empty prompt")
				return false
			}
			if req.Duration != 0 && (req.Duration < config.MinClipSeconds || req.Duration > config.MaxClipSeconds) {
				log.Printf("Skipping request with duration %d out of range", req.Duration)
				return false
			}
			return true
		},
		Process: func(ctx context.Context, req *types.GenerationRequest) error {
			project, _, err := p.Run(ctx, *req)
			if err != nil {
				kind := pipeline.KindOf(err)
				if kind == pipeline.KindInvalidInput || kind == pipeline.KindNotFound {
					log.Printf("Dropping unprocessable request (%s): %v", kind, err)
					return nil
				}
				return err
			}
			log.Printf("Completed queued job: project %s", project.ID)
			return nil
		},
		AlwaysMark: true,
	}

	return NewConsumer(ConsumerConfig{
		Brokers: GetBrokers(),
		Topic:   GetTopic(),
		GroupID: GetGroupID(),
		Handler: handler,
	})
}

// StartWithGracefulShutdown runs the consumer until ctx is canceled,
// then closes it.
func StartWithGracefulShutdown(ctx context.Context, c *Consumer) error {
	if err := c.Start(ctx); err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		if err := c.Close(); err != nil {
			log.Printf("Error closing Kafka consumer: %v", err)
		}
	}()
	return nil
}
