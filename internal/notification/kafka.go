package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/invicta-fest/festival-backend/config"
	"github.com/invicta-fest/festival-backend/internal/registration"
)

// KafkaPublisher pushes registration messages onto the festival topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher returns nil when no brokers are configured; callers fall
// back to direct dispatch in that case.
func NewKafkaPublisher(cfg *config.Config) *KafkaPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func (p *KafkaPublisher) PublishRegistration(ctx context.Context, msg registration.SubmittedMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.ReceiptNo),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// DirectPublisher invokes the notification service in-process. Used when
// Kafka is not configured so confirmations still go out.
type DirectPublisher struct {
	Svc *Service
}

func (p *DirectPublisher) PublishRegistration(ctx context.Context, msg registration.SubmittedMessage) error {
	go func() {
		if err := p.Svc.HandleRegistrationSubmitted(context.Background(), msg); err != nil {
			log.Printf("direct registration dispatch failed: %v", err)
		}
	}()
	return nil
}

// StartKafkaConsumer launches a background reader that feeds registration
// messages into the notification service. No-op when brokers are absent.
func StartKafkaConsumer(ctx context.Context, cfg *config.Config, svc *Service) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("Kafka not configured, registration notifications run in-process")
		return
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaTopic,
		GroupID:  "festival-notifications",
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	go func() {
		defer reader.Close()
		for {
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
					return
				}
				log.Printf("kafka read error: %v", err)
				time.Sleep(time.Second)
				continue
			}

			var msg registration.SubmittedMessage
			if err := json.Unmarshal(m.Value, &msg); err != nil {
				log.Printf("skipping malformed registration message at offset %d: %v", m.Offset, err)
				continue
			}
			if err := svc.HandleRegistrationSubmitted(ctx, msg); err != nil {
				log.Printf("failed to process registration %s: %v", msg.ReceiptNo, err)
			}
		}
	}()
}
