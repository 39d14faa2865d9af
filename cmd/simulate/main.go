// Command simulate publishes synthetic sensor readings to the Kafka feed so
// the pipeline can be exercised without real room hardware.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"wakens/config"
	"wakens/di"
	"wakens/infras/kafka"
	"wakens/infras/otel"
	"wakens/internal/domains/sensor/worker"
	"wakens/shared/logger"

	"github.com/rs/zerolog/log"
)

const publishInterval = 2 * time.Minute

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if !cfg.KafkaConfigured() {
		log.Fatal().Msg("Kafka brokers are not configured, nothing to publish to")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := kafka.New(cfg)

	// Same room set the API serves, whichever catalog backend is wired.
	rooms := di.ProvideRoomRepository(di.ProvidePostgres(cfg), otel.New(cfg))
	roomIDs := di.ProvideSimulatedRoomIDs(rooms)

	publish(ctx, client, cfg.Kafka.ReadingsTopic, roomIDs)

	ticker := time.NewTicker(publishInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutting down reading simulator")

			return
		case <-ticker.C:
			publish(ctx, client, cfg.Kafka.ReadingsTopic, roomIDs)
		}
	}
}

func publish(ctx context.Context, client kafka.Client, topic string, roomIDs []string) {
	now := time.Now().UTC()

	messages := make([]kafka.Message, len(roomIDs))

	for i, roomID := range roomIDs {
		messages[i] = kafka.Message{
			Key:   roomID,
			Value: worker.SimulatedReading(roomID, now),
		}
	}

	if err := client.SendMessages(ctx, topic, messages...); err != nil {
		log.Error().Err(err).Msg("Failed to publish simulated readings")

		return
	}

	log.Info().Int("rooms", len(roomIDs)).Msg("Published simulated readings")
}
