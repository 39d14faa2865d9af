package worker

import (
	"context"
	"time"

	"wakens/config"
	"wakens/infras/kafka"
	"wakens/infras/otel"
	"wakens/internal/domains/sensor/model/dto"
	"wakens/internal/domains/sensor/service"
	"wakens/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const simulateInterval = 2 * time.Minute

// Worker feeds readings into the sensor service. With a broker configured it
// consumes the readings topic; otherwise it synthesizes readings for the
// given rooms on a fixed interval so the demo dataset stays fresh.
type Worker struct {
	service service.Sensor
	kafka   kafka.Client
	config  *config.Config
	roomIDs []string
	otel    otel.Otel
}

func New(svc service.Sensor, kafkaClient kafka.Client, cfg *config.Config, roomIDs []string, otel otel.Otel) *Worker {
	return &Worker{
		service: svc,
		kafka:   kafkaClient,
		config:  cfg,
		roomIDs: roomIDs,
		otel:    otel,
	}
}

func (w *Worker) Run(ctx context.Context) {
	if w.config.KafkaConfigured() && w.kafka != nil {
		log.Info().Str("topic", w.config.Kafka.ReadingsTopic).Msg("Starting sensor reading consumer.")

		w.kafka.Consume(ctx, w.config.Kafka.ConsumerGroup, w.config.Kafka.ReadingsTopic, w.handleMessage)

		return
	}

	log.Info().Int("rooms", len(w.roomIDs)).Msg("No broker configured, starting simulated sensor feed.")

	w.simulate(ctx)
}

func (w *Worker) handleMessage(msg kafkaGo.Message) {
	ctx, scope := w.otel.NewScope(context.Background(), constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".HandleReading")
	defer scope.End()

	req, err := kafka.DecodeKafkaMessage[dto.ReadingRequest](msg)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode reading message")

		return
	}

	if err := w.service.Ingest(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("roomId", req.RoomID).Msg("failed to ingest reading")
	}
}

func (w *Worker) simulate(ctx context.Context) {
	w.tick(ctx)

	ticker := time.NewTicker(simulateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Simulated sensor feed stopped.")

			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	now := time.Now()

	for _, roomID := range w.roomIDs {
		req := SimulatedReading(roomID, now)

		if err := w.service.Ingest(ctx, req); err != nil {
			log.Error().Err(err).Str("roomId", roomID).Msg("failed to ingest simulated reading")
		}
	}
}
