package di

import (
	"context"

	"wakens/config"
	"wakens/infras/kafka"
	"wakens/infras/mailer"
	"wakens/infras/mongo"
	"wakens/infras/otel"
	"wakens/infras/postgres"
	"wakens/infras/redis"
	bookingRepository "wakens/internal/domains/booking/repository"
	hotelRepository "wakens/internal/domains/hotel/repository"
	roomRepository "wakens/internal/domains/room/repository"
	sensorRepository "wakens/internal/domains/sensor/repository"
	"wakens/internal/seed"
	"wakens/shared/cache"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
)

// Each backend is optional. An unconfigured backend yields a nil handle
// here, and the repository providers below swap in the in-memory demo
// implementation instead. The choice happens once, at wire time.

func ProvidePostgres(cfg *config.Config) *postgres.Connection {
	if !cfg.PostgresConfigured() {
		log.Warn().Msg("Postgres not configured, serving the built-in demo catalog")

		return nil
	}

	return postgres.New(cfg)
}

func ProvideRedis(cfg *config.Config) *goRedis.Client {
	if !cfg.RedisConfigured() {
		log.Warn().Msg("Redis not configured, sensor readings and handoffs are process-local")

		return nil
	}

	return redis.New(cfg)
}

func ProvideMongo(cfg *config.Config) *mongoDriver.Database {
	if !cfg.MongoConfigured() {
		log.Warn().Msg("MongoDB not configured, bookings are process-local")

		return nil
	}

	return mongo.New(cfg)
}

func ProvideKafka(cfg *config.Config) kafka.Client {
	if !cfg.KafkaConfigured() {
		return nil
	}

	return kafka.New(cfg)
}

func ProvideMailer(cfg *config.Config) mailer.Client {
	if !cfg.SMTPConfigured() {
		log.Warn().Msg("SMTP not configured, confirmation emails are logged only")

		return mailer.NewLogOnly()
	}

	return mailer.New(cfg)
}

func ProvideCache(client *goRedis.Client, ot otel.Otel) cache.Cache {
	if client == nil {
		return cache.NewMemoryCache()
	}

	return cache.NewRedisCache(client, ot)
}

func ProvideHotelRepository(db *postgres.Connection, ot otel.Otel) hotelRepository.Hotel {
	if db == nil {
		return hotelRepository.NewMemory(seed.Hotels())
	}

	return hotelRepository.New(db, ot)
}

func ProvideReviewRepository(db *postgres.Connection, ot otel.Otel) hotelRepository.Review {
	if db == nil {
		return hotelRepository.NewReviewMemory(seed.Reviews())
	}

	return hotelRepository.NewReview(db, ot)
}

func ProvideRoomRepository(db *postgres.Connection, ot otel.Otel) roomRepository.Room {
	if db == nil {
		return roomRepository.NewMemory(seed.Rooms())
	}

	return roomRepository.New(db, ot)
}

func ProvideMetricRepository(db *postgres.Connection, ot otel.Otel) roomRepository.Metric {
	if db == nil {
		return roomRepository.NewMetricMemory(seed.Metrics())
	}

	return roomRepository.NewMetric(db, ot)
}

func ProvideSensorRepository(client *goRedis.Client, ot otel.Otel) sensorRepository.Sensor {
	if client == nil {
		return sensorRepository.NewMemory()
	}

	return sensorRepository.New(client, ot)
}

func ProvideBookingRepository(db *mongoDriver.Database, ot otel.Otel) bookingRepository.Booking {
	if db == nil {
		return bookingRepository.NewMemory()
	}

	return bookingRepository.New(db, ot)
}

func ProvideHandoffRepository(client *goRedis.Client, cfg *config.Config, ot otel.Otel) bookingRepository.Handoff {
	if client == nil {
		return bookingRepository.NewHandoffMemory(cfg)
	}

	return bookingRepository.NewHandoff(client, cfg, ot)
}

// ProvideSimulatedRoomIDs feeds the demo sensor simulator with every room
// in the served catalog, so synthetic readings never name a room the API
// does not know about. Falls back to the built-in demo set when the
// catalog cannot be listed at startup.
func ProvideSimulatedRoomIDs(rooms roomRepository.Room) []string {
	all, err := rooms.GetAll(context.Background())
	if err != nil || len(all) == 0 {
		log.Warn().Err(err).Msg("failed to list catalog rooms, simulating the built-in demo set")

		return seed.RoomIDs()
	}

	ids := make([]string, 0, len(all))
	for _, room := range all {
		ids = append(ids, room.ID)
	}

	return ids
}
