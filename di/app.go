package di

import (
	"wakens/internal/domains/sensor/worker"
	"wakens/transport/http"
)

// App bundles everything cmd/app runs: the HTTP server and the sensor
// ingestion worker.
type App struct {
	HTTP   *http.HTTP
	Worker *worker.Worker
}
