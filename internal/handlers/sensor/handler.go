package sensor

import (
	"net/http"
	"strconv"

	"wakens/infras/otel"
	"wakens/internal/domains/sensor/service"
	"wakens/shared/constant"
	"wakens/shared/failure"
	"wakens/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Sensor
	otel    otel.Otel
}

func New(service service.Sensor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sensors", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{roomId}", handler.GetSnapshot)
		routerGroup.Get("/history/{roomId}", handler.GetHistory)
	})
}

// GetRooms lists the rooms that have reported at least one reading.
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.Rooms(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms with sensor data")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

func (handler *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSnapshot")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)

	snapshot, err := handler.service.Snapshot(ctx, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sensor snapshot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, snapshot)
}

func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)

	limit := 0

	if raw := r.URL.Query().Get(constant.RequestParamLimit); raw != constant.Empty {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			scope.TraceError(failure.InvalidLimitParam)

			response.WithError(w, failure.InvalidLimitParam)

			return
		}

		limit = parsed
	}

	history, err := handler.service.History(ctx, roomID, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sensor history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, history)
}
