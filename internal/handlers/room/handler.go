package room

import (
	"net/http"

	"wakens/infras/otel"
	"wakens/internal/domains/room/service"
	"wakens/shared/constant"
	"wakens/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Get("/{id}/metrics", handler.GetRoomMetrics)
	})
}

func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetRoomMetrics serves the live sensor snapshot when one exists, falling
// back to the room's reference metrics otherwise. The payload's source
// field tells the two apart.
func (handler *Handler) GetRoomMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomMetrics")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	metrics, err := handler.service.Metrics(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room metrics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, metrics)
}
