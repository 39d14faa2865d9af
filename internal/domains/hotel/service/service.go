package service

import (
	"context"
	"fmt"

	"wakens/config"
	"wakens/infras/otel"
	"wakens/internal/domains/hotel/model"
	"wakens/internal/domains/hotel/model/dto"
	"wakens/internal/domains/hotel/repository"
	"wakens/shared"
	"wakens/shared/cache"
	"wakens/shared/constant"
	"wakens/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel     = "hotel:get"
	cacheListHotels   = "hotel:list"
	cacheHotelReviews = "hotel:reviews"
)

type Hotel interface {
	List(ctx context.Context, location string) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Reviews(ctx context.Context, hotelID string) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo    repository.Hotel
	reviews repository.Review
	cfg     *config.Config
	cache   cache.Cache
	otel    otel.Otel
}

func New(repo repository.Hotel, reviews repository.Review, cfg *config.Config, cache cache.Cache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:    repo,
		reviews: reviews,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// List returns the catalog, optionally narrowed by location. The reserved
// location value "eco" selects the curated eco picks instead of a
// substring match.
func (s *serviceImpl) List(ctx context.Context, location string) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheListHotels, location)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	var hotels []model.Hotel

	switch location {
	case constant.Empty:
		hotels, err = s.repo.GetAll(ctx)
	case constant.SearchPresetEco:
		hotels, err = s.repo.EcoPicks(ctx)
	default:
		hotels, err = s.repo.SearchByLocation(ctx, location)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(hotels)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Reviews(ctx context.Context, hotelID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reviews")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheHotelReviews, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel reviews")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	reviews, err := s.reviews.GetByHotel(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel reviews")

		return res, fmt.Errorf("failed to get hotel reviews: %w", err)
	}

	res.FromModels(hotelID, reviews)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel reviews to cache")
		}
	}()

	return res, nil
}
