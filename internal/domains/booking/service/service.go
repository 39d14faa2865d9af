package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"

	"wakens/config"
	"wakens/infras/otel"
	"wakens/internal/domains/booking/model"
	"wakens/internal/domains/booking/model/dto"
	"wakens/internal/domains/booking/repository"
	"wakens/internal/domains/booking/workflow"
	hotelRepository "wakens/internal/domains/hotel/repository"
	notificationService "wakens/internal/domains/notification/service"
	roomRepository "wakens/internal/domains/room/repository"
	"wakens/shared/constant"
	"wakens/shared/failure"
	"wakens/shared/timezone"
	"wakens/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	List(ctx context.Context, status, search string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Claim(ctx context.Context, bookingID string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	handoff  repository.Handoff
	rooms    roomRepository.Room
	hotels   hotelRepository.Hotel
	notifier notificationService.Notification
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	handoff repository.Handoff,
	rooms roomRepository.Room,
	hotels hotelRepository.Hotel,
	notifier notificationService.Notification,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		handoff:  handoff,
		rooms:    rooms,
		hotels:   hotels,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

// Create drives a submission through the whole workflow. Persistence and
// the confirmation email run in the background once the snapshot exists;
// their failures are logged but never surface to the guest.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	checkIn, err := time.Parse(constant.StayDateFormat, req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString("checkIn must be a 2006-01-02 date")
	}

	checkOut, err := time.Parse(constant.StayDateFormat, req.CheckOut)
	if err != nil {
		return res, failure.BadRequestFromString("checkOut must be a 2006-01-02 date")
	}

	room, err := s.rooms.Get(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return res, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	hotel, err := s.hotels.Get(ctx, room.HotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel for booking")

		return res, fmt.Errorf("failed to get hotel for booking: %w", err)
	}

	flow := workflow.New()

	err = flow.ProvideDetails(workflow.StayDetails{
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		RoomID:     room.ID,
		RoomName:   room.Name,
		RoomPrice:  room.Price,
		HotelName:  hotel.Name,
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = flow.SelectPayment(req.PaymentMethod); err != nil {
		return res, err //nolint:wrapcheck
	}

	booking, err := flow.Submit(timezone.Now())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	// The handoff slot feeds the confirmation page, so it is written before
	// the response goes out. Losing it only degrades that page.
	if err := s.handoff.Put(ctx, booking); err != nil {
		log.Error().Err(err).Str("bookingId", booking.BookingID).Msg("failed to store booking handoff")
	}

	s.dispatch(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

// dispatch runs the two submission side effects concurrently. They are
// independent and unordered; neither is retried.
func (s *serviceImpl) dispatch(ctx context.Context, booking model.Booking) {
	c := context.WithoutCancel(ctx)

	go func() {
		if _, err := s.repo.Create(c, booking); err != nil {
			log.Error().Err(err).Str("bookingId", booking.BookingID).Msg("failed to persist booking")
		}
	}()

	go func() {
		if err := s.notifier.SendBookingConfirmation(c, booking); err != nil {
			log.Error().Err(err).Str("bookingId", booking.BookingID).Msg("failed to send booking confirmation")
		}
	}()
}

func (s *serviceImpl) List(ctx context.Context, status, search string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if status != constant.Empty {
		if err = validator.ValidateVar(status, "oneof=confirmed completed cancelled"); err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("unknown booking status: %s", status))
		}
	}

	bookings, err := s.repo.List(ctx, model.ListFilter{Status: status, Search: search})
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !found {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// Claim serves the confirmation page exactly once per booking. After the
// first read, or once the slot expires, the booking is only reachable
// through the persisted store.
func (s *serviceImpl) Claim(ctx context.Context, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Claim")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, found, err := s.handoff.Claim(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to claim booking handoff")

		return res, fmt.Errorf("failed to claim booking handoff: %w", err)
	}

	if !found {
		return res, failure.NotFound("booking confirmation expired or already viewed") //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}
