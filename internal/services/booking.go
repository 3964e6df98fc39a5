package services

//go:generate mockgen -source=booking.go -destination=booking_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/logger"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/repositories"
)

// Booking event operations
const (
	OperationBookingCreated   = "booking.created"
	OperationBookingCancelled = "booking.cancelled"
)

// PropertyLocker serializes writers on one property for the current transaction.
type PropertyLocker interface {
	LockByID(ctx context.Context, propertyID uuid.UUID) error
}

// BookingReader defines read operations for bookings.
type BookingReader interface {
	GetByID(ctx context.Context, bookingID uuid.UUID) (*models.BookingDB, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, status *string) ([]models.BookingDB, error)
	ConfirmedRanges(ctx context.Context, propertyID uuid.UUID) ([]booking.DateRange, error)
	ListByGuestEmail(ctx context.Context, email string) ([]models.BookingDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.BookingDB, error)
}

// BookingWriter defines write operations for bookings.
type BookingWriter interface {
	Save(ctx context.Context, b *models.BookingDB) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) (*models.BookingDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Quote is the availability and price of a stay at one property.
type Quote struct {
	PropertyID uuid.UUID
	Stay       booking.DateRange
	Available  bool
	Nights     int
	TotalPrice float64
}

// BookingService handles availability checks, bookings and event publishing.
type BookingService struct {
	users       UserReader
	properties  PropertyReader
	locker      PropertyLocker
	reader      BookingReader
	writer      BookingWriter
	kafkaWriter KafkaWriter
}

// NewBookingService creates a new BookingService. kafkaWriter may be nil.
func NewBookingService(
	users UserReader,
	properties PropertyReader,
	locker PropertyLocker,
	reader BookingReader,
	writer BookingWriter,
	kafkaWriter KafkaWriter,
) *BookingService {
	return &BookingService{
		users:       users,
		properties:  properties,
		locker:      locker,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

func (svc *BookingService) property(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error) {
	property, err := svc.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// CheckAvailability reports whether no confirmed booking of the property
// overlaps the stay.
func (svc *BookingService) CheckAvailability(ctx context.Context, propertyID uuid.UUID, stay booking.DateRange) (bool, error) {
	if _, err := svc.property(ctx, propertyID); err != nil {
		return false, err
	}
	confirmed, err := svc.reader.ConfirmedRanges(ctx, propertyID)
	if err != nil {
		return false, err
	}
	return booking.IsAvailable(stay, confirmed), nil
}

// Quote returns availability and the price the stay would cost at the current rate.
func (svc *BookingService) Quote(ctx context.Context, propertyID uuid.UUID, stay booking.DateRange) (*Quote, error) {
	property, err := svc.property(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	confirmed, err := svc.reader.ConfirmedRanges(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	total, err := booking.PriceFor(property.PricePerNight, stay)
	if err != nil {
		return nil, err
	}
	return &Quote{
		PropertyID: propertyID,
		Stay:       stay,
		Available:  booking.IsAvailable(stay, confirmed),
		Nights:     stay.Nights(),
		TotalPrice: total,
	}, nil
}

// Create books the stay for the caller. The property row is locked for the
// rest of the transaction, so the availability check and the insert are
// atomic with respect to other bookings of the same property.
func (svc *BookingService) Create(ctx context.Context, id booking.Identity, propertyID uuid.UUID, stay booking.DateRange) (*models.BookingDB, error) {
	log := logger.FromContext(ctx)

	if err := booking.Authorize(id, booking.ActionCreateBooking, booking.Resource{}); err != nil {
		return nil, err
	}

	guest, err := svc.users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrUserNotFound
	}

	property, err := svc.property(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if err := svc.locker.LockByID(ctx, propertyID); err != nil {
		log.Errorw("failed to lock property", "property_id", propertyID, "err", err)
		return nil, err
	}

	confirmed, err := svc.reader.ConfirmedRanges(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !booking.IsAvailable(stay, confirmed) {
		return nil, ErrDatesUnavailable
	}

	total, err := booking.PriceFor(property.PricePerNight, stay)
	if err != nil {
		return nil, err
	}

	b := &models.BookingDB{
		PropertyID:   propertyID,
		GuestName:    guest.Name,
		GuestEmail:   guest.Email,
		CheckInDate:  stay.CheckIn,
		CheckOutDate: stay.CheckOut,
		TotalPrice:   total,
		Status:       models.BookingConfirmed,
	}
	if err := svc.writer.Save(ctx, b); err != nil {
		if errors.Is(err, repositories.ErrExclusionViolation) {
			return nil, ErrDatesUnavailable
		}
		log.Errorw("failed to save booking", "err", err)
		return nil, err
	}

	log.Infow("booking created", "booking_id", b.BookingID, "property_id", propertyID, "stay", stay.String(), "total_price", total)
	svc.publish(ctx, OperationBookingCreated, b)
	return b, nil
}

func (svc *BookingService) ownBooking(ctx context.Context, id booking.Identity, action booking.Action, bookingID uuid.UUID) (*models.BookingDB, error) {
	b, err := svc.reader.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if err := booking.Authorize(id, action, booking.Resource{GuestEmail: b.GuestEmail}); err != nil {
		return nil, err
	}
	return b, nil
}

// Get returns one of the caller's bookings.
func (svc *BookingService) Get(ctx context.Context, id booking.Identity, bookingID uuid.UUID) (*models.BookingDB, error) {
	return svc.ownBooking(ctx, id, booking.ActionViewBooking, bookingID)
}

// Cancel cancels one of the caller's bookings. Cancelling twice is a no-op.
func (svc *BookingService) Cancel(ctx context.Context, id booking.Identity, bookingID uuid.UUID) (*models.BookingDB, error) {
	b, err := svc.ownBooking(ctx, id, booking.ActionCancelBooking, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingCancelled {
		return b, nil
	}

	cancelled, err := svc.writer.UpdateStatus(ctx, bookingID, models.BookingCancelled)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to cancel booking", "booking_id", bookingID, "err", err)
		return nil, err
	}
	if cancelled == nil {
		return nil, ErrBookingNotFound
	}
	svc.publish(ctx, OperationBookingCancelled, cancelled)
	return cancelled, nil
}

// ListForGuest returns the bookings made under the caller's email.
func (svc *BookingService) ListForGuest(ctx context.Context, id booking.Identity) ([]models.BookingDB, error) {
	if err := booking.Authorize(id, booking.ActionListGuestBookings, booking.Resource{}); err != nil {
		return nil, err
	}
	return svc.reader.ListByGuestEmail(ctx, id.Email)
}

// ListForOwner returns the bookings of every property the caller owns.
func (svc *BookingService) ListForOwner(ctx context.Context, id booking.Identity) ([]models.BookingDB, error) {
	if err := booking.Authorize(id, booking.ActionListOwnerBookings, booking.Resource{OwnerID: id.UserID}); err != nil {
		return nil, err
	}
	return svc.reader.ListByOwner(ctx, id.UserID)
}

// ListForProperty returns the bookings of a property owned by the caller,
// optionally filtered by status.
func (svc *BookingService) ListForProperty(ctx context.Context, id booking.Identity, propertyID uuid.UUID, status *string) ([]models.BookingDB, error) {
	if status != nil && *status != models.BookingConfirmed && *status != models.BookingCancelled {
		return nil, ErrInvalidStatus
	}
	property, err := svc.property(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := booking.Authorize(id, booking.ActionListPropertyBookings, booking.Resource{OwnerID: property.OwnerID}); err != nil {
		return nil, err
	}
	return svc.reader.ListByProperty(ctx, propertyID, status)
}

// publish sends a booking event to Kafka. Failures are logged, never returned.
func (svc *BookingService) publish(ctx context.Context, operation string, b *models.BookingDB) {
	log := logger.FromContext(ctx)
	if svc.kafkaWriter == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "booking_id", b.BookingID)
		return
	}

	event := models.BookingEvent{
		EventID:    uuid.New().String(),
		Timestamp:  time.Now().Unix(),
		Operation:  operation,
		BookingID:  b.BookingID.String(),
		PropertyID: b.PropertyID.String(),
		GuestEmail: b.GuestEmail,
		CheckIn:    b.CheckInDate.Format(booking.DateLayout),
		CheckOut:   b.CheckOutDate.Format(booking.DateLayout),
		TotalPrice: b.TotalPrice,
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal booking event for Kafka", "booking_id", b.BookingID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PropertyID),
		Value: data,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish booking event to Kafka", "booking_id", b.BookingID, "operation", operation, "error", err)
		return
	}
	log.Infow("Booking event published to Kafka", "booking_id", b.BookingID, "operation", operation)
}
