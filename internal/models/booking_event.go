package models

// BookingEvent is published to Kafka whenever a booking is created or cancelled.
type BookingEvent struct {
	EventID    string  `json:"event_id"`    // EventID is a unique identifier for the event.
	Timestamp  int64   `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	Operation  string  `json:"operation"`   // Operation is "booking.created" or "booking.cancelled".
	BookingID  string  `json:"booking_id"`  // BookingID identifies the booking.
	PropertyID string  `json:"property_id"` // PropertyID identifies the booked property.
	GuestEmail string  `json:"guest_email"` // GuestEmail is the booking guest.
	CheckIn    string  `json:"check_in"`    // CheckIn is the first night, YYYY-MM-DD.
	CheckOut   string  `json:"check_out"`   // CheckOut is the departure day, YYYY-MM-DD.
	TotalPrice float64 `json:"total_price"` // TotalPrice is the snapshotted booking price.
}
