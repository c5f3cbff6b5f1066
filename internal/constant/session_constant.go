package constant

// BookingServiceFee is the flat platform fee, in dollars, added on top of the
// expert's time for every booking.
const BookingServiceFee = 5.0

// Session chat limits.
const (
	MaxMessageTextLength = 2000
	MaxMessageHistory    = 500
)
