package domain

// Slot grid
const (
	SlotStrideMinutes = 30
)

// Business validation constants
const (
	MinSessionDurationMinutes   = 5
	MaxSessionDurationMinutes   = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxClientNameLength         = 200
)

// Time format constants
const (
	SlotDisplayFormat   = "3:04 PM" // h:mm a
	DefaultPracticeZone = "UTC"
)
