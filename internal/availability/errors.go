package availability

import "errors"

// ErrUnknownTimezone is returned when an IANA zone name cannot be loaded
var ErrUnknownTimezone = errors.New("availability: unknown timezone")
