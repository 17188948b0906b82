// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// BookingSessionPrefix is the prefix used for Redis booking wizard session keys.
const BookingSessionPrefix = "bookingSession:"

// BookingSessionTTL is how long an idle booking wizard session survives.
const BookingSessionTTL = 30 * time.Minute
