// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis proposal session keys.
const SessionCachePrefix = "sched:session:"

// SessionCacheTTL is the time-to-live for cached proposal sessions.
const SessionCacheTTL = 15 * time.Minute
