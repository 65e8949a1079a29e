// Package lifecycle holds process start/stop conventions shared by the
// infrastructure providers.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of the
// infrastructure clients.
const DefaultTimeout = 10 * time.Second
