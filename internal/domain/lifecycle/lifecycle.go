// Package lifecycle holds shared timeouts for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful shutdown operations.
const DefaultTimeout = 10 * time.Second
