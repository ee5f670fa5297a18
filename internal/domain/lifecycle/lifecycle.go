// Package lifecycle holds process lifecycle constants shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as database pings and server shutdown.
const DefaultTimeout = 15 * time.Second
