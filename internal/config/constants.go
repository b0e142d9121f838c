package config

import "time"

// Startup timeout for pinging network-backed storage.
const StorePingTimeout = 5 * time.Second
