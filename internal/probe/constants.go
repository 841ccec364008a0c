package probe

import "time"

// Defaults for a probe run.
const (
	DefaultBaseURL      = "http://localhost:8000"
	DefaultWorkers      = 4
	DefaultRPS          = 5
	DefaultTimeout      = 10 * time.Second
	DefaultName         = "France"
	DefaultCountry      = "Japan"
	DefaultActivityType = "education"
)

const (
	headerRequestID  = "X-Request-ID"
	maxResponseBytes = 1 << 20
	workerChanFactor = 2
)
