package responses

import "time"

type Health struct {
	Environment string    `json:"environment"`
	Uptime      float64   `json:"uptime"`
	Timestamp   time.Time `json:"timestamp"`
}
