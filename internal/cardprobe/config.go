package cardprobe

import "time"

// Config holds configuration for a probe run.
type Config struct {
	BaseURL        string        // Base URL of the service
	Usernames      []string      // Players to request
	ForumUserAgent string        // User-Agent that should receive the small card
	Workers        int           // Number of concurrent requests
	Timeout        time.Duration // HTTP request timeout
	LogFile        string        // Log file for probe output
}

// Variant is one way of requesting a card.
type Variant struct {
	Name      string
	UserAgent string
	Width     int
	Height    int
}

// Result is the outcome of one card request.
type Result struct {
	Username string
	Variant  string
	Status   int
	Width    int
	Height   int
	Duration time.Duration
	Err      error
}

// Stats holds probe statistics.
type Stats struct {
	Requested int
	Passed    int
	Failed    int
	Slowest   time.Duration
	StartTime time.Time
	Duration  time.Duration
}
