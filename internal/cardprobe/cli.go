package cardprobe

import (
	"os"
	"strings"

	"github.com/okian/skycard/pkg/logger"
)

// SetupLogging initializes the logger, teeing into logFile when set.
func SetupLogging(logFile string) error {
	var opts []logger.Option
	if logFile != "" {
		opts = append(opts, logger.WithFile(logFile, 0, 0))
	}
	return logger.Init(opts...)
}

// ParseUsernames splits a comma-separated list, dropping blanks.
func ParseUsernames(list string) []string {
	var out []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// ShowHelp prints usage information for the probe tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`skycard card probe
==================

Requests stat cards from a running service in full and forum sizes and
checks that each one is a PNG of the expected dimensions.

Usage:
  go run ./cmd/cardprobe [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -users string
        Comma-separated usernames to request (default "Notch")
  -forum-ua string
        User-Agent that receives the downscaled card
  -workers int
        Number of concurrent requests (default 4)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Also write output to this file
  -help
        Show this help message
`)
}
