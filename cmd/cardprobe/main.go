package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/skycard/internal/adapters/http/api"
	"github.com/okian/skycard/internal/cardprobe"
)

// Default configuration constants.
const (
	defaultWorkers      = 4
	defaultTimeout      = 30 * time.Second
	defaultProbeTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		users   = flag.String("users", "Notch", "Comma-separated usernames to request")
		forumUA = flag.String("forum-ua", api.DefaultForumUserAgent, "User-Agent that receives the downscaled card")
		workers = flag.Int("workers", defaultWorkers, "Number of concurrent requests")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile = flag.String("log", "", "Also write output to this file")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		cardprobe.ShowHelp()
		return
	}

	if err := cardprobe.SetupLogging(*logFile); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultProbeTimeout)
	defer cancel()

	config := &cardprobe.Config{
		BaseURL:        *baseURL,
		Usernames:      cardprobe.ParseUsernames(*users),
		ForumUserAgent: *forumUA,
		Workers:        *workers,
		Timeout:        *timeout,
		LogFile:        *logFile,
	}

	if _, err := cardprobe.Run(ctx, config); err != nil {
		_, _ = os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
