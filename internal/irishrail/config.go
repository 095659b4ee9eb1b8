package irishrail

import "time"

const (
	DefaultBaseURL = "http://api.irishrail.ie/realtime/realtime.asmx"
	DefaultTimeout = 10 * time.Second
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// Retries is the number of extra attempts after a failed request.
	Retries int
}

func (config Config) baseURL() string {
	if config.BaseURL == "" {
		return DefaultBaseURL
	}
	return config.BaseURL
}

func (config Config) timeout() time.Duration {
	if config.Timeout <= 0 {
		return DefaultTimeout
	}
	return config.Timeout
}
