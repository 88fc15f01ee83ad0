package cmd

import "time"

// Config carries all runtime settings of the service, loaded from the
// environment by the entry point.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	UserServiceBaseURL    string
	UserServicePathPrefix string
	UserServiceTimeout    time.Duration

	BreakerFailureRateThreshold float64
	BreakerMinimumRequests      uint32
	BreakerOpenTimeout          time.Duration
	BreakerHalfOpenMaxRequests  uint32

	JWTSecret string

	KafkaHost              string
	KafkaOrderChangedTopic string

	StatusReportSchedule string
}
