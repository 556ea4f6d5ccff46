package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration values from environment variables.
// Only variables that are set override the current values; durations are
// parsed with time.ParseDuration and ignored when malformed.
func parseEnv(config *Config) {

	setString := func(dst *string, name string) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}
	setDuration := func(dst *time.Duration, name string) {
		if v, ok := os.LookupEnv(name); ok {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	setString(&config.EndpointAddr, "ADDRESS")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.SecretKey, "SECRET_KEY")
	setString(&config.TeableBaseURL, "TEABLE_BASE_URL")
	setString(&config.TeableAPIKey, "TEABLE_API_KEY")
	setString(&config.TeableBaseID, "TEABLE_BASE_ID")
	setString(&config.AccountsTableID, "ACCOUNTS_TABLE_ID")
	setString(&config.CoursesTableID, "COURSES_TABLE_ID")
	setString(&config.TripsTableID, "TRIPS_TABLE_ID")
	setString(&config.S3RootUser, "S3_ROOT_USER")
	setString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")

	setDuration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_VALIDITY_DURATION")
	setDuration(&config.UpstreamTimeout, "UPSTREAM_TIMEOUT")
}
