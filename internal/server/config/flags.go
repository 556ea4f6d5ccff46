package config

import (
	"flag"
	"os"
	"time"

	"github.com/vrajdev/sadhana-backend/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string              HTTP bind address (e.g., ":8000")
//	-d string              PostgreSQL DSN
//	-s string              JWT HMAC secret key
//	-t int                 access token validity, hours
//	-k string              record store API key
//	-e string              record store base URL
//	-b string              record store base id (hosts per-account stats tables)
//	-accounts-table string accounts table id
//	-courses-table string  courses table id
//	-trips-table string    trips table id
//	-upstream-timeout int  record store request budget, seconds
//	-s3-user / -s3-password / -s3-bucket / -s3-region / -s3-endpoint
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers and then converted to
//     time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-k", "-e", "-b",
		"-accounts-table", "-courses-table", "-trips-table", "-upstream-timeout",
		"-s3-user", "-s3-password", "-s3-bucket", "-s3-region", "-s3-endpoint",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Hours()), "access_token_validity_duration (in hours)")

	fs.StringVar(&config.TeableAPIKey, "k", config.TeableAPIKey, "record store API key")
	fs.StringVar(&config.TeableBaseURL, "e", config.TeableBaseURL, "record store base URL")
	fs.StringVar(&config.TeableBaseID, "b", config.TeableBaseID, "record store base id")
	fs.StringVar(&config.AccountsTableID, "accounts-table", config.AccountsTableID, "accounts table id")
	fs.StringVar(&config.CoursesTableID, "courses-table", config.CoursesTableID, "courses table id")
	fs.StringVar(&config.TripsTableID, "trips-table", config.TripsTableID, "trips table id")

	upstreamTimeout := fs.Int("upstream-timeout", int(config.UpstreamTimeout.Seconds()), "record store request budget (in seconds)")

	fs.StringVar(&config.S3RootUser, "s3-user", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "s3-password", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "s3-bucket", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "s3-region", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "s3-endpoint", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Hour
	config.UpstreamTimeout = time.Duration(*upstreamTimeout) * time.Second
}
