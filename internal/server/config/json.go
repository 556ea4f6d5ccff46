package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vrajdev/sadhana-backend/internal/flagx"
	"github.com/vrajdev/sadhana-backend/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its non-empty fields are
// copied into the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	TeableBaseURL               string         `json:"teable_base_url"`
	TeableAPIKey                string         `json:"teable_api_key"`
	TeableBaseID                string         `json:"teable_base_id"`
	AccountsTableID             string         `json:"accounts_table_id"`
	CoursesTableID              string         `json:"courses_table_id"`
	TripsTableID                string         `json:"trips_table_id"`
	UpstreamTimeout             timex.Duration `json:"upstream_timeout"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics. Only fields present in the
// file override the current values.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setString(&config.EndpointAddr, c.EndpointAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.TeableBaseURL, c.TeableBaseURL)
	setString(&config.TeableAPIKey, c.TeableAPIKey)
	setString(&config.TeableBaseID, c.TeableBaseID)
	setString(&config.AccountsTableID, c.AccountsTableID)
	setString(&config.CoursesTableID, c.CoursesTableID)
	setString(&config.TripsTableID, c.TripsTableID)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	}
	if c.UpstreamTimeout.Duration != 0 {
		config.UpstreamTimeout = time.Duration(c.UpstreamTimeout.Duration)
	}
}
