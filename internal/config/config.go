package config

import (
	"net/url"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings shared by the preprocessor and the reporter.
// Every path defaults to the fixed file names the batch jobs have always used, so an
// empty environment reproduces the plain behaviour.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - RawPath: The raw CSV export read by the preprocessor.
// - OutputPath: The tab-separated dataset written by the preprocessor.
// - DatasetPath: The tab-separated dataset read by the reporter.
// - MetricsFile: Where to dump Prometheus metrics after a run (disabled when empty).
// - ReportXLSX: Where to write the spreadsheet of matches (disabled when empty).
// - Database: Optional PostgreSQL export target.
type Config struct {
	Env         string         `yaml:"env"`          // Env is the current environment: local, development, production.
	RawPath     string         `yaml:"raw_path"`     // RawPath is the raw CSV export.
	OutputPath  string         `yaml:"output_path"`  // OutputPath is the cleaned TSV written by the preprocessor.
	DatasetPath string         `yaml:"dataset_path"` // DatasetPath is the cleaned TSV read by the reporter.
	MetricsFile string         `yaml:"metrics_file"` // MetricsFile is the Prometheus textfile target.
	ReportXLSX  string         `yaml:"report_xlsx"`  // ReportXLSX is the spreadsheet of matches.
	Database    PostgresConfig `yaml:"postgres"`     // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     int    `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Name     string `yaml:"db_name"`                     // Name is the name of the database.
}

// Enabled reports whether a database export target was configured.
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

// DSN builds a connection URL with the credentials escaped.
func (p PostgresConfig) DSN() string {
	return (&url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   p.Host + ":" + strconv.Itoa(p.Port),
		Path:   "/" + p.Name,
	}).String()
}

// MustLoad loads the configuration from the environment (and an optional .env file)
// and returns a Config struct. It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DEMETER_ENV", "production")
	v.SetDefault("DEMETER_RAW_PATH", "active-businesses-raw.csv")
	v.SetDefault("DEMETER_OUTPUT_PATH", "active-businesses.tsv")
	v.SetDefault("DEMETER_DATASET_PATH", "src/active-businesses.tsv")
	v.SetDefault("DEMETER_METRICS_FILE", "")
	v.SetDefault("DEMETER_REPORT_XLSX", "")
	v.SetDefault("DB_PORT", "5432")

	dbPort, err := strconv.Atoi(v.GetString("DB_PORT"))
	if err != nil {
		panic("failed to parse database port from configuration")
	}

	return &Config{
		Env:         v.GetString("DEMETER_ENV"),
		RawPath:     v.GetString("DEMETER_RAW_PATH"),
		OutputPath:  v.GetString("DEMETER_OUTPUT_PATH"),
		DatasetPath: v.GetString("DEMETER_DATASET_PATH"),
		MetricsFile: v.GetString("DEMETER_METRICS_FILE"),
		ReportXLSX:  v.GetString("DEMETER_REPORT_XLSX"),
		Database: PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     dbPort,
			User:     v.GetString("DB_USERNAME"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
	}
}
