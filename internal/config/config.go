package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is loaded once at startup and passed by pointer to every constructor.
// Nothing below the cmd layer reads the environment directly.
type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	ERP       ERP       `mapstructure:",squash"`
	Reference Reference `mapstructure:",squash"`
	Snapshot  Snapshot  `mapstructure:",squash"`
	Publisher Publisher `mapstructure:",squash"`
	Git       Git       `mapstructure:",squash"`
	GCS       GCS       `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Sync      Sync      `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Server struct {
	Enabled        bool     `mapstructure:"api_enabled"`
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type ERP struct {
	URL            string        `mapstructure:"d365_url"`
	EntityPath     string        `mapstructure:"erp_entity_path"`
	TenantID       string        `mapstructure:"tenant_id"`
	ClientID       string        `mapstructure:"client_id"`
	ClientSecret   string        `mapstructure:"client_secret"`
	AuthorityURL   string        `mapstructure:"erp_authority_url"`
	Resource       string        `mapstructure:"erp_resource"`
	RequestTimeout time.Duration `mapstructure:"erp_request_timeout"`
	PageSize       int           `mapstructure:"erp_page_size"`
	MaxPages       int           `mapstructure:"erp_max_pages"`
	FieldStore     string        `mapstructure:"erp_field_store"`
	FieldAmount    string        `mapstructure:"erp_field_amount"`
	FieldDate      string        `mapstructure:"erp_field_date"`
}

type Reference struct {
	Source          string `mapstructure:"reference_source"`
	CredentialsFile string `mapstructure:"reference_credentials_file"`
	ColumnStore     string `mapstructure:"reference_column_store"`
	ColumnName      string `mapstructure:"reference_column_name"`
	ColumnCity      string `mapstructure:"reference_column_city"`
	ColumnArea      string `mapstructure:"reference_column_area"`
	ColumnTarget    string `mapstructure:"reference_column_target"`
}

type Snapshot struct {
	OutputPath    string        `mapstructure:"snapshot_output_path"`
	DisplayOffset time.Duration `mapstructure:"snapshot_display_utc_offset"`
	TouchFile     string        `mapstructure:"snapshot_touch_file"`
}

type Publisher struct {
	Kind string `mapstructure:"publisher_kind"`
}

type Git struct {
	RepoDir        string        `mapstructure:"git_repo_dir"`
	RemoteURL      string        `mapstructure:"git_remote_url"`
	Branch         string        `mapstructure:"git_branch"`
	Token          string        `mapstructure:"git_token"`
	TokenUser      string        `mapstructure:"git_token_user"`
	AuthorName     string        `mapstructure:"git_author_name"`
	AuthorEmail    string        `mapstructure:"git_author_email"`
	CommitMessage  string        `mapstructure:"git_commit_message"`
	CommandTimeout time.Duration `mapstructure:"git_command_timeout"`
}

type GCS struct {
	Bucket       string `mapstructure:"gcs_bucket"`
	Object       string `mapstructure:"gcs_object"`
	CacheControl string `mapstructure:"gcs_cache_control"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	ArtifactName string `mapstructure:"database_artifact_name"`
}

type Sync struct {
	CronSchedule string `mapstructure:"sync_cron"`
	Enabled      bool   `mapstructure:"sync_enabled"`
	RunOnStart   bool   `mapstructure:"sync_run_on_start"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	viper.SetDefault("API_ENABLED", false)
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("D365_URL", "https://orangepax.operations.eu.dynamics.com")
	viper.SetDefault("ERP_ENTITY_PATH", "/data/RetailTransactions")
	viper.SetDefault("TENANT_ID", "")
	viper.SetDefault("CLIENT_ID", "")
	viper.SetDefault("CLIENT_SECRET", "")
	viper.SetDefault("ERP_AUTHORITY_URL", "https://login.microsoftonline.com")
	viper.SetDefault("ERP_RESOURCE", "")            // empty = scheme+host of D365_URL
	viper.SetDefault("ERP_REQUEST_TIMEOUT", "120s") // per HTTP call
	viper.SetDefault("ERP_PAGE_SIZE", 5000)
	viper.SetDefault("ERP_MAX_PAGES", 1000)
	viper.SetDefault("ERP_FIELD_STORE", "OperatingUnitNumber")
	viper.SetDefault("ERP_FIELD_AMOUNT", "PaymentAmount")
	viper.SetDefault("ERP_FIELD_DATE", "TransactionDate")

	viper.SetDefault("REFERENCE_SOURCE", "mapping.xlsx")
	viper.SetDefault("REFERENCE_CREDENTIALS_FILE", "")
	viper.SetDefault("REFERENCE_COLUMN_STORE", "")
	viper.SetDefault("REFERENCE_COLUMN_NAME", "")
	viper.SetDefault("REFERENCE_COLUMN_CITY", "")
	viper.SetDefault("REFERENCE_COLUMN_AREA", "")
	viper.SetDefault("REFERENCE_COLUMN_TARGET", "")

	viper.SetDefault("SNAPSHOT_OUTPUT_PATH", "data.json")
	viper.SetDefault("SNAPSHOT_DISPLAY_UTC_OFFSET", "5h")
	viper.SetDefault("SNAPSHOT_TOUCH_FILE", "")

	viper.SetDefault("PUBLISHER_KIND", "git")

	viper.SetDefault("GIT_REPO_DIR", ".")
	viper.SetDefault("GIT_REMOTE_URL", "")
	viper.SetDefault("GIT_BRANCH", "main")
	viper.SetDefault("GIT_TOKEN", "")
	viper.SetDefault("GIT_TOKEN_USER", "x-access-token")
	viper.SetDefault("GIT_AUTHOR_NAME", "sales-bot")
	viper.SetDefault("GIT_AUTHOR_EMAIL", "sales-bot@users.noreply.github.com")
	viper.SetDefault("GIT_COMMIT_MESSAGE", "chore: update sales snapshot [skip ci]")
	viper.SetDefault("GIT_COMMAND_TIMEOUT", "2m")

	viper.SetDefault("GCS_BUCKET", "")
	viper.SetDefault("GCS_OBJECT", "data.json")
	viper.SetDefault("GCS_CACHE_CONTROL", "no-cache")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")
	viper.SetDefault("DATABASE_ARTIFACT_NAME", "data.json")

	viper.SetDefault("SYNC_CRON", "*/10 * * * *") // every 10 minutes
	viper.SetDefault("SYNC_ENABLED", true)
	viper.SetDefault("SYNC_RUN_ON_START", true)

	viper.SetDefault("SECRET_KEY", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("viper could not read .env, relying on process environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize fills derived fields and validates the values that would otherwise
// fail much later inside a run.
func (c *Config) finalize() error {
	c.ERP.URL = strings.TrimRight(c.ERP.URL, "/")
	if c.ERP.Resource == "" {
		resource, err := ResourceFromURL(c.ERP.URL)
		if err != nil {
			return fmt.Errorf("config: invalid D365_URL: %w", err)
		}
		c.ERP.Resource = resource
	}

	if c.ERP.RequestTimeout <= 0 {
		c.ERP.RequestTimeout = 120 * time.Second
	}
	if c.ERP.PageSize <= 0 {
		c.ERP.PageSize = 5000
	}
	if c.Git.CommandTimeout <= 0 {
		c.Git.CommandTimeout = 2 * time.Minute
	}

	c.Publisher.Kind = strings.ToLower(strings.TrimSpace(c.Publisher.Kind))
	switch c.Publisher.Kind {
	case "git", "gcs", "postgres", "none":
	default:
		return fmt.Errorf("config: unknown PUBLISHER_KIND %q", c.Publisher.Kind)
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// TransactionsURL is the OData entity set queried by the fetcher.
func (e ERP) TransactionsURL() string {
	return e.URL + "/" + strings.TrimLeft(e.EntityPath, "/")
}

// ResourceFromURL returns scheme://host of rawURL, the audience the token is requested for.
func ResourceFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("missing scheme or host in %q", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// DisplayLocation is the fixed zone used for the human facing date and time in the snapshot.
func (s Snapshot) DisplayLocation() *time.Location {
	if s.DisplayOffset == 0 {
		return time.UTC
	}
	return time.FixedZone(formatOffset(s.DisplayOffset), int(s.DisplayOffset.Seconds()))
}

func formatOffset(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}

// loadEnvFile tries the working directory and its parents for a .env file.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("loaded .env from ", location)
			return
		}
	}

	logrus.Debug("no .env file found, using process environment only")
}
