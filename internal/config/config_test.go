package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "git", cfg.Publisher.Kind)
	assert.Equal(t, "https://orangepax.operations.eu.dynamics.com", cfg.ERP.Resource)
	assert.Equal(t, "https://orangepax.operations.eu.dynamics.com/data/RetailTransactions", cfg.ERP.TransactionsURL())
	assert.Equal(t, 120*time.Second, cfg.ERP.RequestTimeout)
	assert.Equal(t, 5000, cfg.ERP.PageSize)
	assert.Equal(t, 2*time.Minute, cfg.Git.CommandTimeout)
	assert.Equal(t, 5*time.Hour, cfg.Snapshot.DisplayOffset)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "*/10 * * * *", cfg.Sync.CronSchedule)
	assert.Equal(t, "postgres://postgres:@localhost:5432/sales?sslmode=disable", cfg.Database.DSN)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PUBLISHER_KIND", " GCS ")
	t.Setenv("D365_URL", "https://erp.example.com/")
	t.Setenv("ERP_REQUEST_TIMEOUT", "30s")
	t.Setenv("ERP_PAGE_SIZE", "250")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("SNAPSHOT_DISPLAY_UTC_OFFSET", "-3h")
	t.Setenv("GCS_BUCKET", "dashboards")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "gcs", cfg.Publisher.Kind)
	assert.Equal(t, "https://erp.example.com", cfg.ERP.URL)
	assert.Equal(t, "https://erp.example.com", cfg.ERP.Resource)
	assert.Equal(t, 30*time.Second, cfg.ERP.RequestTimeout)
	assert.Equal(t, 250, cfg.ERP.PageSize)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, -3*time.Hour, cfg.Snapshot.DisplayOffset)
	assert.Equal(t, "dashboards", cfg.GCS.Bucket)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown publisher", env: map[string]string{"PUBLISHER_KIND": "ftp"}},
		{name: "url without host", env: map[string]string{"D365_URL": "not-a-url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestResourceFromURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://erp.example.com/data", want: "https://erp.example.com"},
		{in: "https://erp.example.com:8443", want: "https://erp.example.com:8443"},
		{in: "erp.example.com", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ResourceFromURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshot_DisplayLocation(t *testing.T) {
	assert.Equal(t, time.UTC, Snapshot{}.DisplayLocation())

	loc := Snapshot{DisplayOffset: 5*time.Hour + 30*time.Minute}.DisplayLocation()
	name, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, "UTC+05:30", name)
	assert.Equal(t, 19800, offset)

	loc = Snapshot{DisplayOffset: -3 * time.Hour}.DisplayLocation()
	name, _ = time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, "UTC-03:00", name)
}
