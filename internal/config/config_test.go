package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.FixturesURL)
	assert.NotEmpty(t, cfg.TableURL)
	assert.Equal(t, "fixtures.ics", cfg.CalendarPath)
	assert.Equal(t, []string{"Tongham"}, cfg.ExemptClubs)
	assert.True(t, cfg.TrackStandings)
	assert.Equal(t, "none", cfg.Notifier)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
fixtures_url: https://example.com/fixtures.html
table_url: https://example.com/table.html
data_dir: /tmp/fixtures-test
calendar_path: /tmp/fixtures-test/fixtures.ics
exempt_clubs:
  - Tongham
  - Aldershot U12s FC
track_standings: false
notifier: telegram
telegram_token: test-token
telegram_chat: "12345"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/fixtures.html", cfg.FixturesURL)
	assert.Equal(t, []string{"Tongham", "Aldershot U12s FC"}, cfg.ExemptClubs)
	assert.False(t, cfg.TrackStandings)
	assert.Equal(t, "telegram", cfg.Notifier)
	assert.Equal(t, "test-token", cfg.TelegramToken)
	assert.Equal(t, "12345", cfg.TelegramChat)
}

func TestLoadMissingNamedFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "a named config file that cannot be read is an error")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FIXTURES_NOTIFIER", "telegram")
	t.Setenv("FIXTURES_TELEGRAM_TOKEN", "env-token")
	t.Setenv("FIXTURES_TELEGRAM_CHAT", "99")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "telegram", cfg.Notifier)
	assert.Equal(t, "env-token", cfg.TelegramToken)
	assert.Equal(t, "99", cfg.TelegramChat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"unknown notifier", func(c *Config) { c.Notifier = "carrier-pigeon" }, true},
		{"telegram without credentials", func(c *Config) { c.Notifier = "telegram" }, true},
		{"missing fixtures url", func(c *Config) { c.FixturesURL = "" }, true},
		{"standings tracked without table url", func(c *Config) { c.TableURL = "" }, true},
		{"untracked standings need no table url", func(c *Config) {
			c.TableURL = ""
			c.TrackStandings = false
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
