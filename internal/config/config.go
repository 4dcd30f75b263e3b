// Package config loads the pipeline configuration from an optional YAML
// file and FIXTURES_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Default FA Full-Time page for the club's fixtures. Overridable so the
// pipeline serves any team on the site.
const defaultFixturesURL = "https://fulltime.thefa.com/fixtures.html?selectedSeason=19010414&selectedFixtureGroupAgeGroup=11&selectedFixtureGroupKey=1_579285719&selectedDateCode=all&selectedClub=&selectedTeam=466317969&selectedRelatedFixtureOption=3&selectedFixtureDateStatus=&selectedFixtureStatus=&previousSelectedFixtureGroupAgeGroup=11&previousSelectedFixtureGroupKey=1_579285719&previousSelectedClub=&itemsPerPage=25"

const defaultTableURL = "https://fulltime.thefa.com/table.html?selectedSeason=19010414&selectedFixtureGroupAgeGroup=11&selectedFixtureGroupKey=1_579285719&selectedDivision=908353711&selectedCompetition=0"

// Config holds everything a pipeline run needs.
type Config struct {
	FixturesURL    string   `mapstructure:"fixtures_url"`
	TableURL       string   `mapstructure:"table_url"`
	DataDir        string   `mapstructure:"data_dir"`
	CalendarPath   string   `mapstructure:"calendar_path"`
	ExemptClubs    []string `mapstructure:"exempt_clubs"`
	TrackStandings bool     `mapstructure:"track_standings"`

	// Notifier is "telegram", "twitter", or "none".
	Notifier      string `mapstructure:"notifier"`
	TelegramToken string `mapstructure:"telegram_token"`
	TelegramChat  string `mapstructure:"telegram_chat"`
}

// Load reads configuration. When path is empty an optional config.yaml in
// the working directory is used; a named file that cannot be read is an
// error. Environment variables with the FIXTURES_ prefix override file
// values (e.g. FIXTURES_TELEGRAM_TOKEN).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("fixtures_url", defaultFixturesURL)
	v.SetDefault("table_url", defaultTableURL)
	v.SetDefault("data_dir", "~/.local/share/fixtures-ical")
	v.SetDefault("calendar_path", "fixtures.ics")
	v.SetDefault("exempt_clubs", []string{"Tongham"})
	v.SetDefault("track_standings", true)
	v.SetDefault("notifier", "none")
	// Registered empty so environment overrides are visible to Unmarshal.
	v.SetDefault("telegram_token", "")
	v.SetDefault("telegram_chat", "")

	v.SetEnvPrefix("FIXTURES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Notifier {
	case "none", "telegram", "twitter":
	default:
		return fmt.Errorf("unknown notifier %q (want telegram, twitter, or none)", c.Notifier)
	}
	if c.Notifier == "telegram" && (c.TelegramToken == "" || c.TelegramChat == "") {
		return fmt.Errorf("telegram notifier requires telegram_token and telegram_chat")
	}
	if c.FixturesURL == "" {
		return fmt.Errorf("fixtures_url is required")
	}
	if c.TrackStandings && c.TableURL == "" {
		return fmt.Errorf("table_url is required when track_standings is on")
	}
	return nil
}
