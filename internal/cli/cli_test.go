package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karl0ss/downgrangefixtures-ical/internal/config"
	"github.com/karl0ss/downgrangefixtures-ical/internal/notifier"
)

func TestBuildNotifier(t *testing.T) {
	t.Run("none prints instead of sending", func(t *testing.T) {
		n, err := buildNotifier(&config.Config{Notifier: "none"}, false)
		require.NoError(t, err)
		assert.IsType(t, &notifier.DryRun{}, n)
	})

	t.Run("dry-run overrides configured transport", func(t *testing.T) {
		cfg := &config.Config{Notifier: "telegram", TelegramToken: "tok", TelegramChat: "1"}
		n, err := buildNotifier(cfg, true)
		require.NoError(t, err)
		assert.IsType(t, &notifier.DryRun{}, n)
	})

	t.Run("telegram", func(t *testing.T) {
		cfg := &config.Config{Notifier: "telegram", TelegramToken: "tok", TelegramChat: "1"}
		n, err := buildNotifier(cfg, false)
		require.NoError(t, err)
		assert.IsType(t, &notifier.Telegram{}, n)
	})

	t.Run("telegram without credentials", func(t *testing.T) {
		_, err := buildNotifier(&config.Config{Notifier: "telegram"}, false)
		assert.Error(t, err)
	})
}
