package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/overworld/logger"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug bool `json:"debug"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data directory for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.Log.Warnw("could not load settings", "err", err)
		return nil, nil
	}
	return decodeSettings(data)
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Log.Warnw("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}
