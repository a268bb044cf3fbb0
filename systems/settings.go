package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/logger"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the F1 debug toggle and the quit key.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		logger.Log.Infow("debug overlay", "enabled", settings.Debug)
		if err := SaveSettings(&SavedSettings{Debug: settings.Debug}); err != nil {
			logger.Log.Warnw("could not save settings", "err", err)
		}
	}

	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// config.Debug when first created.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Overlay})
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies persisted settings into the global config so
// scenes created afterwards pick them up.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Overlay = cfg.Debug.Overlay || saved.Debug
}
