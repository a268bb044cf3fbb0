package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout. Sections and keys that are absent keep
// their current values.
type fileConfig struct {
	Window Config       `yaml:"window"`
	Player PlayerConfig `yaml:"player"`
	Combat CombatConfig `yaml:"combat"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Debug  DebugConfig  `yaml:"debug"`
}

// Load overlays the YAML file at path onto the current globals.
// Nothing is applied if the file does not parse or fails validation.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays YAML data onto the current globals.
func Apply(data []byte) error {
	f := fileConfig{
		Window: *C,
		Player: Player,
		Combat: Combat,
		Enemy:  Enemy,
		Debug:  Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := validate(&f); err != nil {
		return err
	}

	*C = f.Window
	Player = f.Player
	Combat = f.Combat
	Enemy = f.Enemy
	Debug = f.Debug
	return nil
}

// Validate checks the current globals.
func Validate() error {
	return validate(&fileConfig{
		Window: *C,
		Player: Player,
		Combat: Combat,
		Enemy:  Enemy,
		Debug:  Debug,
	})
}

func validate(f *fileConfig) error {
	var errs []error
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", f.Window.Width, f.Window.Height))
	}
	if f.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", f.Window.TPS))
	}
	if f.Player.AttackDuration <= 0 {
		errs = append(errs, fmt.Errorf("player attack duration %v must be positive", f.Player.AttackDuration))
	}
	if f.Player.AnimationInterval <= 0 {
		errs = append(errs, fmt.Errorf("player animation interval %v must be positive", f.Player.AnimationInterval))
	}
	if f.Player.Scale <= 0 {
		errs = append(errs, fmt.Errorf("player scale %v must be positive", f.Player.Scale))
	}
	if f.Player.HurtboxWidth <= 0 || f.Player.HurtboxHeight <= 0 {
		errs = append(errs, fmt.Errorf("player hurtbox %vx%v must be positive", f.Player.HurtboxWidth, f.Player.HurtboxHeight))
	}
	if f.Combat.SlashWidth <= 0 || f.Combat.SlashHeight <= 0 {
		errs = append(errs, fmt.Errorf("slash hitbox %vx%v must be positive", f.Combat.SlashWidth, f.Combat.SlashHeight))
	}
	if f.Combat.SlashDamage <= 0 {
		errs = append(errs, fmt.Errorf("slash damage %d must be positive", f.Combat.SlashDamage))
	}
	if f.Enemy.Width <= 0 || f.Enemy.Height <= 0 {
		errs = append(errs, fmt.Errorf("enemy hurtbox %vx%v must be positive", f.Enemy.Width, f.Enemy.Height))
	}
	if f.Enemy.Health <= 0 {
		errs = append(errs, fmt.Errorf("enemy health %d must be positive", f.Enemy.Health))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
