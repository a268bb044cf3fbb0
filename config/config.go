package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in world units per second
	Speed float64 `yaml:"speed"`

	// Render scale applied to atlas frames
	Scale float64 `yaml:"scale"`

	// Timing, in seconds
	AttackDuration    float64 `yaml:"attackDuration"`
	AnimationInterval float64 `yaml:"animationInterval"`

	// Volume that receives damage, relative to the player centre
	HurtboxWidth  float64 `yaml:"hurtboxWidth"`
	HurtboxHeight float64 `yaml:"hurtboxHeight"`
}

// CombatConfig contains the player's slash hitbox
type CombatConfig struct {
	SlashWidth  float64 `yaml:"slashWidth"`
	SlashHeight float64 `yaml:"slashHeight"`
	SlashDamage int     `yaml:"slashDamage"`
}

// EnemyConfig contains defaults for level-spawned enemies
type EnemyConfig struct {
	Health int        `yaml:"health"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // Start with the debug overlay visible
	Verbose bool `yaml:"verbose"` // Log at debug level
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Combat CombatConfig
var Enemy EnemyConfig
var Debug DebugConfig

// ClearColor is the window background.
var ClearColor = color.RGBA{R: 10, G: 10, B: 10, A: 255}

// Debug overlay colours
var (
	HitboxColor  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	HurtboxColor = color.RGBA{R: 0, G: 200, B: 255, A: 255}
	TextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BarColor     = color.RGBA{R: 255, G: 180, B: 50, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "MMO Game",
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:             300,
		Scale:             4,
		AttackDuration:    0.25,
		AnimationInterval: 0.1,
		HurtboxWidth:      48,
		HurtboxHeight:     96,
	}

	Combat = CombatConfig{
		SlashWidth:  64,
		SlashHeight: 64,
		SlashDamage: 1,
	}

	Enemy = EnemyConfig{
		Health: 1,
		Width:  48,
		Height: 48,
		Color:  color.RGBA{R: 170, G: 40, B: 60, A: 255},
	}

	Debug = DebugConfig{}
}
