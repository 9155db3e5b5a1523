package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/parameter"
)

// ErrInvalidTeam is returned when a team id in config does not name a known team
var ErrInvalidTeam = errors.New("invalid team")

// Targeting policies for the NPC controller
const (
	TargetingTeam = "team" // Skip units on the same team
	TargetingAll  = "all"  // Every other unit is a candidate
)

// Config is the full runtime configuration
type Config struct {
	Sim    SimConfig    `mapstructure:"sim"`
	Battle BattleConfig `mapstructure:"battle"`
	Player PlayerConfig `mapstructure:"player"`
	NPC    NPCConfig    `mapstructure:"npc"`
	Bullet BulletConfig `mapstructure:"bullet"`
	Log    LogConfig    `mapstructure:"log"`
	Audio  AudioConfig  `mapstructure:"audio"`
}

// SimConfig holds scheduler settings
type SimConfig struct {
	TickRate int   `mapstructure:"tick_rate"`
	Seed     int64 `mapstructure:"seed"` // 0 picks a time based seed
	Strict   bool  `mapstructure:"strict"` // Panic on invariant violations
	Headless bool  `mapstructure:"headless"`
}

// TeamConfig is one team and its spawn point
type TeamConfig struct {
	ID    string    `mapstructure:"id"`
	Spawn []float64 `mapstructure:"spawn"`
}

// BattleConfig defines the single battle created at startup
type BattleConfig struct {
	UnitsPerTeam int          `mapstructure:"units_per_team"`
	Teams        []TeamConfig `mapstructure:"teams"`
}

// PlayerConfig holds the local player controller settings
type PlayerConfig struct {
	Enabled     bool      `mapstructure:"enabled"`
	Team        string    `mapstructure:"team"`
	Spawn       []float64 `mapstructure:"spawn"`
	Sensitivity float64   `mapstructure:"sensitivity"`
	Speed       float64   `mapstructure:"speed"`
}

// NPCConfig holds AI controller settings
type NPCConfig struct {
	Speed        float64 `mapstructure:"speed"`
	EngageRadius float64 `mapstructure:"engage_radius"`
	Targeting    string  `mapstructure:"targeting"`
}

// BulletConfig holds projectile settings
type BulletConfig struct {
	Lifetime       time.Duration `mapstructure:"lifetime"`
	Speed          float64       `mapstructure:"speed"`
	ContactDespawn bool          `mapstructure:"contact_despawn"`
}

// LogConfig holds file logging settings
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
	Level   string `mapstructure:"level"`
}

// AudioConfig holds sound cue settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"` // Master gain in [0, 1]
}

// SetDefaults registers a default for every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sim.tick_rate", parameter.TickRate)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.strict", false)
	v.SetDefault("sim.headless", false)

	v.SetDefault("battle.units_per_team", parameter.BattleUnitsPerTeam)
	v.SetDefault("battle.teams", []map[string]any{
		{"id": "one", "spawn": []float64{parameter.BattleTeamOneX, parameter.BattleTeamOneY, parameter.BattleTeamOneZ}},
		{"id": "two", "spawn": []float64{parameter.BattleTeamTwoX, parameter.BattleTeamTwoY, parameter.BattleTeamTwoZ}},
	})

	v.SetDefault("player.enabled", true)
	v.SetDefault("player.team", "one")
	v.SetDefault("player.spawn", []float64{parameter.PlayerSpawnX, parameter.PlayerSpawnY, parameter.PlayerSpawnZ})
	v.SetDefault("player.sensitivity", parameter.PlayerSensitivity)
	v.SetDefault("player.speed", parameter.PlayerSpeed)

	v.SetDefault("npc.speed", parameter.NPCSpeed)
	v.SetDefault("npc.engage_radius", parameter.NPCEngageRadius)
	v.SetDefault("npc.targeting", TargetingTeam)

	v.SetDefault("bullet.lifetime", parameter.BulletLifetime.String())
	v.SetDefault("bullet.speed", parameter.BulletSpeed)
	v.SetDefault("bullet.contact_despawn", false)

	v.SetDefault("log.enabled", false)
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "info")

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.volume", parameter.AudioMasterVolume)
}

// Load reads configuration with defaults, an optional TOML file and IRONRIFT_* env overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("ironrift")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with no file and no environment applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return &cfg
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("sim.tick_rate must be positive, got %d", c.Sim.TickRate)
	}
	if c.Battle.UnitsPerTeam < 0 {
		return fmt.Errorf("battle.units_per_team must not be negative, got %d", c.Battle.UnitsPerTeam)
	}
	for i, t := range c.Battle.Teams {
		id, err := component.ParseTeam(t.ID)
		if err != nil || id == component.TeamNone {
			return fmt.Errorf("battle.teams[%d] id %q: %w", i, t.ID, ErrInvalidTeam)
		}
		if len(t.Spawn) != 3 {
			return fmt.Errorf("battle.teams[%d] spawn needs 3 coordinates, got %d", i, len(t.Spawn))
		}
	}
	if _, err := component.ParseTeam(c.Player.Team); err != nil {
		return fmt.Errorf("player.team %q: %w", c.Player.Team, ErrInvalidTeam)
	}
	if len(c.Player.Spawn) != 3 {
		return fmt.Errorf("player.spawn needs 3 coordinates, got %d", len(c.Player.Spawn))
	}
	switch c.NPC.Targeting {
	case TargetingTeam, TargetingAll:
	default:
		return fmt.Errorf("npc.targeting must be %q or %q, got %q", TargetingTeam, TargetingAll, c.NPC.Targeting)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	if c.Bullet.Lifetime <= 0 {
		return fmt.Errorf("bullet.lifetime must be positive, got %s", c.Bullet.Lifetime)
	}
	return nil
}

// TickInterval returns the fixed step for the configured tick rate
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Sim.TickRate)
}
