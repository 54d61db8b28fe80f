package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned (wrapped) by Validate and LoadConfig when a value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds match and geometry configuration.
// It is copied into the World and Match at construction and never mutated afterwards.
type Config struct {
	// ScreenWidth is the logical window width in pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the logical window height in pixels
	ScreenHeight int `toml:"screen_height"`

	// TargetTPS is the fixed update rate of the frame loop
	TargetTPS int `toml:"target_tps"`

	// Substeps is the number of equal physics substeps per frame
	Substeps int `toml:"substeps"`

	// RinkX, RinkY, RinkWidth and RinkHeight define the rink's bounding rectangle
	RinkX      float64 `toml:"rink_x"`
	RinkY      float64 `toml:"rink_y"`
	RinkWidth  float64 `toml:"rink_width"`
	RinkHeight float64 `toml:"rink_height"`

	// CornerRadius is the radius of the four rounded corners
	CornerRadius float64 `toml:"corner_radius"`

	// WallThickness is the capsule radius of every wall segment
	WallThickness float64 `toml:"wall_thickness"`

	// ArcSegments is the number of straight pieces used per corner arc
	ArcSegments int `toml:"arc_segments"`

	// CenterRadius is the radius of the center circle used by placement checks
	CenterRadius float64 `toml:"center_radius"`

	// GoalDepth is the horizontal size of each goal sensor
	GoalDepth float64 `toml:"goal_depth"`

	// GoalMouth is the vertical size of each goal sensor
	GoalMouth float64 `toml:"goal_mouth"`

	PuckRadius   float64 `toml:"puck_radius"`
	PuckMass     float64 `toml:"puck_mass"`
	PuckMaxSpeed float64 `toml:"puck_max_speed"`

	PaddleRadius float64 `toml:"paddle_radius"`
	PaddleMass   float64 `toml:"paddle_mass"`

	// MatchSeconds is the length of a match
	MatchSeconds float64 `toml:"match_seconds"`

	// SpectateAddr is the listen address of the spectator feed; empty disables it
	SpectateAddr string `toml:"spectate_addr"`
}

// DefaultConfig returns the standard 1920x1080 table
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   1920,
		ScreenHeight:  1080,
		TargetTPS:     60,
		Substeps:      15,
		RinkX:         97,
		RinkY:         231,
		RinkWidth:     1724,
		RinkHeight:    772,
		CornerRadius:  125,
		WallThickness: 5,
		ArcSegments:   20,
		CenterRadius:  80,
		GoalDepth:     10,
		GoalMouth:     300,
		PuckRadius:    15,
		PuckMass:      120,
		PuckMaxSpeed:  1000,
		PaddleRadius:  45,
		PaddleMass:    200,
		MatchSeconds:  120,
	}
}

// RinkRect returns the rink's bounding rectangle
func (c Config) RinkRect() Rect {
	return Rect{X: c.RinkX, Y: c.RinkY, W: c.RinkWidth, H: c.RinkHeight}
}

// FrameDelta returns the nominal frame duration in seconds
func (c Config) FrameDelta() float64 {
	return 1.0 / float64(c.TargetTPS)
}

// Validate checks that every value is usable by the simulation
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.TargetTPS <= 0:
		return fmt.Errorf("%w: target_tps %d", ErrInvalidConfig, c.TargetTPS)
	case c.Substeps < 1:
		return fmt.Errorf("%w: substeps %d", ErrInvalidConfig, c.Substeps)
	case c.ArcSegments < 1:
		return fmt.Errorf("%w: arc_segments %d", ErrInvalidConfig, c.ArcSegments)
	case c.RinkWidth <= 0 || c.RinkHeight <= 0:
		return fmt.Errorf("%w: rink size %gx%g", ErrInvalidConfig, c.RinkWidth, c.RinkHeight)
	case c.CornerRadius < 0 || c.CornerRadius*2 > min(c.RinkWidth, c.RinkHeight):
		return fmt.Errorf("%w: corner_radius %g does not fit the rink", ErrInvalidConfig, c.CornerRadius)
	case c.WallThickness < 0 || c.CenterRadius < 0 || c.GoalDepth <= 0 || c.GoalMouth <= 0:
		return fmt.Errorf("%w: negative wall, center or goal dimension", ErrInvalidConfig)
	case c.PuckRadius <= 0 || c.PaddleRadius <= 0:
		return fmt.Errorf("%w: body radius must be positive", ErrInvalidConfig)
	case c.PuckMass <= 0 || c.PaddleMass <= 0:
		return fmt.Errorf("%w: body mass must be positive", ErrInvalidConfig)
	case c.PuckMaxSpeed <= 0:
		return fmt.Errorf("%w: puck_max_speed %g", ErrInvalidConfig, c.PuckMaxSpeed)
	case c.MatchSeconds <= 0:
		return fmt.Errorf("%w: match_seconds %g", ErrInvalidConfig, c.MatchSeconds)
	}
	return nil
}

// LoadConfig builds a Config from defaults, an optional TOML file and environment overrides.
// A .env file in the working directory is loaded first if present.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("AIRHOCKEY_MATCH_SECONDS"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: AIRHOCKEY_MATCH_SECONDS=%q: %v", ErrInvalidConfig, v, err)
		}
		cfg.MatchSeconds = f
	}
	if v, ok := os.LookupEnv("AIRHOCKEY_SUBSTEPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: AIRHOCKEY_SUBSTEPS=%q: %v", ErrInvalidConfig, v, err)
		}
		cfg.Substeps = n
	}
	if v, ok := os.LookupEnv("AIRHOCKEY_ARC_SEGMENTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: AIRHOCKEY_ARC_SEGMENTS=%q: %v", ErrInvalidConfig, v, err)
		}
		cfg.ArcSegments = n
	}
	if v, ok := os.LookupEnv("AIRHOCKEY_SPECTATE_ADDR"); ok {
		cfg.SpectateAddr = v
	}
	return nil
}
