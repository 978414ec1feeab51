package config

import (
	"github.com/kelseyhightower/envconfig"

	"roadview/internal/view"
)

// Config holds the viewer tunables. The outlier threshold and pick
// tolerance depend on the coordinate system of ingested maps, so they
// are environment-settable rather than hardcoded.
type Config struct {
	MapDir          string  `envconfig:"MAP_DIR" default:"."`
	OutlierLimit    float64 `envconfig:"OUTLIER_LIMIT" default:"1e12"`
	PickTolerancePx float64 `envconfig:"PICK_TOLERANCE_PX" default:"5"`
	ZoomStep        float64 `envconfig:"ZOOM_STEP" default:"1.2"`
	FitMargin       float64 `envconfig:"FIT_MARGIN" default:"0.9"`
	GridSpacingPx   float64 `envconfig:"GRID_SPACING_PX" default:"16"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("roadview", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ViewOptions maps the config onto the engine's option set.
func (c *Config) ViewOptions() view.Options {
	return view.Options{
		OutlierLimit:    c.OutlierLimit,
		PickTolerancePx: c.PickTolerancePx,
		ZoomStep:        c.ZoomStep,
		FitMargin:       c.FitMargin,
		GridSpacingPx:   c.GridSpacingPx,
	}
}
