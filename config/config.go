package config

import (
	"fmt"

	"github.com/evgenyagantaev/binary-rstdp/params"
)

// Config is the fully resolved set of knobs a run needs beyond the network
// parameters themselves.
type Config struct {
	Params          params.Parameters
	DelayMS         int64
	LogPath         string
	Seed            int64 // 0 means "unset"; the caller picks a wall-clock seed
	DebugAssertions bool
}

// Overrides carries the raw values a cobra command line collected. Pointer
// fields distinguish "flag not set" from "flag set to the zero value".
type Overrides struct {
	ConfigPath      string
	Speed           *int64
	Seed            *int64
	LogFile         string
	DebugAssertions *bool
}

// Load resolves defaults, then the TOML file named by o.ConfigPath (if any),
// then o's explicitly set fields, in that priority order.
func Load(o Overrides) (Config, error) {
	p := params.Default()

	if o.ConfigPath != "" {
		loaded, err := params.LoadOverrides(o.ConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		p = loaded
	}

	if o.DebugAssertions != nil {
		p.DebugAssertions = *o.DebugAssertions
	}

	cfg := Config{
		Params:          p,
		LogPath:         o.LogFile,
		DebugAssertions: p.DebugAssertions,
	}

	if o.Speed != nil {
		if *o.Speed < 0 {
			return Config{}, fmt.Errorf("config: speed must be >= 0 ms, got %d", *o.Speed)
		}
		cfg.DelayMS = *o.Speed
	}

	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}

	return cfg, nil
}
