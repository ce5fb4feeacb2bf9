package config

import "flag"

// Flags are the command-line overrides. Unset flags leave the file value.
type Flags struct {
	fs *flag.FlagSet

	config  *string
	debug   *bool
	hot     *bool
	prefab  *string
	clip    *string
	scale   *float64
	fps     *float64
	monitor *int
	level   *string
	logFile *string
}

// BindFlags registers the overlay flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:      fs,
		config:  fs.String("config", "", "Path to config file"),
		debug:   fs.Bool("debug", false, "Draw the debug overlay and log at debug level"),
		hot:     fs.Bool("hot", false, "Reload the pet prefab when it changes on disk"),
		prefab:  fs.String("prefab", "", "Pet prefab file"),
		clip:    fs.String("clip", "", "Clip to play instead of the prefab's"),
		scale:   fs.Float64("scale", 0, "Sprite scale"),
		fps:     fs.Float64("fps", 0, "Animation frames per second"),
		monitor: fs.Int("monitor", -1, "Monitor index, 0 is primary"),
		level:   fs.String("log-level", "", "debug, info, warn or error"),
		logFile: fs.String("log-file", "", "Rotating log file path"),
	}
}

// ConfigPath is the explicit -config path, if any.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["debug"] {
		cfg.Debug.Overlay = *f.debug
		if *f.debug {
			cfg.Logging.Level = "debug"
		}
	}
	if set["hot"] {
		cfg.HotReload = *f.hot
	}
	if *f.prefab != "" {
		cfg.Pet.Prefab = *f.prefab
	}
	if *f.clip != "" {
		cfg.Pet.Clip = *f.clip
	}
	if *f.scale > 0 {
		cfg.Pet.Scale = *f.scale
	}
	if *f.fps > 0 {
		cfg.Pet.FPS = *f.fps
	}
	if *f.monitor >= 0 {
		cfg.Window.Monitor = *f.monitor
	}
	if *f.level != "" {
		cfg.Logging.Level = *f.level
	}
	if *f.logFile != "" {
		cfg.Logging.LogFile = *f.logFile
	}
}
