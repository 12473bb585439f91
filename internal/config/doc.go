// Package config loads tickloop settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. TICKLOOP_* Environment  │
//	├─────────────────────────────┤
//	│  2. Config File (TOML)      │  ← ~/.config/tickloop/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Environment variables use the setting key upper-cased with dots replaced
// by underscores, so log.level is TICKLOOP_LOG_LEVEL.
//
// # Live Reload
//
// Watch reloads the file whenever it is written and hands the new settings
// to a callback:
//
//	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
//	    if err == nil {
//	        applyTheme(cfg.Theme)
//	    }
//	})
package config
