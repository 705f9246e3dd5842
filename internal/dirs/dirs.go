package dirs

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "prettybytes"

// ConfigDirEnv overrides the configuration directory when set.
const ConfigDirEnv = "PRETTYBYTES_CONFIG_DIR"

// AppName returns the canonical application name for directory paths.
func AppName() string {
	return appName
}

// ConfigDir returns the app's configuration directory.
// - $PRETTYBYTES_CONFIG_DIR when set
// - Linux: $XDG_CONFIG_HOME/prettybytes or ~/.config/prettybytes
// - macOS: ~/Library/Application Support/prettybytes
// - Windows: %AppData%/prettybytes (fallback to os.UserConfigDir)
func ConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return filepath.Clean(dir), nil
	}
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppName()), nil
	case "linux":
		xdg := os.Getenv("XDG_CONFIG_HOME")
		if xdg != "" {
			return filepath.Join(xdg, AppName()), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName()), nil
	default:
		// Windows and other OSes fall back to UserConfigDir
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cfg, AppName()), nil
	}
}
