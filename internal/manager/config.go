package manager

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

var (
	once sync.Once
	v    *viper.Viper
)

type ConfigManager struct{}

var Config = &ConfigManager{}

// Load returns the lazily-initialized configuration. The config file is
// optional; a missing file means defaults apply.
func (c *ConfigManager) Load() *viper.Viper {
	once.Do(func() {
		v = viper.New()

		v.SetDefault("display.frameworks", []string{})
		v.SetDefault("weather.url", "https://wttr.in")
		v.SetDefault("weather.location", "")
		v.SetDefault("music.app", "Music")

		configDir, err := os.UserConfigDir()
		if err != nil {
			return
		}

		v.SetConfigFile(filepath.Join(configDir, "maco", "maco.yaml"))
		v.SetConfigType("yaml")
		_ = v.ReadInConfig()
	})

	return v
}
