package config

import (
	"sync"

	"github.com/spf13/viper"
)

var (
	envViper *viper.Viper
	envOnce  sync.Once
)

// environment returns the process-wide viper instance bound to environment
// variables. Loaders register their own defaults on it.
func environment() *viper.Viper {
	envOnce.Do(func() {
		envViper = viper.New()
		envViper.AutomaticEnv()
	})
	return envViper
}
