// Package config loads process settings into the global viper instance.
// Every key named in constants can be overridden as LANDSCAPE_<KEY> with
// dots replaced by underscores, e.g. LANDSCAPE_DB_DSN.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/spf13/viper"
)

const envPrefix = "LANDSCAPE"

func setDefaults() {
	viper.SetDefault(constants.ViperAppEnvKey, constants.EnvDevelopment)
	viper.SetDefault(constants.ViperHTTPAddrKey, ":8080")
	viper.SetDefault(constants.ViperCORSOriginsKey, []string{"http://localhost:3000"})
	viper.SetDefault(constants.ViperDBMaxConnsKey, 10)
	viper.SetDefault(constants.ViperDBConnectRetries, 5)
	viper.SetDefault(constants.ViperLogLevelKey, "info")
	viper.SetDefault(constants.ViperLogJSONKey, false)
	viper.SetDefault(constants.ViperAdminTokenTTLKey, 12*time.Hour)
	viper.SetDefault(constants.ViperNoteAuthorKey, constants.DefaultNoteAuthor)
}

// Load reads path when given, otherwise looks for config.yaml in the working
// directory and /etc/landscape. A missing default file is not an error.
func Load(path string) error {
	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/landscape")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func IsProduction() bool {
	return viper.GetString(constants.ViperAppEnvKey) == constants.EnvProduction
}
