package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"newsd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "NEWSD_LOG_LEVEL")
	viper.BindEnv("auth.passwordHash", "NEWSD_PASSWORD_HASH")
	viper.BindEnv("chat.apiKey", "NEWSD_CHAT_API_KEY")
	viper.BindEnv("cache.enabled", "NEWSD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "NEWSD_CACHE_SIZE")
	viper.BindEnv("monitor.enabled", "NEWSD_MONITOR_ENABLED")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "PortalNewsDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
