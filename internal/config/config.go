package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name  string `mapstructure:"NAME"`
		Port  string `mapstructure:"PORT"`
		State string `mapstructure:"STATE"`
	}

	API struct {
		DefaultLimit int    `mapstructure:"DEFAULT_LIMIT"`
		DefaultActor string `mapstructure:"DEFAULT_ACTOR"`
	}
}

func LoadConfig() *AppConfig {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	var config AppConfig

	if err := viper.ReadInConfig(); err != nil {
		// Kein externer Zustand nötig: ohne Datei laufen die Defaults.
		log.Warn().Err(err).Msg("Konfigurationsdatei nicht gefunden, verwende Defaults")
	} else if err := viper.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Fehler beim Entpacken der Konfiguration")
		return nil
	}

	if config.APP.Name == "" {
		config.APP.Name = "projekt-tafel"
	}
	if config.APP.Port == "" {
		config.APP.Port = "8080"
	}
	if config.API.DefaultLimit == 0 {
		config.API.DefaultLimit = 50
	}
	if config.API.DefaultActor == "" {
		config.API.DefaultActor = "1"
	}

	log.Info().Msg("Konfiguration geladen...")
	return &config
}
