package api

import (
	"sync"

	"github.com/hackday-labs/hackathon-scoreboard/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
}

type StorageConfig struct {
	TableNameTeams    string
	TableNameFeedback string
}

type ServerConfig struct {
	Port int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameTeams:    viper.GetString("storage.TableNameTeams"),
			TableNameFeedback: viper.GetString("storage.TableNameFeedback"),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
