package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	BodyLimit             int
	RoundRobinTimeQuantum int
	MaxProcesses          int
	MaxTime               int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory on first use. A missing
// file is not an error; defaults and SCHEDULER_* environment variables still apply.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		setDefaults(v)

		cfg, err := load(v)
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("server.body_limit", 1024*1024)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_processes", 64)
	v.SetDefault("scheduler.max_time", 100000)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func load(v *viper.Viper) (*SchedulerConfig, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("config file not found, using defaults")
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		BodyLimit:             v.GetInt("server.body_limit"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
		MaxTime:               v.GetInt("scheduler.max_time"),
	}, nil
}
