package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnvKey  = "CONFIG_FILE"
	defaultConfigFile = "data/config.yaml"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	s := &Service{}

	file := os.Getenv(configFileEnvKey)
	if file == "" {
		file = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Server() *ServerConfig {
	return &s.config.Server
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}
