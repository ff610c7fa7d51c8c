package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"songart/internal/infrastructure/database"
	"songart/internal/infrastructure/minio"
	"songart/internal/infrastructure/replicate"
	"songart/internal/infrastructure/shortlink"
	"songart/pkg/logger"
)

type ServerConfig struct {
	Address string `yaml:"address"`
}

// Config represents the configs used by services on system.
type Config struct {
	Environment    string                `yaml:"environment"`
	Server         ServerConfig          `yaml:"server"`
	MinIOClient    minio.ClientConfig    `yaml:"minio_client"`
	MinIOUploader  minio.UploaderConfig  `yaml:"minio_uploader"`
	MinIOLister    minio.ListerConfig    `yaml:"minio_lister"`
	MinIOPresigner minio.PresignerConfig `yaml:"minio_presigner"`
	DBConfig       database.Config       `yaml:"db_config"`
	ShortLink      shortlink.Config      `yaml:"shortlink_config"`
	Replicate      replicate.Config      `yaml:"replicate_config"`
	Logger         logger.Config         `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.ShortLink.URI = os.Getenv("REDIS_URI")
	config.Replicate.Token = os.Getenv("REPLICATE_API_TOKEN")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Server.Address == "" {
		return errors.New("server.address must not be empty")
	}
	if c.MinIOClient.Endpoint == "" {
		return errors.New("minio_client.endpoint must not be empty")
	}
	if c.MinIOClient.Bucket == "" {
		return errors.New("minio_client.bucket must not be empty")
	}

	return nil
}
