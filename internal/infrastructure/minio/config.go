package minio

type ClientConfig struct {
	AccessKey  string
	SecretKey  string
	Endpoint   string `yaml:"endpoint"`
	UseSSL     bool   `yaml:"use_ssl"`
	Bucket     string `yaml:"bucket"`
	PublicBase string `yaml:"public_base"`
}

type UploaderConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type ListerConfig struct {
	Timeout  int64 `yaml:"timeout_in_ms"`
	MaxFiles int   `yaml:"max_files"`
}

type PresignerConfig struct {
	ExpiryMinutes int64 `yaml:"expiry_in_minutes"`
}
