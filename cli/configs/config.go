package configs

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config contains the defaults read from the --config file.
// Flags given on the command line win over these values.
type Config struct {
	PayerArn   string   `yaml:"payer_arn"`
	AssumeRole string   `yaml:"assume_role"`
	Regions    []string `yaml:"region"`
	TopicArn   string   `yaml:"topic_arn"`
	Output     string   `yaml:"output"`
}

// Load reads the config file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", path)
	}
	return Parse(data)
}

// Parse reads a config from YAML
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config file")
	}
	return cfg, nil
}
