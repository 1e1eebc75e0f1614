package cfg

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStore = "folders.db"
	// opaque white
	DefaultBackgroundColor int32 = -1
)

type Config struct {
	// Store is the path of the bbolt database keeping the folders
	Store                  string `yaml:"store"`
	DefaultBackgroundColor int32  `yaml:"defaultBackgroundColor"`
	// VerboseFolderString adds the folder URI and name to the logs
	VerboseFolderString bool `yaml:"verboseFolderString"`
	// AccountURI is the base URI all folder URIs must start with. Empty to accept any.
	AccountURI string `yaml:"accountURI"`
}

func newConfig() *Config {
	return &Config{
		Store:                  DefaultStore,
		DefaultBackgroundColor: DefaultBackgroundColor,
	}
}

// LoadFromFile loads the configuration from the file. A missing file returns the default configuration.
func LoadFromFile(fileName string) (*Config, error) {
	file, err := os.Open(fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newConfig(), nil
		}
		return nil, err
	}
	return Load(file)
}

// Load reads a YAML configuration, closing the reader
func Load(reader io.ReadCloser) (*Config, error) {
	defer reader.Close()
	decoder := yaml.NewDecoder(reader)
	config := newConfig()
	err := decoder.Decode(config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot decode configuration: %w", err)
	}
	err = config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Store, validation.Required),
		validation.Field(&c.AccountURI, validation.Length(0, 2048)),
	)
}
