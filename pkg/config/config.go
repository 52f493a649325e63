// Package config loads the settings shared by the gateway and the CLIs.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/manzanit0/googletoolkit/pkg/distancematrix"
)

// Distance matrix backends, see distancematrix.NewClient.
const (
	BackendHTTP = distancematrix.BackendHTTP
	BackendSDK  = distancematrix.BackendSDK
)

type Config struct {
	Port  string `yaml:"port" envconfig:"PORT"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`

	GoogleMapsAPIKey string `yaml:"googleMapsApiKey" envconfig:"GOOGLE_MAPS_API_KEY"`
	// GoogleCredentialsFile is handed to the translate client explicitly.
	GoogleCredentialsFile string `yaml:"googleCredentialsFile" envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`

	// DistanceBackend is either "http" or "sdk".
	DistanceBackend string        `yaml:"distanceBackend" envconfig:"DISTANCE_BACKEND"`
	CacheTTL        time.Duration `yaml:"cacheTTL" envconfig:"CACHE_TTL"`
}

func Default() Config {
	return Config{
		Port:            "8080",
		DistanceBackend: BackendHTTP,
		CacheTTL:        5 * time.Minute,
	}
}

// Load reads configFile, when not empty, and then the environment.
func Load(configFile string) (*Config, error) {
	c := Default()

	if configFile != "" {
		if err := c.Read(configFile); err != nil {
			return nil, err
		}
	}

	if err := c.ReadEnv(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) Read(configFile string) error {
	f, err := os.Open(configFile)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}

	return nil
}

func (c *Config) ReadEnv() error {
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	return nil
}

func (c *Config) ValidateDistanceMatrix() error {
	if c.GoogleMapsAPIKey == "" {
		return fmt.Errorf("missing GOOGLE_MAPS_API_KEY environment variable. Please check your environment.")
	}

	if c.DistanceBackend != BackendHTTP && c.DistanceBackend != BackendSDK {
		return fmt.Errorf("unknown DISTANCE_BACKEND %q, expected %q or %q", c.DistanceBackend, BackendHTTP, BackendSDK)
	}

	return nil
}

func (c *Config) ValidateTranslation() error {
	if c.GoogleCredentialsFile == "" {
		return fmt.Errorf("missing GOOGLE_APPLICATION_CREDENTIALS environment variable. Please check your environment.")
	}

	return nil
}

func (c *Config) String() string {
	key := ""
	if c.GoogleMapsAPIKey != "" {
		key = "*****"
	}

	return fmt.Sprintf("Port:%s, Debug:%t, GoogleMapsAPIKey:%s, GoogleCredentialsFile:%s, DistanceBackend:%s, CacheTTL:%s",
		c.Port, c.Debug, key, c.GoogleCredentialsFile, c.DistanceBackend, c.CacheTTL)
}
