package config

import (
	"os"

	"github.com/hdt3213/godis/lib/logger"
	"gopkg.in/yaml.v3"
)

// ServerProperties defines global config properties
type ServerProperties struct {
	Bind       string `yaml:"bind"`
	Port       int    `yaml:"port"`
	MaxConnect uint32 `yaml:"max-connect"`
	// IndexType selects the key registry implementation, btree or art
	IndexType string `yaml:"index-type"`
	// config file path
	CfPath string `yaml:"-"`
}

// Properties holds global config properties
var Properties *ServerProperties

func init() {
	Properties = defaultProperties()
}

func defaultProperties() *ServerProperties {
	return &ServerProperties{
		Bind:      "127.0.0.1",
		Port:      6379,
		IndexType: "btree",
	}
}

// parse fills missing fields with defaults
func parse(src []byte) (*ServerProperties, error) {
	properties := defaultProperties()
	if err := yaml.Unmarshal(src, properties); err != nil {
		return nil, err
	}
	if properties.Bind == "" {
		properties.Bind = "127.0.0.1"
	}
	if properties.Port == 0 {
		properties.Port = 6379
	}
	if properties.IndexType == "" {
		properties.IndexType = "btree"
	}
	return properties, nil
}

// SetupConfig read config file and store properties into Properties
func SetupConfig(configFilename string) {
	src, err := os.ReadFile(configFilename)
	if err != nil {
		logger.Fatal(err)
		return
	}
	properties, err := parse(src)
	if err != nil {
		logger.Fatal(err)
		return
	}
	properties.CfPath = configFilename
	Properties = properties
}
