package config

import (
	"log"
	"os"
	"regexp"

	"github.com/mcuadros/go-defaults"
	"gopkg.in/yaml.v3"
)

type ProgramConfig struct {
	Registry RegistryConfig `yaml:"registry"`
	Tool     ToolConfig     `yaml:"tool"`
	Metrics  MetricsContext `yaml:"metrics"`
}

type MetricsContext struct {
	Namespace   string `yaml:"namespace" default:"ppwd"`
	Environment string `yaml:"environment"`
}

type RegistryConfig struct {
	// EnabledSchemes selects registry members by name; registration order
	// is always the canonical one, regardless of the order given here.
	EnabledSchemes []string        `yaml:"enabled_schemes" default:"[Plain Text,MD5,SMD5,SHA1,SSHA,MySQL,Crypt,BCRYPT,BCRYPTKDF]"`
	BCrypt         BCryptConfig    `yaml:"bcrypt"`
	BCryptKDF      BCryptKDFConfig `yaml:"bcryptkdf"`
}

type BCryptConfig struct {
	Cost int `yaml:"cost" default:"10"`
}

type BCryptKDFConfig struct {
	Rounds int `yaml:"rounds" default:"1024"`
	KeyLen int `yaml:"key_len" default:"32"`
}

type ToolConfig struct {
	Banner string `yaml:"banner" default:"Principal information for inclusion in ZCML:"`
	// DefaultManager preselects the menu default; empty prefers BCRYPT,
	// then SSHA.
	DefaultManager string `yaml:"default_manager"`
}

func LoadConfig(path string) (*ProgramConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfigString(string(data))
}

func LoadConfigString(data string) (*ProgramConfig, error) {
	expanded := ExpandEnvWithDefaults(data)
	var config ProgramConfig
	err := yaml.Unmarshal([]byte(expanded), &config)
	if err != nil {
		return nil, err
	}
	defaults.SetDefaults(&config)
	return &config, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() (*ProgramConfig, error) {
	return LoadConfigString("")
}

func (c *ProgramConfig) PrintHello(programName, programVersion string) {
	log.Printf("%s v.%s, pid: %d, schemes: %v", programName, programVersion, os.Getpid(), c.Registry.EnabledSchemes)
}

var varWithDefault = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-(.*?))?}`)

// ExpandEnvWithDefaults handles ${VAR:-default}, ${VAR} and $VAR the env values
func ExpandEnvWithDefaults(s string) string {
	s = varWithDefault.ReplaceAllStringFunc(s, func(m string) string {
		sub := varWithDefault.FindStringSubmatch(m)
		name, defaultVal := sub[1], sub[2]
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v
		}
		if defaultVal != "" {
			return defaultVal
		}
		// If no default (the pattern was just ${VAR}), keep it unresolved
		return "${" + name + "}"
	})
	// handle $VAR and ${VAR}
	return os.ExpandEnv(s)
}
