// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// AlignConfig holds pairwise alignment defaults.
type AlignConfig struct {
	// nucleotide match score
	Match int `mapstructure:"match"`

	// nucleotide mismatch penalty
	Mismatch int `mapstructure:"mismatch"`

	// linear gap penalty for nucleotide scoring
	Gap int `mapstructure:"gap"`

	// linear gap penalty when the BLOSUM62 matrix is selected
	ProteinGap int `mapstructure:"protein-gap"`
}

// TreeConfig holds tree construction defaults.
type TreeConfig struct {
	// tree method, "nj" or "upgma"
	Method string `mapstructure:"method"`

	// number of bootstrap replicates, 0 to disable
	BootstrapReplicates int `mapstructure:"bootstrap-replicates"`

	// seed for the bootstrap resampler
	BootstrapSeed int64 `mapstructure:"bootstrap-seed"`
}

// ServerConfig holds the REST server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Config is the root-level settings struct, a mix of settings available
// in settings.yaml and those passed from the command line.
type Config struct {
	Align  AlignConfig  `mapstructure:"align"`
	Tree   TreeConfig   `mapstructure:"tree"`
	Server ServerConfig `mapstructure:"server"`
}

// setDefaults registers the built-in defaults with viper.
func setDefaults() {
	viper.SetDefault("align.match", 2)
	viper.SetDefault("align.mismatch", -1)
	viper.SetDefault("align.gap", -1)
	viper.SetDefault("align.protein-gap", -4)
	viper.SetDefault("tree.method", "nj")
	viper.SetDefault("tree.bootstrap-replicates", 0)
	viper.SetDefault("tree.bootstrap-seed", 1)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
}

// New unmarshals a Config from viper, reading settings.yaml from the
// working directory when present.
func New() *Config {
	setDefaults()

	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}
	return cfg
}
