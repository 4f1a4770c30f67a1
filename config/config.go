// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd). The core packages never see this struct,
// they are handed the individual values they need.

package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of settings from
// an optional mstatx.yaml and the command line.
type Config struct {
	// print intermediate quantities (weights, frequencies, entropy)
	Verbose bool `mapstructure:"verbose"`

	// where the scores go; "" or "-" means standard output
	OutName string `mapstructure:"out"`

	// directory holding the substitution matrix files
	MatrixDir string `mapstructure:"matrix-dir"`

	// name of the matrix file inside MatrixDir
	MatrixFile string `mapstructure:"matrix-file"`

	// trident exponents
	FactorA float64 `mapstructure:"factor-a"`
	FactorB float64 `mapstructure:"factor-b"`
	FactorC float64 `mapstructure:"factor-c"`
}

// Setup installs the defaults and reads the optional settings file.
// It is called once, from the root command's initializer.
func Setup() {
	viper.SetDefault("verbose", false)
	viper.SetDefault("out", "")
	viper.SetDefault("matrix-dir", "matrices")
	viper.SetDefault("matrix-file", "blosum62.mat")
	// Valdar's exponents
	viper.SetDefault("factor-a", 1.0)
	viper.SetDefault("factor-b", 0.5)
	viper.SetDefault("factor-c", 3.0)

	viper.SetConfigName("mstatx")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("reading settings file: %v", err)
		}
	}
}

// New returns a new Config struct populated by Viper settings
// (either from the local mstatx.yaml and/or command line arguments).
func New() *Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return &c
}
