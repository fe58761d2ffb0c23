package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the journal database on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .pram config file (or PRAM_* environment) and
// resolves the database path.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.pram.db")
	viper.SetConfigName(".pram") // .yaml is implicit
	viper.SetEnvPrefix("PRAM")
	viper.AutomaticEnv()

	if override := os.Getenv("PRAM_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
