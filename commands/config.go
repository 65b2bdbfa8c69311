package commands

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const CONFIGFILE = "drive-sheets.yaml"

// LoadConfig initialises the configuration defaults and merges in the optional
// drive-sheets.yaml from the current directory. Command line flags take precedence
// over configuration file values.
func LoadConfig() error {
	viper.SetDefault("google.workdir", DEFAULT_WORKDIR)
	viper.SetDefault("google.credentials", DEFAULT_CREDENTIALS)
	viper.SetDefault("google.spreadsheet", "")
	viper.SetDefault("google.folder", "")

	viper.SetConfigFile(CONFIGFILE)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.MergeInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("unable to load configuration from %s (%v)", CONFIGFILE, err)
	}

	return nil
}
