package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".fpp-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fpp-cli")
	}

	viper.SetEnvPrefix("FPP")
	viper.AutomaticEnv() // read in environment variables that match

	_ = viper.ReadInConfig()
}

// SaveDevice records the player address and API key as defaults, so
// subsequent commands can omit --ip.
func SaveDevice(ip, apiKey string) error {
	viper.Set("ip", ip)
	if apiKey != "" {
		viper.Set("api_key", apiKey)
	}

	if err := viper.WriteConfig(); err != nil {
		// If file doesn't exist, create it
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		// If it exists but failed to write, try writing to default path
		home, _ := os.UserHomeDir()
		path := filepath.Join(home, ".fpp-cli.yaml")
		return viper.WriteConfigAs(path)
	}
	return nil
}
