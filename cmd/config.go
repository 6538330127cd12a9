package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dami/hope/internal/config"
	"github.com/dami/hope/internal/output"
)

// validConfigKeys lists the supported config keys for set/get.
var validConfigKeys = []string{
	"api.url",
	"request.timeout",
}

func isValidConfigKey(key string) bool {
	for _, k := range validConfigKeys {
		if k == key {
			return true
		}
	}
	return false
}

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage hope configuration",
	GroupID: "system",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]

		if !isValidConfigKey(key) {
			fmt.Println("Valid keys:", strings.Join(validConfigKeys, ", "))
			return fmt.Errorf("unknown config key: %s", key)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		switch key {
		case "api.url":
			cfg.APIURL = val
		case "request.timeout":
			if _, err := time.ParseDuration(val); err != nil {
				return fmt.Errorf("invalid duration %q (use e.g. 15s, 1m)", val)
			}
			cfg.RequestTimeout = val
		}

		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		output.Success("%s = %s", key, val)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show config values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			switch args[0] {
			case "api.url":
				fmt.Println(config.APIURL())
			case "request.timeout":
				fmt.Println(config.RequestTimeout())
			default:
				fmt.Println("Valid keys:", strings.Join(validConfigKeys, ", "))
				return fmt.Errorf("unknown config key: %s", args[0])
			}
			return nil
		}

		fmt.Printf("api.url = %s\n", config.APIURL())
		fmt.Printf("request.timeout = %s\n", config.RequestTimeout())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}
