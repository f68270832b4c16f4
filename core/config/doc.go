// Package config provides configuration management for Sentinel-Drift.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags on the partial
// config types.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Runner: engine binary, playbook, inventory, and audit log paths
//   - Log: logging level and format
//
// Environment variables map onto nested keys with underscores, for example
// RUNNER_PLAYBOOK overrides runner.playbook.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Runner.Playbook)
package config
