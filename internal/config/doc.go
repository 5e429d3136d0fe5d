// Package config provides configuration management for the application.
//
// Values are loaded with viper from, in increasing order of precedence,
// built-in defaults, an optional YAML file (./config.yaml or the file named by
// DEMO_CONFIG_FILE) and DEMO_-prefixed environment variables, for example
// DEMO_SERVER_PORT or DEMO_DATABASE_URL. The result is validated with
// go-playground/validator before it is returned.
package config
