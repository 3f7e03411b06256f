// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
// Each package that needs configuration declares its own struct with
// `env` tags and loads it at startup:
//
//	var cfg gate.Config
//	config.MustLoad(&cfg)
package config
