// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv for optional .env files and
// github.com/caarlos0/env/v11 for struct parsing. Components expose their own
// Config structs with env tags (see dob.Config, datefield.Config and
// httpserver.Config); the binary embeds them in one struct and calls Load once.
//
//	type AppConfig struct {
//		DOB  dob.Config
//		HTTP httpserver.Config
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
