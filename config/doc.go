// Package config loads service configuration with Viper.
//
// LoadConfig resolves config.yml and .env files from cmd/<service>,
// config/<service>, config, and the working directory, loads the .env file
// with godotenv, binds environment variables carrying the service prefix,
// and decodes everything into the caller's struct:
//
//	var cfg Config
//	err := config.LoadConfig("seqdemo", &cfg, config.WithDefaults(map[string]any{"demo.limit": 10}))
//
// With the default prefix, SEQDEMO_DEMO_LIMIT=5 overrides demo.limit.
package config
