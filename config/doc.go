// Package config resolves which provider and model the helpers talk to.
//
// Load reads .env files with godotenv (existing environment wins), then an optional
// YAML file, then environment overrides. API keys never come from the YAML file;
// APIKey reads them from the environment each time it is called.
package config
