// Package config loads restkit client configuration from a YAML file with
// environment variable overrides.
//
// Embedding applications that keep client settings in a config file use
// Load to produce a validated FileConfig; programs that construct
// restclient.Config in code do not need this package.
//
//	cfg, err := config.Load(config.LoaderOptions{ConfigFile: "config.yml"})
//	client, err := restclient.New(cfg.Client.Build())
//
// Environment variables use the RESTKIT_ prefix with underscores for
// nesting: RESTKIT_CLIENT_BASE_URL overrides client.base_url.
package config
