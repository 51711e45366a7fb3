// Package config loads typed configuration structs from environment
// variables, with optional .env file support for development and a validation
// hook for startup invariants.
//
// Each configuration type is parsed at most once per process and cached, so
// repeated Load calls from different components are cheap and always agree.
// Types that implement the Validatable interface get their Validate method
// called right after parsing; a failure aborts the load, keeping bad
// configuration out of the cache and out of the program.
//
// # Usage
//
//	type FetchConfig struct {
//		OutputDir string `env:"DATAFETCH_OUTPUT_DIR" envDefault:"."`
//		Proxy     string `env:"DATAFETCH_PROXY"`
//	}
//
//	var cfg FetchConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning the error, for configuration the
// program cannot start without.
package config
