// Package config loads the dotconf tool configuration using Viper.
//
// The configuration names the env file to edit and declares the options
// that may be set in it. It is read from config.yaml in the working
// directory, then from the dotconf XDG config directory, or from the path
// given with --config. Every key can also be set through a DOTCONF_
// environment variable.
//
//	version: 1
//	env_file: .env          # relative to this file
//	pending_suffix: .new    # changes go to .env.new while .env is missing
//	format: alfred          # alfred, json or text
//	schema_file: options.toml
//	options:
//	  - name: APP_ENV
//	    kind: scalar
//	    description: Deployment environment
//	  - name: FEATURES
//	    kind: map
//
// Options from schema_file come first, followed by the inline list.
package config
