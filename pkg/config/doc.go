// Package config provides YAML-based configuration for binexpr.
//
// Configuration is loaded in three layers: documented defaults, the YAML
// file, and BINEXPR_* environment variable overrides, in increasing
// precedence. The final configuration is validated before use.
//
// Example configuration file:
//
//	expressions:
//	  constant_folding: true
//	  max_depth: 512
//	output:
//	  notation: prefix
//	  format: text
//	server:
//	  listen_address: "127.0.0.1:8080"
//	history:
//	  enabled: true
//	  path: data/history.db
//	  retention_days: 30
//	  prune_schedule: "0 3 * * *"
//	telemetry:
//	  logging:
//	    level: info
//	    format: text
//	  metrics:
//	    enabled: true
package config
