// Package config provides configuration loading and validation for dirindex.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (DIRINDEX_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with DIRINDEX_ prefix:
//   - server.port → DIRINDEX_SERVER_PORT
//   - listing.root → DIRINDEX_LISTING_ROOT
//   - log.level → DIRINDEX_LOG_LEVEL
//
// # Configuration Structure
//
// The Config struct contains:
//   - Server: listen host and port
//   - Listing: root directory, hidden/icons toggles, view, and custom
//     stylesheet or template paths
//   - CORS: cross-origin resource sharing settings
//   - Log: logging level and output mode
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Listing root is required
//   - View must be tiles or details
//   - Log level must be debug, info, warn, or error
//   - Log mode must be dev or prod
package config
