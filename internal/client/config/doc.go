// Package config loads runtime configuration for the blog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string      base URL of the blog platform API
//	-t int         HTTP request timeout (seconds)
//	-d string      path to the local cache database
//	-l int         page size for blog listings
//	-token string  password-reset token from an emailed deep link
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://blogs.example.com",
//	  "request_timeout": "30s",
//	  "cache_db_path": "blogcli.db",
//	  "page_limit": 20
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
