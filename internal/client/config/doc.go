// Package config loads runtime configuration for the Boot_Lang client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c / --config.
//  3. Environment: a .env file in the working directory, if present, then
//     BOOTLANG_* variables (BOOTLANG_STORAGE_BACKEND for storage.backend).
//  4. Command-line flags the user actually set.
//
// # File schema
//
//	{
//	  "api_url": "https://api.example.com",
//	  "hostname": "localhost",
//	  "tenant_prefix": "/api/tenant_1/poc_idea_1",
//	  "request_timeout": "30s",
//	  "log_level": "info",
//	  "storage": {"backend": "sqlite", "path": "bootlang.db", "redis_addr": ""},
//	  "welcome": {"user_name": "", "project_name": "", "github_url": ""}
//	}
package config
