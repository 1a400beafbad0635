// Package app loads runtime configuration and wires stores, clients and the
// service for the commands.
//
// Configuration is layered: built-in defaults, then an optional YAML file,
// then .env files, then DSA_* environment variables. Command-line flags are
// applied last by the caller.
package app
