// Package config loads edsign settings with layered precedence.
//
// Sources, highest precedence first:
//  1. CLI flags bound through Load
//  2. Environment variables (EDSIGN_* prefix, "." replaced by "_")
//  3. The config file (--config, else ~/.edsign/config.yaml if present)
//  4. Built-in defaults
//
// This package may import internal/domain and internal/errors only.
package config
