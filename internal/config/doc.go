// Package config bootstraps the server configuration. It resolves and
// creates the configuration directory, merges the optional .env settings
// file found there into the environment (file values win), and exposes the
// TickTick credential values read afterwards.
//
// A missing settings file is tolerated. A settings file that exists but
// cannot be read or parsed is an error, so the server never starts with
// stale or partial credentials.
package config
