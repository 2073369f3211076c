// Package config loads and watches the bridge's configuration.
//
// Configuration lives in a single TOML file. Every setting has a default,
// so a missing file is not an error. The file can be watched for changes;
// observers receive the freshly loaded configuration after each successful
// reload.
//
// The directional-suppression window is deliberately configurable: the
// shipped default of 10 frames is an empirical value tied to one machine's
// key-repeat timing, not a derived constant.
package config
