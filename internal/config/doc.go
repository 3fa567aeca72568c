// Package config resolves runtime settings from flags and WARD_*
// environment variables. There is no config file.
package config
