// Package config manages user-level settings stored at ~/.ccplugin/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default output format and the version stamped into scaffolded plugins.
package config
