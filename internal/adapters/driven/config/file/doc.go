// Package file stores tavern's settings in a TOML file, by default
// ~/.tavern/config.toml. Dotted keys such as "storage.path" map onto
// nested tables.
package file
