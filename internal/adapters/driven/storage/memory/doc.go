// Package memory provides in-memory implementations of driven port interfaces.
// These are used as test doubles and for dry runs that must not touch disk.
package memory
