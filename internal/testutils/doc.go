// Package testutils provides helpers shared by unit tests across packages.
package testutils
