// Package util provides common utility functions.
package util
