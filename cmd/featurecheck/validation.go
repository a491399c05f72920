package main

import (
	"fmt"
	"slices"
	"strings"
)

// requireOneOf returns an error if value is not one of allowed.
func requireOneOf(name, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q: must be one of %s", name, value, strings.Join(allowed, ", "))
}

// requireNonNegative returns an error if value is below zero.
func requireNonNegative(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", name, value)
	}
	return nil
}
