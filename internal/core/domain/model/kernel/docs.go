// Package kernel contains shared value objects used across domain aggregates:
// UUID identifiers and Money amounts. All types are immutable and must be
// created through their constructor functions; zero values fail Validate.
package kernel
