// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates and commands rely on and they
// carry no business rules of their own.
package kernel
