// Package logging assembles the structured slog loggers used across
// cluttercutter.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes attribute helpers so scan code tags log lines with components and
// run identifiers uniformly. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
