// Package mocks provides hand-written mock implementations of the
// store and service interfaces for use in tests. Each mock exposes
// Fn fields to override behavior per test and falls back to simple
// default values when no override is installed.
package mocks
