// Package mocks provides hand-written mock implementations of the store and
// service interfaces for testing. Each mock exposes XxxFn fields for custom
// behavior and falls back to its default response values when no function is
// set.
package mocks
