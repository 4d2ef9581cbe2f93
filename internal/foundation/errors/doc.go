// Package errors provides the classified error primitives used across docsite.
//
// Every fatal condition of a build (unreadable README, undecodable document,
// template failure, output write failure) surfaces as a ClassifiedError so the
// CLI can pick an exit code and a message without string matching.
//
// Key features:
//   - ErrorCategory: broad classification (config, docs, template, filesystem, ...)
//   - ErrorSeverity: fatal errors abort a build and are logged; rejected input is only reported
//   - ClassifiedError: structured error with category, severity and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing formatting
//
// Example usage:
//
//	err := errors.FileSystemError("write page failed").
//		WithCause(cause).
//		WithContext("path", outPath).
//		Build()
package errors
