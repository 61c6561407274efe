// Package version provides centralized version information for consulctl.
// Follows semantic versioning (semver) conventions.
package version

// ConsulctlVersion holds the current consulctl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const ConsulctlVersion = "0.1.0-dev"
