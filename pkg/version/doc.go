// Package version provides version information for the application.
//
// Values are taken from the linker flags when set, and otherwise from the
// build information embedded by the Go toolchain.
package version
