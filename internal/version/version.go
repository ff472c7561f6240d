// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "1.0.0"

// Milestones:
// 1.0.0 - Initial release: sun and moon year scans, elevation lookup,
//         accurate mode, interactive result browser
