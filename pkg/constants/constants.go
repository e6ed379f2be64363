// Package constants provides shared constants used throughout the schedview
// codebase. This includes timeouts, file permissions, default source file
// names, and other configuration values that should be consistent across the
// application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests
	DefaultHTTPTimeout = 30 * time.Second

	// ServerReadTimeout is the read timeout for the JSON API server
	ServerReadTimeout = 15 * time.Second

	// ServerWriteTimeout is the write timeout for the JSON API server
	ServerWriteTimeout = 30 * time.Second

	// ServerShutdownTimeout is the grace period for server shutdown
	ServerShutdownTimeout = 5 * time.Second
)

// FilePermissions is the default permission for created files (rw-r--r--),
// used when logging is directed to a file.
const FilePermissions = 0644

// Source file constants name the term extracts the tool reconciles.
// Paths are resolved relative to the configured data directory.
const (
	// AnnArborFile is the Ann Arbor schedule extract
	AnnArborFile = "AAF25.csv"

	// DearbornFile is the Dearborn schedule extract
	DearbornFile = "DearbornF25.csv"

	// FlintFile is the Flint schedule extract
	FlintFile = "FlintF25.csv"

	// MonthlyFile is the monthly payroll extract
	MonthlyFile = "MonthlySept25.csv"

	// DuesFile is the primary dues extract
	DuesFile = "AugDues.csv"

	// DuesGradFile is the graduate dues extract combined with DuesFile
	DuesGradFile = "AugDuesG.csv"
)

// BuildingsURL is the fixed location of the building code to display name
// mapping used to derive Dearborn locations.
const BuildingsURL = "https://raw.githubusercontent.com/umsi-amadaman/LEOcourseschedules/main/UMICHbuildings_dict.json"

// Server constants define defaults for the JSON API server
const (
	// DefaultServerAddr is the default listen address for schedview serve
	DefaultServerAddr = ":8080"
)
