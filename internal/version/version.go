package version

// These variables are overridden at build time using -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
)
