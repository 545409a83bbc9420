package version

// Version is the toolkit release string printed by --version.
const Version = "0.2.0"
