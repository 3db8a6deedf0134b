package domain

// Config holds the resolved project settings.
// All paths are absolute once a ConfigLoader has returned it.
type Config struct {
	// Root is the directory containing the config file, or the working
	// directory when no config file was found.
	Root string

	// Database is the path of the compilation database.
	Database string

	// BaseDir is the directory skip patterns are matched relative to.
	BaseDir string

	// Skip lists regular expressions matched against input paths relative to BaseDir.
	Skip []string
}
