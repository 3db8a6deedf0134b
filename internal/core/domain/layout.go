package domain

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "compdb.yaml"

	// DefaultDatabaseFile is the compilation database used when none is configured.
	DefaultDatabaseFile = "compile_commands.json"

	// SourceSuffix is the only input suffix the normalizer accepts.
	SourceSuffix = ".c"

	// ObjectSuffix replaces SourceSuffix when a unit has no explicit -o.
	ObjectSuffix = ".o"
)

const (
	// DirPerm is the permission used for directories created by compdb and its tests.
	DirPerm = 0o750

	// PrivateFilePerm is the permission used for files created by compdb and its tests.
	PrivateFilePerm = 0o600
)
