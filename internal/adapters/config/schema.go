package config

// Projectfile represents the structure of the compdb.yaml configuration file.
type Projectfile struct {
	Version  string   `yaml:"version"`
	Database string   `yaml:"database"`
	BaseDir  string   `yaml:"baseDir"`
	Skip     []string `yaml:"skip"`
}

// SupportedVersion is the only config file version this loader understands.
const SupportedVersion = "1"
