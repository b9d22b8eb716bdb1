package config

// SettingsFile represents the structure of the precomp.yaml settings file.
type SettingsFile struct {
	Version string      `yaml:"version"`
	Compile *CompileDTO `yaml:"compile"`
	Tests   []TestDTO   `yaml:"tests"`
}

// CompileDTO describes the compile step shared by all tests in the file.
type CompileDTO struct {
	Executable             string   `yaml:"executable"`
	Arguments              []string `yaml:"arguments"`
	SourceDir              string   `yaml:"sourceDir"`
	OutDir                 string   `yaml:"outDir"`
	Extensions             []string `yaml:"extensions"`
	ExtensionsWithNoOutput []string `yaml:"extensionsWithNoOutput"`
	SkipIfUnchanged        bool     `yaml:"skipIfUnchanged"`
	WorkingDir             string   `yaml:"workingDir"`
	Timeout                string   `yaml:"timeout"`
}

// TestDTO is one test file and the sources it references.
type TestDTO struct {
	File       string   `yaml:"file"`
	References []string `yaml:"references"`
}
