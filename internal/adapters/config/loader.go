// Package config provides the settings-file loader for precomp.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/precomp/precomp/internal/core/domain"
	"github.com/precomp/precomp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultExtensions is the tracked extension set used when the settings file
// does not name any.
var DefaultExtensions = []string{".ts"}

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML settings file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the settings file at path and builds its test contexts. All
// contexts share the single CompileSettings value parsed from the file;
// relative source and output directories are resolved against the file's
// directory. A file without a compile block yields contexts with nil
// settings, meaning no compile step applies.
func (l *Loader) Load(path string) ([]*domain.TestContext, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read settings file")
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse settings file")
	}

	settings, err := buildSettings(path, file.Compile)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(path)
	contexts := make([]*domain.TestContext, 0, len(file.Tests))
	for _, test := range file.Tests {
		tc := &domain.TestContext{
			TestFile: resolvePath(baseDir, test.File),
			Settings: settings,
		}
		for _, ref := range test.References {
			tc.ReferencedFiles = append(tc.ReferencedFiles, &domain.ReferencedFile{
				Path: resolvePath(baseDir, ref),
			})
		}
		contexts = append(contexts, tc)
	}

	return contexts, nil
}

func buildSettings(path string, dto *CompileDTO) (*domain.CompileSettings, error) {
	if dto == nil {
		return nil, nil
	}

	if dto.Executable == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "compile.executable is required"), "settings_file", path)
	}
	if dto.SourceDir == "" || dto.OutDir == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "compile.sourceDir and compile.outDir are required"), "settings_file", path)
	}

	var timeout time.Duration
	if dto.Timeout != "" {
		var err error
		timeout, err = time.ParseDuration(dto.Timeout)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid compile.timeout"), "settings_file", path)
		}
	}

	extensions := dto.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	baseDir := filepath.Dir(path)
	return &domain.CompileSettings{
		SettingsFile:           path,
		SourceDir:              resolvePath(baseDir, dto.SourceDir),
		OutDir:                 resolvePath(baseDir, dto.OutDir),
		Extensions:             extensions,
		ExtensionsWithNoOutput: dto.ExtensionsWithNoOutput,
		SkipIfUnchanged:        dto.SkipIfUnchanged,
		Executable:             dto.Executable,
		Arguments:              dto.Arguments,
		WorkingDir:             resolvePath(baseDir, dto.WorkingDir),
		Timeout:                timeout,
	}, nil
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
