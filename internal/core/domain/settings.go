// Package domain contains the core types of the batch compiler.
package domain

import (
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// GroupKey identifies one settings group. All test contexts sharing a
// settings file are compiled together under the same key.
type GroupKey uint64

// CompileSettings describes how the referenced files of a settings group are
// turned into compiled output. It is immutable for the duration of one
// orchestration pass.
type CompileSettings struct {
	// SettingsFile is the path of the file these settings were loaded from.
	// It serves as the stable group identifier and as error attribution.
	SettingsFile string

	SourceDir string
	OutDir    string

	// Extensions lists the file extensions tracked by this compile step.
	Extensions []string

	// ExtensionsWithNoOutput lists tracked extensions that intentionally
	// produce no distinct output file (e.g. declaration files).
	ExtensionsWithNoOutput []string

	// SkipIfUnchanged enables the timestamp-based skip optimization.
	SkipIfUnchanged bool

	Executable string
	Arguments  []string
	WorkingDir string

	// Timeout bounds one compiler invocation. Zero means no limit.
	Timeout time.Duration
}

// GroupKey derives the stable grouping key from the normalized settings-file
// path. Contexts loaded from the same file always land in the same group,
// regardless of path casing.
func (s *CompileSettings) GroupKey() GroupKey {
	return GroupKey(xxhash.Sum64String(NormalizePath(s.SettingsFile)))
}

// Matches reports whether path carries one of the tracked extensions.
func (s *CompileSettings) Matches(path string) bool {
	return hasExtension(path, s.Extensions)
}

// ExpectsOutput reports whether a tracked source at path is expected to
// produce a distinct compiled output file.
func (s *CompileSettings) ExpectsOutput(path string) bool {
	return !hasExtension(path, s.ExtensionsWithNoOutput)
}

func hasExtension(path string, exts []string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// NormalizePath canonicalizes a path for case-insensitive comparison. Paths
// are compared this way throughout the batch compiler, so the normalization
// lives in one place rather than relying on platform string equality.
// Backslashes are rewritten on every platform; settings files written on
// Windows must keep working when read elsewhere.
func NormalizePath(path string) string {
	return strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
}
