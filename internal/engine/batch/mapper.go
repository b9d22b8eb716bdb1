package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/precomp/precomp/internal/core/domain"
	"github.com/precomp/precomp/internal/core/ports"
)

// CompiledExtension is the extension of the compiler's output files.
const CompiledExtension = ".js"

// OutputMapper derives the expected compiled-output path for a source path.
// The derivation is purely syntactic; it never touches the file system and
// does not guarantee the output exists.
type OutputMapper struct {
	logger ports.Logger
}

// NewOutputMapper creates a new OutputMapper.
func NewOutputMapper(logger ports.Logger) *OutputMapper {
	return &OutputMapper{logger: logger}
}

// MapOutputPath computes the output path for source under the settings'
// output directory. Containment of the source directory is checked
// case-insensitively. When source does not lie under the source directory no
// mapping is possible; a warning is logged and ok is false.
func (m *OutputMapper) MapOutputPath(source string, settings *domain.CompileSettings) (path string, ok bool) {
	slashed := strings.ReplaceAll(source, `\`, "/")
	idx := strings.Index(domain.NormalizePath(source), domain.NormalizePath(settings.SourceDir))
	if idx < 0 {
		m.logger.Warn(fmt.Sprintf(
			"can't map source %q to compiled output: not under source directory %q",
			source, settings.SourceDir))
		return "", false
	}

	rel := strings.TrimLeft(slashed[idx+len(settings.SourceDir):], "/")
	out := filepath.Join(settings.OutDir, filepath.FromSlash(rel))
	if ext := filepath.Ext(out); ext != "" {
		out = strings.TrimSuffix(out, ext)
	}
	return out + CompiledExtension, true
}
