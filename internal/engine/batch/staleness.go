package batch

import (
	"time"

	"github.com/precomp/precomp/internal/core/domain"
)

// StalenessEvaluator decides whether a settings group needs a compile run.
// It is pure: it only inspects the file properties it is handed.
type StalenessEvaluator struct{}

// NewStalenessEvaluator creates a new StalenessEvaluator.
func NewStalenessEvaluator() *StalenessEvaluator {
	return &StalenessEvaluator{}
}

// NeedsCompile reports whether the group described by infos must be compiled.
//
// With SkipIfUnchanged disabled the answer is always yes. Otherwise a compile
// is needed when any output-bearing source is missing its output, or when the
// newest existing source is as new as or newer than the oldest output. Equal
// timestamps count as stale: coarse filesystem clocks and fast successive
// writes collapse distinct writes onto one timestamp, so ties are never
// assumed fresh.
func (e *StalenessEvaluator) NeedsCompile(settings *domain.CompileSettings, infos []domain.SourceCompileInfo) bool {
	if !settings.SkipIfUnchanged {
		return true
	}

	outputBearing := 0
	for _, info := range infos {
		if !info.HasOutput {
			continue
		}
		outputBearing++
		if !info.Output.Exists {
			return true
		}
	}

	// A minimum over zero outputs is undefined; treat the group as stale.
	if outputBearing == 0 {
		return true
	}

	var newestSource time.Time
	for _, info := range infos {
		// Sources without an output of their own still drive staleness.
		if info.Source.Exists && info.Source.LastModified.After(newestSource) {
			newestSource = info.Source.LastModified
		}
	}

	var oldestOutput time.Time
	first := true
	for _, info := range infos {
		if !info.HasOutput {
			continue
		}
		if first || info.Output.LastModified.Before(oldestOutput) {
			oldestOutput = info.Output.LastModified
			first = false
		}
	}

	return !newestSource.Before(oldestOutput)
}
