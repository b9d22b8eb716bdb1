package domain

import "time"

// FileProperties is a point-in-time snapshot of one path. It is derived, not
// persisted; it lives only for the duration of one orchestration pass.
type FileProperties struct {
	Path         string
	Exists       bool
	LastModified time.Time
}

// SourceCompileInfo pairs a source file's properties with those of its
// expected output. HasOutput is false for sources whose extension is in the
// no-output set; their Output stays the zero sentinel.
type SourceCompileInfo struct {
	Source    FileProperties
	Output    FileProperties
	HasOutput bool
}

// NewSourceCompileInfo returns an info for src that expects a distinct
// compiled output, the default for tracked sources.
func NewSourceCompileInfo(src FileProperties) SourceCompileInfo {
	return SourceCompileInfo{Source: src, HasOutput: true}
}
