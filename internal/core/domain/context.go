package domain

// TestContext is one test file together with the sources it references and
// the compile settings those sources are built with. Contexts loaded from the
// same settings file share a single CompileSettings value.
type TestContext struct {
	// TestFile is the test file this context was discovered for.
	TestFile string

	// Settings is nil when no compile step applies to this context.
	Settings *CompileSettings

	ReferencedFiles []*ReferencedFile
}

// ReferencedFile is a source file referenced by a test context. Its
// GeneratedFilePath stays empty until the compiled counterpart has been
// confirmed to exist on disk.
type ReferencedFile struct {
	Path string

	// GeneratedFilePath is written exactly once per orchestration pass, by
	// the group owning this file's settings.
	GeneratedFilePath string
}
