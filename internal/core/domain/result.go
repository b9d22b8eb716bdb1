package domain

// CompileResult is the outcome of one external compiler invocation. Exit
// codes greater than zero indicate failure; zero and negative codes are
// treated as success by convention.
type CompileResult struct {
	ExitCode      int
	StandardError string
}
