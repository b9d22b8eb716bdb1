package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setupConfig  func(t *testing.T, tmpDir string)
		args         []string
		expectedExit int
	}{
		{
			name: "Success with settings file without compile block",
			setupConfig: func(t *testing.T, tmpDir string) {
				content := `version: "1"
tests:
  - file: test/plain_test.html
    references: [lib/plain.js]
`
				err := os.WriteFile(tmpDir+"/precomp.yaml", []byte(content), 0o600)
				if err != nil {
					t.Fatalf("failed to write settings: %v", err)
				}
			},
			args:         []string{"precomp", "run"},
			expectedExit: 0,
		},
		{
			name:         "Error with missing settings file",
			setupConfig:  func(_ *testing.T, _ string) {},
			args:         []string{"precomp", "run", "nonexistent.yaml"},
			expectedExit: 1,
		},
		{
			name:         "Error with missing settings file via flag",
			setupConfig:  func(_ *testing.T, _ string) {},
			args:         []string{"precomp", "run", "-c", "nonexistent.yaml"},
			expectedExit: 1,
		},
		{
			name:         "Version always succeeds",
			setupConfig:  func(_ *testing.T, _ string) {},
			args:         []string{"precomp", "version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setupConfig(t, tmpDir)

			// Change to tmpDir for relative path resolution
			originalWd, _ := os.Getwd()
			err := os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
