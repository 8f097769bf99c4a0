package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshyorko/sbomtool/common"
	"github.com/spf13/cobra"
)

const (
	appSBOM = `{"bomFormat":"CycloneDX","metadata":{"component":{"name":"App","version":"1.0","licenses":[{"license":{"id":"MIT"}}]}},"components":[{"name":"lib","version":"2.0.0","licenses":[{"license":{"id":"Apache-2.0"}}]}]}`

	serviceSBOM = `{"spdxVersion":"SPDX-2.3","name":"service","packages":[{"name":"lib","versionInfo":"2.0.0","licenseConcluded":"MIT"},{"name":"tslib","versionInfo":"2.6.2","licenseDeclared":"0BSD"}]}`
)

type outcome struct {
	code   int
	stdout string
	stderr string
}

// execute runs a fresh command inside its own working directory and turns
// an exit panic back into an exit code.
func execute(t *testing.T, command *cobra.Command, args ...string) (result outcome) {
	t.Helper()
	stdout, stderr := &strings.Builder{}, &strings.Builder{}
	command.SetOut(stdout)
	command.SetErr(stderr)
	command.SetArgs(args)

	defer func() {
		status := recover()
		if status != nil {
			exit, ok := status.(common.ExitCode)
			if !ok {
				panic(status)
			}
			exit.ShowMessage(stderr)
			result.code = exit.Code
		}
		result.stdout = stdout.String()
		result.stderr = stderr.String()
	}()
	Execute(command)
	return result
}

func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	directory := t.TempDir()
	for name, content := range files {
		filename := filepath.Join(directory, name)
		if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	t.Chdir(directory)
	return directory
}

func exists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
