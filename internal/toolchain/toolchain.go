// Package toolchain locates the external C compiler and drives
// compile-only runs of it.
package toolchain

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ExitError reports a compiler subprocess that ran and returned a
// non-zero status. The code is forwarded as this tool's exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("compiler exited with status %d", e.Code)
}

// Locate finds the named compiler executable on the system PATH.
func Locate(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("Could not find %s", name)
	}
	return path, nil
}

// Invocation describes a single compile-only run of the toolchain.
type Invocation struct {
	// Compiler is the resolved executable path.
	Compiler string
	// Target is the architecture passed as --target=<value>.
	Target string
	// Extra holds additional flags from configuration.
	Extra []string
	// Source is the generated C source file.
	Source string
	// Output is the object file to produce.
	Output string
}

// Args returns the full argv for the invocation, compiler first.
func (inv *Invocation) Args() []string {
	args := []string{inv.Compiler, "--target=" + inv.Target}
	args = append(args, inv.Extra...)
	return append(args, "-c", inv.Source, "-o", inv.Output)
}

// String renders the invocation as it would be typed in a shell.
func (inv *Invocation) String() string {
	return strings.Join(inv.Args(), " ")
}

// Run executes the invocation, forwarding the compiler's output streams
// to this process. A compiler that runs and fails is reported as
// *ExitError; its diagnostics are not inspected or classified.
func Run(inv *Invocation) error {
	args := inv.Args()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", inv.Compiler, err)
	}
	return nil
}

// Version extracts the version string reported by the compiler at path,
// e.g. "17.0.6" from "Ubuntu clang version 17.0.6 (...)".
func Version(path string) (string, error) {
	out, err := exec.Command(path, "--version").Output()
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(out))
	for i, f := range fields {
		if f == "version" && i+1 < len(fields) {
			return fields[i+1], nil
		}
	}
	return "", fmt.Errorf("unknown version format: %q", out)
}
