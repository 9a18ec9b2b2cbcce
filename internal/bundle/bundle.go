// Package bundle implements the embed-and-compile pipeline: a binary
// module becomes a C stub exposing its bytes as a named symbol, and the
// stub is compiled into a linkable object file.
package bundle

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/wasm-bundle/wasm-bundle/internal/config"
	"github.com/wasm-bundle/wasm-bundle/internal/toolchain"
)

// Options carries one bundling request. Empty Output and SizeSymbol
// resolve to their derived defaults.
type Options struct {
	// Symbol is the identifier exposing the embedded byte array.
	Symbol string
	// Input is the path to the binary module to embed.
	Input string
	// Output is the object file path. Empty means <input>.o.
	Output string
	// SizeSymbol names the byte-count constant. Empty means <symbol>_size.
	SizeSymbol string
	// Verbose turns on progress lines on stdout.
	Verbose bool
}

// ResolvedOutput returns the object file path, defaulting to <input>.o.
func (o *Options) ResolvedOutput() string {
	if o.Output != "" {
		return o.Output
	}
	return o.Input + ".o"
}

// ResolvedSizeSymbol returns the size constant name, defaulting to
// <symbol>_size.
func (o *Options) ResolvedSizeSymbol() string {
	if o.SizeSymbol != "" {
		return o.SizeSymbol
	}
	return o.Symbol + "_size"
}

// Run executes the pipeline: locate the compiler, read the module, render
// the stub into a uniquely named temp file, compile, and clean up. The
// temp file is removed on every path past its creation, including a
// failed compile. Compiler discovery runs first, so a run without a
// toolchain leaves no artifacts behind.
func Run(cfg *config.Config, opts Options) error {
	runID := uuid.NewString()
	slog.Debug("bundle run starting", "run_id", runID, "symbol", opts.Symbol, "input", opts.Input)

	cc, err := toolchain.Locate(cfg.Toolchain.Compiler)
	if err != nil {
		return err
	}
	if opts.Verbose {
		fmt.Printf("Using %s: %s\n", cfg.Toolchain.Compiler, cc)
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("Could not open `%s`", opts.Input)
	}
	if opts.Verbose {
		fmt.Printf("Read %d bytes from %s\n", len(data), opts.Input)
	}

	tmp, err := writeStub(runID, opts.Symbol, opts.ResolvedSizeSymbol(), data)
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(tmp); err != nil {
			slog.Warn("failed to remove temp source", "run_id", runID, "path", tmp, "error", err)
		}
	}()
	slog.Debug("stub written", "run_id", runID, "path", tmp, "bytes", len(data))

	inv := &toolchain.Invocation{
		Compiler: cc,
		Target:   cfg.Toolchain.Target,
		Extra:    cfg.Toolchain.ExtraFlags,
		Source:   tmp,
		Output:   opts.ResolvedOutput(),
	}
	if opts.Verbose {
		fmt.Println(inv.String())
	}
	return toolchain.Run(inv)
}

// writeStub renders the C stub into a freshly created temp file and
// returns its path. The run id in the name ties the file back to the log
// lines of the run that produced it. The file is removed again if
// writing fails.
func writeStub(runID, symbol, sizeSymbol string, data []byte) (string, error) {
	f, err := os.CreateTemp("", "wasm-bundle-"+runID+"-*.c")
	if err != nil {
		return "", fmt.Errorf("failed to create temp source: %w", err)
	}

	w := bufio.NewWriter(f)
	renderSource(w, symbol, sizeSymbol, data)
	werr := w.Flush()
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp source: %w", werr)
	}
	return f.Name(), nil
}
