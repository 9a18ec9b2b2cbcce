package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wasm-bundle/wasm-bundle/internal/bundle"
	"github.com/wasm-bundle/wasm-bundle/internal/config"
	"github.com/wasm-bundle/wasm-bundle/internal/log"
	"github.com/wasm-bundle/wasm-bundle/internal/toolchain"
)

var (
	outputPath string
	sizeSymbol string
	verbose    bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wasm-bundle <symbol> <input>",
	Short: "Bundle a WebAssembly module inside of a WebAssembly object file",
	Long: `wasm-bundle embeds a binary module in a linkable object file. It renders
the module bytes as a C byte array named after <symbol> (plus a size
constant), compiles the generated stub with clang targeting wasm32, and
exits with the compiler's own status.`,
	Args: cobra.ExactArgs(2),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		runBundle(args[0], args[1])
	}
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output object file (default <input>.o)")
	rootCmd.Flags().StringVar(&sizeSymbol, "size-symbol", "", "Name for size symbol (default <symbol>_size)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Turn on verbose mode")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "bundle.yaml", "Path to bundle configuration file")
}

// runBundle loads the configuration and executes the bundling pipeline.
// Toolchain and input errors terminate the process with status 1 after an
// Error: line on stderr; a failed compiler run terminates with that
// compiler's exit status and no extra message.
func runBundle(symbol, input string) {
	cfg, err := loadActiveConfig()
	if err != nil {
		fail(err)
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		fail(err)
	}

	opts := bundle.Options{
		Symbol:     symbol,
		Input:      input,
		Output:     outputPath,
		SizeSymbol: sizeSymbol,
		Verbose:    verbose,
	}
	if err := bundle.Run(cfg, opts); err != nil {
		var exitErr *toolchain.ExitError
		if errors.As(err, &exitErr) {
			// The compiler already wrote its diagnostics to the console.
			code := exitErr.Code
			if code <= 0 {
				code = 1
			}
			os.Exit(code)
		}
		fail(err)
	}
}

// loadActiveConfig resolves the --config flag. The default bundle.yaml is
// allowed to be absent; an explicitly passed path is not.
func loadActiveConfig() (*config.Config, error) {
	required := rootCmd.PersistentFlags().Changed("config")
	return config.Load(configPath, required)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
