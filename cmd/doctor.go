package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wasm-bundle/wasm-bundle/internal/toolchain"
	"github.com/wasm-bundle/wasm-bundle/internal/ui"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for the compiler toolchain",
	Long:  `Reports whether the configured compiler is discoverable on the system PATH and which version it is. The check never blocks bundling; an unknown version is a warning only.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDoctor()
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor verifies the configured compiler is present on PATH and probes
// its version. Exits with status 1 when the compiler is missing.
func runDoctor() {
	cfg, err := loadActiveConfig()
	if err != nil {
		fail(err)
	}

	ui.Header("Checking environment...")

	cc, err := toolchain.Locate(cfg.Toolchain.Compiler)
	if err != nil {
		ui.Failure(cfg.Toolchain.Compiler, "not found in PATH")
		os.Exit(1)
	}

	ver, err := toolchain.Version(cc)
	if err != nil {
		ui.Warning(cfg.Toolchain.Compiler, fmt.Sprintf("%s (version unknown)", cc))
		return
	}
	ui.Success(cfg.Toolchain.Compiler, fmt.Sprintf("%s (version %s)", cc, ver))
}
