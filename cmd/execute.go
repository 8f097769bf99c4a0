package cmd

import (
	"os"

	"github.com/joshyorko/sbomtool/common"
	"github.com/joshyorko/sbomtool/pretty"
	"github.com/spf13/cobra"
)

// ExitProtection turns a common.ExitCode panic into a process exit. Any
// other panic is passed on.
func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage(os.Stderr)
			os.Exit(exit.Code)
		}
		panic(status)
	}
}

// Execute runs a root command. Argument and flag errors reported by cobra
// print usage and leave through the same exit path as every other failure.
func Execute(command *cobra.Command) {
	command.SilenceErrors = true
	command.SilenceUsage = true
	err := command.Execute()
	if err != nil {
		command.PrintErrln(command.UsageString())
		pretty.Exit(1, "Error: %v", err)
	}
}
