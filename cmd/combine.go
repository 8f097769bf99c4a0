package cmd

import (
	"os"

	"github.com/joshyorko/sbomtool/common"
	"github.com/joshyorko/sbomtool/pretty"
	"github.com/joshyorko/sbomtool/sbom"
	"github.com/spf13/cobra"
)

type combineRun struct {
	options
	name    string
	version string
}

func CombineCommand() *cobra.Command {
	run := &combineRun{}
	command := &cobra.Command{
		Use:   "combine-sboms FILE...",
		Short: "Merge CycloneDX and SPDX JSON files into one CycloneDX SBOM.",
		Long: `Merge CycloneDX and SPDX JSON files into one CycloneDX 1.4 SBOM.

Components are deduplicated on name and version, and the first file to
mention a component wins. SPDX packages are converted into components.
Name and version of the combined project come from the first readable
input unless given on the command line.

Examples:
  combine-sboms frontend.json backend.spdx.json
  combine-sboms --name platform --version 2.4.0 *.json`,
		Args: cobra.MinimumNArgs(1),
		Run:  run.execute,
	}
	run.register(command.Flags())
	command.Flags().StringVarP(&run.name, "name", "", "", "Name of the combined project.")
	command.Flags().StringVarP(&run.version, "version", "", "", "Version of the combined project.")
	return command
}

func (it *combineRun) execute(command *cobra.Command, filenames []string) {
	log, config, proceed := it.prepare(command)
	if !proceed {
		return
	}
	if log.DebugFlag() {
		defer common.Stopwatch(log, "Combine lasted").Report()
	}

	for _, filename := range filenames {
		info, err := os.Stat(filename)
		pretty.Guard(err == nil && !info.IsDir(), 1, "Error: File '%s' does not exist", filename)
	}
	log.Debug("Combining %d files: %v", len(filenames), filenames)

	combiner := sbom.NewCombiner(sbom.NewReader(log), log)
	combiner.DefaultName = config.Project.Name
	combiner.DefaultVersion = config.Project.Version
	combined := combiner.Combine(filenames, it.name, it.version)

	err := combined.Save(config.Output.Combined)
	pretty.Guard(err == nil, 1, "Error: %v", err)
	stats := combined.Stats
	log.Debug("Files: %d, failed: %d, components added: %d, duplicates skipped: %d", stats.Files, stats.Failed, stats.Added, stats.Skipped)
	if stats.Failed > 0 {
		pretty.Warning(log, "%d of %d inputs could not be read.", stats.Failed, stats.Files)
	}
	pretty.Ok(log)
	log.Stdout("Combined SBOM saved to %s (name: %s, version: %s)\n", config.Output.Combined, combined.Name, combined.Version)
}
