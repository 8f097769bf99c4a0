package cmd

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/joshyorko/sbomtool/common"
	"github.com/joshyorko/sbomtool/pretty"
	"github.com/joshyorko/sbomtool/sbom"
	"github.com/joshyorko/sbomtool/settings"
	"github.com/spf13/cobra"
)

type extractRun struct {
	options
	allFlag bool
	file    string
}

func ExtractCommand() *cobra.Command {
	run := &extractRun{}
	command := &cobra.Command{
		Use:   "extract-licenses",
		Short: "Write a markdown license report for SBOM files.",
		Long: `Write a markdown license report for CycloneDX and SPDX JSON files.

For each input the report lists the license of the component itself and
the licenses of its third party dependencies. The report is written next
to the input, with .json replaced by .md.

Examples:
  # Every *.json file in the current directory
  extract-licenses --all

  # Just one file
  extract-licenses --file build/sbom.json`,
		Args: cobra.NoArgs,
		Run:  run.execute,
	}
	run.register(command.Flags())
	command.Flags().BoolVarP(&run.allFlag, "all", "a", false, "Process every JSON file in the current directory (default).")
	command.Flags().StringVarP(&run.file, "file", "f", "", "Process only this SBOM file.")
	command.MarkFlagsMutuallyExclusive("all", "file")
	return command
}

func (it *extractRun) execute(command *cobra.Command, args []string) {
	log, config, proceed := it.prepare(command)
	if !proceed {
		return
	}
	if log.DebugFlag() {
		defer common.Stopwatch(log, "License extraction lasted").Report()
	}

	filenames := it.selection(config)
	extractor := sbom.NewExtractor(sbom.NewReader(log), log, config.Report.UnknownName, config.Report.UnknownVersion)
	reports, failed := extractor.ExtractFiles(filenames)
	for _, report := range reports {
		target, err := report.Save(config.Output.ReportSuffix)
		pretty.Guard(err == nil, 1, "Error: %v", err)
		log.Log("Licenses saved to %s", target)
		log.Stdout("%s\n", target)
	}
	log.Debug("Wrote %d reports, %d of %d files failed.", len(reports), failed, len(filenames))
	if failed > 0 {
		pretty.Note(log, "%d of %d files produced no report.", failed, len(filenames))
	}
	pretty.Ok(log)
}

func (it *extractRun) selection(config *settings.Settings) []string {
	if len(it.file) > 0 {
		info, err := os.Stat(it.file)
		pretty.Guard(err == nil && !info.IsDir(), 1, "Error: File '%s' does not exist", it.file)
		return []string{it.file}
	}
	found, err := filepath.Glob("*" + config.Input.Suffix)
	pretty.Guard(err == nil, 1, "Error: %v", err)
	filenames := make([]string, 0, len(found))
	for _, filename := range found {
		info, err := os.Stat(filename)
		if err == nil && info.Mode().IsRegular() {
			filenames = append(filenames, filename)
		}
	}
	pretty.Guard(len(filenames) > 0, 1, "No JSON files found in the current directory")
	slices.Sort(filenames)
	return filenames
}
