package cmd

import (
	"github.com/joshyorko/sbomtool/common"
	"github.com/joshyorko/sbomtool/pretty"
	"github.com/joshyorko/sbomtool/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the switches shared by both tools.
type options struct {
	debugFlag    bool
	traceFlag    bool
	configFile   string
	showSettings bool
}

func (it *options) register(flags *pflag.FlagSet) {
	flags.BoolVarP(&it.debugFlag, "debug", "", false, "Turn on debugging output.")
	flags.BoolVarP(&it.traceFlag, "trace", "", false, "Turn on tracing output. Implies --debug.")
	flags.StringVarP(&it.configFile, "config", "", "", "YAML settings file to use on top of the defaults.")
	flags.BoolVarP(&it.showSettings, "show-settings", "", false, "Print the effective settings as YAML and exit.")
}

// prepare builds the logger and settings for one run. The boolean is false
// when the run is already complete, as with --show-settings.
func (it *options) prepare(command *cobra.Command) (*common.Logger, *settings.Settings, bool) {
	level := common.DefineVerbosity(false, it.debugFlag, it.traceFlag)
	log := common.NewLogger(level, command.ErrOrStderr(), command.OutOrStdout())
	pretty.Setup(log)
	log.Debug("%s %s (%s) starting with %s verbosity", common.Product, common.Version, command.Name(), level)

	config, err := settings.Load(it.configFile)
	pretty.Guard(err == nil, 1, "Error: %v", err)
	log.Debug("Settings from %s", config.Source())

	if it.showSettings {
		content, err := config.YAML()
		pretty.Guard(err == nil, 1, "Error: %v", err)
		log.Stdout("%s", content)
		return log, config, false
	}
	return log, config, true
}
