package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	EnvironmentPrefix = `SBOMTOOL`

	inputSuffixKey    = `input.suffix`
	reportSuffixKey   = `output.report-suffix`
	combinedOutputKey = `output.combined`
	projectNameKey    = `project.name`
	projectVersionKey = `project.version`
	unknownNameKey    = `report.unknown-name`
	unknownVersionKey = `report.unknown-version`
)

type Input struct {
	Suffix string `yaml:"suffix"`
}

type Output struct {
	ReportSuffix string `yaml:"report-suffix"`
	Combined     string `yaml:"combined"`
}

type Project struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type Report struct {
	UnknownName    string `yaml:"unknown-name"`
	UnknownVersion string `yaml:"unknown-version"`
}

type Settings struct {
	Input   Input   `yaml:"input"`
	Output  Output  `yaml:"output"`
	Project Project `yaml:"project"`
	Report  Report  `yaml:"report"`

	source string
}

func defaults(config *viper.Viper) {
	config.SetDefault(inputSuffixKey, ".json")
	config.SetDefault(reportSuffixKey, ".md")
	config.SetDefault(combinedOutputKey, "combined_sbom.json")
	config.SetDefault(projectNameKey, "Combined Project")
	config.SetDefault(projectVersionKey, "1.0.0")
	config.SetDefault(unknownNameKey, "Unknown SBOM")
	config.SetDefault(unknownVersionKey, "Unknown Version")
}

// Load resolves settings from defaults, then the optional YAML file, then
// SBOMTOOL_* environment variables (SBOMTOOL_OUTPUT_COMBINED and so on).
func Load(filename string) (*Settings, error) {
	config := viper.New()
	defaults(config)

	config.SetEnvPrefix(EnvironmentPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	config.AutomaticEnv()

	source := "defaults"
	if len(filename) > 0 {
		if _, err := os.Stat(filename); err != nil {
			return nil, fmt.Errorf("settings file %q: %w", filename, err)
		}
		config.SetConfigFile(filename)
		config.SetConfigType("yaml")
		if err := config.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("settings file %q: %w", filename, err)
		}
		source = filename
	}

	result := &Settings{
		Input: Input{
			Suffix: config.GetString(inputSuffixKey),
		},
		Output: Output{
			ReportSuffix: config.GetString(reportSuffixKey),
			Combined:     config.GetString(combinedOutputKey),
		},
		Project: Project{
			Name:    config.GetString(projectNameKey),
			Version: config.GetString(projectVersionKey),
		},
		Report: Report{
			UnknownName:    config.GetString(unknownNameKey),
			UnknownVersion: config.GetString(unknownVersionKey),
		},
		source: source,
	}
	return result, result.validate()
}

func Defaults() *Settings {
	result, err := Load("")
	if err != nil {
		panic(err)
	}
	return result
}

func (it *Settings) validate() error {
	if !strings.HasPrefix(it.Input.Suffix, ".") {
		return fmt.Errorf("input suffix %q must start with a dot", it.Input.Suffix)
	}
	if !strings.HasPrefix(it.Output.ReportSuffix, ".") {
		return fmt.Errorf("report suffix %q must start with a dot", it.Output.ReportSuffix)
	}
	if len(strings.TrimSpace(it.Output.Combined)) == 0 {
		return fmt.Errorf("combined output filename cannot be empty")
	}
	return nil
}

func (it *Settings) Source() string {
	return it.source
}

func (it *Settings) YAML() (string, error) {
	content, err := yaml.Marshal(it)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
