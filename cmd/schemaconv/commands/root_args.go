package commands

import (
	"github.com/macropower/schemaconv/internal/config"
)

// RootArgs holds the flags shared by every command.
type RootArgs struct {
	logLevel     *string
	logFormat    *string
	configFile   *string
	cpuProfile   *string
	memProfile   *string
	output       *string
	outputFormat *string

	config *config.Config
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:     new(string),
		logFormat:    new(string),
		configFile:   new(string),
		cpuProfile:   new(string),
		memProfile:   new(string),
		output:       new(string),
		outputFormat: new(string),
	}
}

// GetConfig returns the merged configuration. It is only available once the
// command has started running.
func (a *RootArgs) GetConfig() *config.Config {
	if a.config == nil {
		return &config.Config{
			LogLevel:     a.GetLogLevel(),
			LogFormat:    a.GetLogFormat(),
			OutputFormat: a.GetOutputFormat(),
		}
	}

	return a.config
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetConfigFile() string {
	return *a.configFile
}

func (a *RootArgs) GetCPUProfile() string {
	return *a.cpuProfile
}

func (a *RootArgs) GetMemProfile() string {
	return *a.memProfile
}

func (a *RootArgs) GetOutput() string {
	return *a.output
}

func (a *RootArgs) GetOutputFormat() string {
	return *a.outputFormat
}
