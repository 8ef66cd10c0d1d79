// Package config declares the top-level CLI surface of the navchuk binary.
package config

import "github.com/Alia5/NAVCHUK/internal/cmd"

// CLI is the root kong command tree. Values are layered: config files first,
// then environment, then flags.
type CLI struct {
	Config string    `help:"Path to configuration file" env:"NAVCHUK_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Run       cmd.Run           `cmd:"" help:"Poll the peripheral and emit HID navigation events"`
	Probe     cmd.Probe         `cmd:"" help:"Read and display decoded sensor samples"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration utilities"`
}

// LogConfig holds the logging options shared by all commands.
type LogConfig struct {
	Level     string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"NAVCHUK_LOG_LEVEL"`
	File      string `help:"Log file path" env:"NAVCHUK_LOG_FILE"`
	FrameFile string `help:"Raw sensor frame log file path" env:"NAVCHUK_FRAME_LOG"`
}
