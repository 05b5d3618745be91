// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

const shellPrompt = "bst> "

// runner is the key-type independent view of a session.
type runner interface {
	Load(raw []string) (int, error)
	Report()
	Run(r io.Reader, prompt string) error
	Exec(line string) (bool, error)
}

func newRunner(cfg *Config, out io.Writer, logger zerolog.Logger, st styles) runner {
	if cfg.Keys.Type == keyTypeString {
		return newSession[string](cfg, parseStringKey, out, logger, st)
	}
	return newSession[int](cfg, parseIntKey, out, logger, st)
}

type globalOptions struct {
	configPath string
	keyType    string
	logLevel   string
}

// setup resolves configuration, letting flags override the file.
func (o *globalOptions) setup() (*Config, zerolog.Logger) {
	var (
		cfg *Config
		err error
	)
	if o.configPath != "" {
		cfg, err = loadConfigFrom(o.configPath)
	} else {
		cfg, err = LoadConfig()
	}

	if o.keyType != "" {
		cfg.Keys.Type = o.keyType
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	logger := newLogger(os.Stderr, cfg.Log.Level, cfg.Output.Color && isTerminal(os.Stderr))
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to load configuration. Using default settings.")
	}
	if verr := cfg.validate(); verr != nil {
		logger.Fatal().Err(verr).Msg("Invalid settings")
	}
	return cfg, logger
}

func main() {
	opts := &globalOptions{}

	var cmdShow = &cobra.Command{
		Use:   "show [keys...]",
		Short: "Build a tree from keys and print its traversals and shape",
		Long:  "Show inserts the given keys in order, then prints every traversal, balance, height, min, max, second highest and a diagram",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger := opts.setup()

			raw := args
			if from := cmd.Flag("from").Value.String(); from != "" {
				var progress io.Writer
				if isTerminal(os.Stderr) {
					progress = os.Stderr
				}
				fileKeys, err := readKeysFromFile(from, progress)
				if err != nil {
					logger.Fatal().Err(err).Msg("Error reading keys")
				}
				raw = append(fileKeys, args...)
			}
			if len(raw) == 0 {
				logger.Fatal().Msg("No keys given. Pass keys as arguments or use --from FILE")
			}

			r := newRunner(cfg, os.Stdout, logger, outputStyles(cfg))
			if _, err := r.Load(raw); err != nil {
				logger.Fatal().Err(err).Msg("Error loading keys")
			}
			r.Report()
		},
	}
	cmdShow.Flags().String("from", "", "read whitespace separated keys from a file")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive tree session",
		Long:  "Shell reads session commands from stdin, or from a script file with --script. Type help inside the session for the command list",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger := opts.setup()
			if err := runShell(cfg, logger, cmd.Flag("script").Value.String()); err != nil {
				logger.Fatal().Err(err).Msg("Session failed")
			}
		},
	}
	cmdShell.Flags().String("script", "", "run commands from a file instead of stdin")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bstree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Print the effective configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger := opts.setup()
			configPath := opts.configPath
			if configPath == "" {
				path, err := getConfigPath()
				if err != nil {
					logger.Fatal().Err(err).Msg("Failed to get config path")
				}
				configPath = path
			}
			if err := displaySettings(os.Stdout, configPath, outputStyles(cfg)); err != nil {
				logger.Fatal().Err(err).Msg("Failed to display settings")
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bstree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "bstree",
		Version: version,
		Short:   "Binary search tree playground",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive shell when no subcommand is provided
			cfg, logger := opts.setup()
			if err := runShell(cfg, logger, ""); err != nil {
				logger.Fatal().Err(err).Msg("Session failed")
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&opts.keyType, "type", "", "key type: int or string")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.AddCommand(cmdShow, cmdShell, cmdUsage, cmdSettings, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runShell(cfg *Config, logger zerolog.Logger, script string) error {
	r := newRunner(cfg, os.Stdout, logger, outputStyles(cfg))

	if script != "" {
		file, err := os.Open(script)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer file.Close()
		return r.Run(file, "")
	}

	prompt := ""
	if isTerminal(os.Stdin) {
		prompt = shellPrompt
	}
	return r.Run(os.Stdin, prompt)
}
