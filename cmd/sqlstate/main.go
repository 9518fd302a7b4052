/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command sqlstate decodes SQLSTATE codes, lists the catalog and shows how
// codes map onto HTTP and gRPC statuses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rulesEnv names the environment variable holding the default rules file.
const rulesEnv = "SQLSTATE_RULES"

var (
	// Global flags
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sqlstate",
	Short: "Decode and classify SQLSTATE codes",
	Long: `sqlstate decodes five-character SQLSTATE codes into their class, subclass
and outcome category, and resolves them to HTTP and gRPC statuses.

Examples:
  sqlstate decode 23505 40001
  sqlstate list 08
  sqlstate status 22012 --explain`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode CODE...",
	Short: "Decode SQLSTATE codes",
	Long: `Decodes each code and prints its class, subclass, category and condition
name. Codes of unknown classes are rejected unless --lenient is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

var listCmd = &cobra.Command{
	Use:   "list [CLASS]",
	Short: "List the catalog",
	Long: `Without arguments, lists every class. With a class code, lists the class
and all of its subclasses.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

var statusCmd = &cobra.Command{
	Use:   "status CODE",
	Short: "Resolve a code to HTTP and gRPC statuses",
	Long: `Resolves a code with the built-in mapping rules, adjusted by a YAML rules
file when --rules (or ` + rulesEnv + `) is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	decodeCmd.Flags().BoolVar(&decodeJSON, "json", false, "Print JSON instead of a table")
	decodeCmd.Flags().BoolVar(&decodeLenient, "lenient", false, "Accept codes of unknown classes")

	statusCmd.Flags().StringVar(&rulesPath, "rules", os.Getenv(rulesEnv), "YAML rules file")
	statusCmd.Flags().BoolVar(&statusExplain, "explain", false, "Show which rule matched")

	rootCmd.AddCommand(decodeCmd, listCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
