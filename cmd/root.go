package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/calctutor/internal/assistant"
	"github.com/abhisek/calctutor/internal/logging"
)

// Environment variables consulted when the matching flag is not set.
const (
	envKnowledge = "CALCTUTOR_KNOWLEDGE"
	envProblems  = "CALCTUTOR_PROBLEMS"
	envLogFile   = "CALCTUTOR_LOG_FILE"
	envLogLevel  = "CALCTUTOR_LOG_LEVEL"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "calctutor",
		Short: "Interactive calculus tutor",
		Long: "calctutor is a terminal tutor for elementary calculus: symbolic derivatives and\n" +
			"integrals, function plots, practice problems and a searchable knowledge base.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("knowledge", "", "Path to the knowledge text (overrides "+envKnowledge+")")
	flags.String("problems", "", "Path to the problem bank, JSON or YAML (overrides "+envProblems+")")
	flags.String("log-file", "", `Operator log file, "stderr", or "-" to disable (overrides `+envLogFile+")")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides "+envLogLevel+")")

	root.AddCommand(
		newVersionCmd(),
		newCalculusCmd(opDerive),
		newCalculusCmd(opIntegrate),
		newPlotCmd(),
		newProblemsCmd(),
		newSearchCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// settings are the resolved resource locations and log options.
type settings struct {
	knowledge string
	problems  string
	logFile   string
	logLevel  string
}

// resolveSettings applies flag, then environment, then default.
func resolveSettings(cmd *cobra.Command) settings {
	return settings{
		knowledge: flagOrEnv(cmd, "knowledge", envKnowledge, assistant.DefaultKnowledgePath),
		problems:  flagOrEnv(cmd, "problems", envProblems, assistant.DefaultProblemsPath),
		logFile:   flagOrEnv(cmd, "log-file", envLogFile, logging.DefaultPath()),
		logLevel:  flagOrEnv(cmd, "log-level", envLogLevel, "info"),
	}
}

func flagOrEnv(cmd *cobra.Command, flag, env, def string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}
