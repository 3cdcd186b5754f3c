package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lifehedge/lifehedge/internal/calculation"
	"github.com/lifehedge/lifehedge/internal/config"
	"github.com/lifehedge/lifehedge/internal/output"
)

// logrusLogger implements calculation.Logger on top of logrus
type logrusLogger struct {
	log *logrus.Logger
}

func (l logrusLogger) Debugf(format string, args ...any) { l.log.Debugf(format, args...) }
func (l logrusLogger) Infof(format string, args ...any)  { l.log.Infof(format, args...) }
func (l logrusLogger) Warnf(format string, args ...any)  { l.log.Warnf(format, args...) }
func (l logrusLogger) Errorf(format string, args ...any) { l.log.Errorf(format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lifehedge",
	Short: "Lifetime disease-risk simulator CLI",
	Long:  "Simulates lifetime disease risk and compares insurance against self-directed investment",
}

// newEngine loads the input file and builds a configured engine.
func newEngine(cmd *cobra.Command, inputFile string) (*calculation.SimulationEngine, *config.Config, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, nil, err
	}

	engine := calculation.NewSimulationEngine(cfg.Provider(), cfg.Assumptions)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		log.SetOutput(os.Stderr)
		engine.SetLogger(logrusLogger{log: log})
	}
	return engine, cfg, nil
}

func formatterFor(cmd *cobra.Command) (output.Formatter, error) {
	name, _ := cmd.Flags().GetString("format")
	if f := output.GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("unsupported format %q (available: %s)",
		name, strings.Join(output.FormatterNames(), ", "))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Run the full lifetime risk simulation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, cfg, err := newEngine(cmd, args[0])
		if err != nil {
			fail(err)
		}
		result, err := engine.RunSimulation(cfg.Input)
		if err != nil {
			fail(err)
		}
		formatter, err := formatterFor(cmd)
		if err != nil {
			fail(err)
		}
		data, err := formatter.FormatSimulation(result)
		if err != nil {
			fail(err)
		}
		fmt.Print(string(data))
	},
}

var onsetCmd = &cobra.Command{
	Use:   "onset [input-file]",
	Short: "Run an early-onset scenario for one disease and age",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, cfg, err := newEngine(cmd, args[0])
		if err != nil {
			fail(err)
		}

		disease, _ := cmd.Flags().GetString("disease")
		onsetAge, _ := cmd.Flags().GetInt("age")
		if disease == "" {
			fail(fmt.Errorf("--disease is required (known: %s)",
				strings.Join(engine.Data.Diseases(), ", ")))
		}

		result, err := engine.RunOnsetScenario(cfg.Input, disease, onsetAge)
		if err != nil {
			fail(err)
		}
		formatter, err := formatterFor(cmd)
		if err != nil {
			fail(err)
		}
		data, err := formatter.FormatOnset(result)
		if err != nil {
			fail(err)
		}
		fmt.Print(string(data))
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz [input-file]",
	Short: "Run the health-risk type quiz",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, cfg, err := newEngine(cmd, args[0])
		if err != nil {
			fail(err)
		}
		result, err := engine.RunQuiz(cfg.Input)
		if err != nil {
			fail(err)
		}
		formatter, err := formatterFor(cmd)
		if err != nil {
			fail(err)
		}
		data, err := formatter.FormatQuiz(result)
		if err != nil {
			fail(err)
		}
		fmt.Print(string(data))
	},
}

var riskCmd = &cobra.Command{
	Use:   "risk [input-file]",
	Short: "Print the combined risk curve with danger-zone markers",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, cfg, err := newEngine(cmd, args[0])
		if err != nil {
			fail(err)
		}
		result, err := engine.RunSimulation(cfg.Input)
		if err != nil {
			fail(err)
		}

		combined := calculation.CombinedRisk(result.Curve, engine.Data.WatchList())
		for i, age := range result.Curve.Ages {
			marker := ""
			for _, zone := range result.DangerZones {
				if i >= zone.Start && i <= zone.End {
					marker = "  ← 위험 구간"
					break
				}
			}
			fmt.Printf("%3d세  %6s%%%s\n", age, combined[i].StringFixed(2), marker)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			fail(err)
		}
		fmt.Println("Input file is valid.")
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "lifehedge %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func main() {
	for _, cmd := range []*cobra.Command{simulateCmd, onsetCmd, quizCmd} {
		cmd.Flags().String("format", "console", "Output format (console, json, csv)")
	}
	onsetCmd.Flags().String("disease", "", "Disease name for the scenario")
	onsetCmd.Flags().Int("age", 50, "Hypothetical onset age")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(simulateCmd, onsetCmd, quizCmd, riskCmd, validateCmd, versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
