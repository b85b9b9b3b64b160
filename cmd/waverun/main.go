package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshharrison/waverun/internal/executor"
	"github.com/joshharrison/waverun/internal/parser"
	"github.com/joshharrison/waverun/internal/reporter"
	"github.com/joshharrison/waverun/internal/scheduler"
	"github.com/joshharrison/waverun/internal/task"
	"github.com/joshharrison/waverun/internal/ui"
)

var (
	flagFile        string
	flagInput       string
	flagJSON        bool
	flagQuiet       bool
	flagVerbose     bool
	flagMaxParallel int
	flagNoLogo      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waverun",
		Short: "Schedule and run dependency-ordered tasks in parallel waves",
		Long: `Waverun reads a task list, validates its dependency graph, computes the
critical path, and executes the tasks in barrier-synchronized waves that
maximize parallelism within each wave.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the task list and print the expected runtime",
		RunE:  runValidate,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the tasks and report expected vs actual runtime",
		RunE:  runExecute,
	}
	runCmd.Flags().IntVar(&flagMaxParallel, "max-parallel", 0, "bound the worker pool per wave (0 = unbounded)")
	runCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress per-task progress output")
	runCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "per-task expected vs actual details")
	runCmd.Flags().BoolVar(&flagNoLogo, "no-logo", false, "skip the startup logo")

	// The input flags live on each subcommand so cobra can enforce the
	// mutually-exclusive, one-required contract per invocation.
	for _, cmd := range []*cobra.Command{validateCmd, runCmd} {
		cmd.Flags().StringVarP(&flagFile, "file", "f", "", "path to a task list file")
		cmd.Flags().StringVarP(&flagInput, "input", "i", "", "task list as an inline string")
		cmd.Flags().BoolVar(&flagJSON, "json", false, "machine-readable output")
		cmd.MarkFlagsMutuallyExclusive("file", "input")
		cmd.MarkFlagsOneRequired("file", "input")
		rootCmd.AddCommand(cmd)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Red("Error:"), err)
		os.Exit(1)
	}
}

// loadTasks parses the task list from whichever input mode was given.
func loadTasks() ([]*task.Task, error) {
	if flagFile != "" {
		return parser.ParseFile(flagFile)
	}
	return parser.Parse(flagInput)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	tasks, err := loadTasks()
	if err != nil {
		return fmt.Errorf("parse task list: %w", err)
	}

	sched, err := scheduler.New(tasks)
	if err != nil {
		return fmt.Errorf("validate tasks: %w", err)
	}

	rep := reporter.New(sched)
	if flagJSON {
		data, err := rep.ValidationJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	rep.PrintValidation(cmd.OutOrStdout())
	return nil
}

func runExecute(cmd *cobra.Command, _ []string) error {
	tasks, err := loadTasks()
	if err != nil {
		return fmt.Errorf("parse task list: %w", err)
	}

	sched, err := scheduler.New(tasks)
	if err != nil {
		return fmt.Errorf("validate tasks: %w", err)
	}

	if !flagNoLogo && !flagQuiet && !flagJSON {
		ui.PrintLogo()
	}

	cfg := executor.Config{MaxParallel: flagMaxParallel}
	if !flagQuiet && !flagJSON {
		cfg.Log = cmd.ErrOrStderr()
		fmt.Fprintf(cmd.ErrOrStderr(), "%s expected runtime %.2fs, %d task(s)\n",
			ui.BoldCyan("🚀 Starting task execution:"), sched.ExpectedRuntime(), sched.TaskCount())
	}

	res, err := sched.Execute(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	rep := reporter.New(sched)
	if flagJSON {
		data, err := rep.RunJSON(res)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	rep.PrintRun(cmd.OutOrStdout(), res, flagVerbose)
	return nil
}
