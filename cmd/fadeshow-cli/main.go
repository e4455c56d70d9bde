package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"fadeshow/internal/viewlog"

	"github.com/spf13/cobra"
)

var (
	dbPathFlag string
	forceFlag  bool
	views      *viewlog.Log
)

func cliLogger(msg string) {
	log.Printf("[fadeshow-cli] %s", msg)
}

// NewRootCmd creates the root command for the CLI application. It takes a
// function `openLog` which is responsible for opening the view database.
// This allows tests to inject test-specific instances.
func NewRootCmd(openLog func(dbPath string, logger viewlog.LoggerFunc) (*viewlog.Log, error)) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "fadeshow-cli",
		Short: "Fadeshow CLI - inspect the slideshow view log",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			views, err = openLog(dbPathFlag, cliLogger)
			if err != nil {
				return fmt.Errorf("failed to open view log: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if views != nil {
				views.Close()
			}
		},
	}

	recordCmd := &cobra.Command{
		Use:   "record [image]",
		Short: "Record one viewing of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if err := views.Record(imagePath); err != nil {
				return err
			}
			cmd.Printf("Recorded view of %s\n", imagePath)
			return nil
		},
	}
	rootCmd.AddCommand(recordCmd)

	countCmd := &cobra.Command{
		Use:   "count [image]",
		Short: "Show how often an image has been displayed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			n, err := views.Count(imagePath)
			if err != nil {
				return err
			}
			cmd.Printf("%s: %d\n", imagePath, n)
			return nil
		},
	}
	rootCmd.AddCommand(countCmd)

	topCmd := &cobra.Command{
		Use:   "top [n]",
		Short: "List the most-displayed images",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 10
			if len(args) == 1 {
				var err error
				n, err = strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid count %q", args[0])
				}
			}
			entries, err := views.Top(n)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No views recorded.")
				return nil
			}
			for _, e := range entries {
				cmd.Printf("%6d  %s\n", e.Count, e.Path)
			}
			return nil
		},
	}
	rootCmd.AddCommand(topCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every recorded image with count and last-shown time",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := views.Entries()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No views recorded.")
				return nil
			}
			for _, e := range entries {
				cmd.Printf("%6d  %s  %s\n", e.Count, e.LastShown.Format("2006-01-02 15:04:05"), e.Path)
			}
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	forgetCmd := &cobra.Command{
		Use:   "forget [image]",
		Short: "Remove an image from the view log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if err := views.Forget(imagePath); err != nil {
				return err
			}
			cmd.Printf("Forgot %s\n", imagePath)
			return nil
		},
	}
	rootCmd.AddCommand(forgetCmd)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase the entire view log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !forceFlag {
				cmd.Println("This erases all view statistics. Re-run with --force to proceed.")
				return nil
			}
			if err := views.Clear(); err != nil {
				return err
			}
			cmd.Println("View log cleared.")
			return nil
		},
	}
	clearCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Erase without confirmation")
	rootCmd.AddCommand(clearCmd)

	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "dbpath", "", "Directory holding the view database")

	return rootCmd
}

func main() {
	rootCmd := NewRootCmd(viewlog.Open)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
