package main

import (
	"fmt"
	"os"
	"time"

	"wfind/internal/app"
	"wfind/internal/config"
	"wfind/internal/wf"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "List", "History").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "wfind",
	Short: "Windows-style directory search for POSIX hosts",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		hostID := uuid.New().String()
		cfg := config.NewConfig(hostID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Host ID: %s\n", hostID)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Host ID:  %s\n", cfg.HostID)
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:  %s\n", cfg.LogDir)
		fmt.Printf("History:  %s\n", cfg.History.Type)
		if len(cfg.Search.Exclude) > 0 {
			fmt.Printf("Exclude:  %v\n", cfg.Search.Exclude)
		}
		return nil
	},
}

// ls command
var lsCmd = &cobra.Command{
	Use:   "ls PATTERN",
	Short: "Enumerate directory entries matching a glob pattern",
	Long: `Enumerate the entries of a directory that match a trailing glob
pattern, e.g. "wfind ls '/var/log/*.log'". The pattern applies to entry
names only; * matches any run of characters and ? exactly one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("List")
		if err != nil {
			return err
		}
		defer a.Close()

		results, err := a.List(args[0])
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No matching entries.")
			return nil
		}

		printResults(results)
		return nil
	},
}

// printResults renders one line per entry. On a terminal the listing
// carries attribute/size/mtime columns with directories and hidden
// entries colored; piped output is bare names for composability.
func printResults(results []*wf.FindResult) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, res := range results {
			fmt.Println(res.Name)
		}
		return
	}

	dirColor := color.New(color.FgBlue, color.Bold)
	hiddenColor := color.New(color.Faint)

	for _, res := range results {
		name := res.Name
		switch {
		case res.Attributes.Has(wf.AttrDirectory):
			name = dirColor.Sprint(name)
		case res.Attributes.Has(wf.AttrHidden):
			name = hiddenColor.Sprint(name)
		}
		fmt.Printf("%s  %12d  %s  %s\n",
			res.Attributes.Short(),
			res.Size(),
			res.LastWriteTime.Time().Format("2006-01-02 15:04:05"),
			name,
		)
	}
}

// attrs command
var attrsCmd = &cobra.Command{
	Use:   "attrs PATH",
	Short: "Show the synthesized attribute record for a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Attributes")
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.Attributes(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", res.Name)
		fmt.Printf("Attributes:  %s (0x%08x)\n", res.Attributes, uint32(res.Attributes))
		fmt.Printf("Size:        %d (high=%d low=%d)\n", res.Size(), res.FileSizeHigh, res.FileSizeLow)
		fmt.Printf("Created:     %s\n", res.CreationTime.Time().Format(time.RFC3339))
		fmt.Printf("Modified:    %s\n", res.LastWriteTime.Time().Format(time.RFC3339))
		fmt.Printf("Accessed:    %s\n", res.LastAccessTime.Time().Format(time.RFC3339))
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past search operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("History")
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.History(limit)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No searches recorded.")
			return nil
		}

		for _, rec := range records {
			duration := ""
			if rec.FinishedAt.Valid {
				d := rec.FinishedAt.Time.Sub(rec.StartedAt)
				duration = d.Truncate(time.Millisecond).String()
			}
			fmt.Printf("#%d  %s  %-9s  %4d match(es)  %s  %s\n",
				rec.ID,
				rec.StartedAt.Format("2006-01-02 15:04:05"),
				rec.Status,
				rec.Matches,
				duration,
				rec.Pattern,
			)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(attrsCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of searches to show")
}
