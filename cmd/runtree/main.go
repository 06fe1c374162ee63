package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nicobailon/runtree/internal/browser"
	"github.com/nicobailon/runtree/internal/config"
	"github.com/nicobailon/runtree/internal/deps"
	"github.com/nicobailon/runtree/internal/logging"
	"github.com/nicobailon/runtree/internal/tui"
	"github.com/nicobailon/runtree/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runtree [dir]",
	Short: "Browse a directory tree and run the scripts in it",
	Long: `runtree is a terminal browser for script files. It lists the
subdirectories and .ts/.js files under a root directory, navigates the tree
without ever leaving that root, and runs a selected file through its
interpreter, showing the output inline before returning to the browser.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

func init() {
	rootCmd.Version = version.Version
}

func ensureDeps() error {
	for _, dep := range deps.Check() {
		if dep.Required {
			fmt.Fprintf(os.Stderr, "Missing dependency: %s (%s)\n", dep.Name, deps.InstallHint(dep))
			return fmt.Errorf("missing required dependencies")
		}
		fmt.Fprintf(os.Stderr, "Warning: %s not found, .ts files will not run (%s)\n",
			dep.Name, deps.InstallHint(dep))
	}
	return nil
}

func resolveRoot(args []string) (string, error) {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log = logging.Discard()
	}

	if err := ensureDeps(); err != nil {
		return err
	}

	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	lister := browser.NewDirLister()
	st, err := browser.NewState(root, lister)
	if err != nil {
		return err
	}
	if len(st.Entries) == 0 {
		fmt.Printf("nothing to run under %s\n", root)
		return nil
	}

	log.WithField("root", root).Info("starting")
	app := tui.New(st, tui.Deps{Lister: lister, Cfg: cfg, Log: log})
	return app.Run()
}
