package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"

	"github.com/filetug/cdtug/pkg/cdtug"
	"github.com/filetug/cdtug/pkg/config"
	"github.com/filetug/cdtug/pkg/files"
	"github.com/filetug/cdtug/pkg/files/osfile"
	"github.com/filetug/cdtug/pkg/fsutils"
	"github.com/filetug/cdtug/pkg/logging"
	"github.com/filetug/cdtug/pkg/navigator"
	"github.com/filetug/cdtug/pkg/profiling"
	"github.com/filetug/cdtug/pkg/shell"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var osGetwd = os.Getwd
var filepathAbs = filepath.Abs

var newApp = func() cdtug.App {
	return cdtug.NewApp(tview.NewApplication())
}

var runShell = func(ctx context.Context, session shell.Session) error {
	return session.Run(ctx)
}

type options struct {
	configPath string
	shellPath  string
	logFile    string
	debug      bool
	printDir   bool
	cpuProfile string
	memProfile string
	pprofAddr  string
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		osExit(1)
	}
}

func newRootCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "cdtug [dir]",
		Short: "Browse directories in the terminal and open a shell in the last one visited",
		Long: `cdtug lists a directory and lets you walk the tree with the keyboard.
On exit it starts a shell in the directory you ended in.

Keys: Enter open, Backspace up, h hidden files, d mix dirs and files,
Home/End first/last, r refresh, / edit path, q quit.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, o, args)
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "config file (default is "+config.DefaultPath()+")")
	flags.StringVar(&o.shellPath, "shell", "", "shell to start in the last visited directory")
	flags.StringVar(&o.logFile, "log-file", "", "write logs to `file`")
	flags.BoolVar(&o.debug, "debug", false, "log at debug level")
	flags.BoolVar(&o.printDir, "print-dir", false, "print the last visited directory instead of starting a shell")
	flags.StringVar(&o.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&o.memProfile, "memprofile", "", "write memory profile to `file`")
	flags.StringVar(&o.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	return cmd
}

func run(cmd *cobra.Command, o options, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.shellPath != "" {
		cfg.Shell = o.shellPath
	}

	log, logCloser, err := logging.New(cfg.LogFile, cfg.Debug || o.debug)
	if err != nil {
		return err
	}
	defer func() {
		_ = logCloser.Close()
	}()

	if o.pprofAddr != "" {
		go func() {
			if err := httpListenAndServe(o.pprofAddr, nil); err != nil {
				log.WithError(err).Error("pprof server error")
			}
		}()
	}
	if o.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(o.cpuProfile, log)
		defer stopCPUProfiling()
	}
	if o.memProfile != "" {
		defer profiling.DoMemProfiling(o.memProfile, log)()
	}

	startDir, err := resolveStartDir(args, cfg)
	if err != nil {
		return err
	}
	log.WithField("dir", startDir).Info("session started")

	app := newApp()
	browser := cdtug.SetupApp(app, osfile.NewStore(), startDir, navigator.WithLogger(log))
	if err = app.Run(); err != nil {
		return fmt.Errorf("terminal session failed: %w", err)
	}

	lastDir := lastVisitedDir(browser.Path())
	log.WithFields(logrus.Fields{"dir": lastDir, "print": o.printDir}).Info("session ended")
	if o.printDir {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), lastDir)
		return err
	}
	return runShell(cmd.Context(), shell.NewSession(cfg.ShellOrDefault(), lastDir))
}

// lastVisitedDir is p, or its parent when the session ended on a file.
func lastVisitedDir(p string) string {
	if exists, err := fsutils.DirExists(p); err == nil && !exists {
		if _, statErr := os.Stat(p); statErr == nil {
			return files.ParentOf(p)
		}
	}
	return p
}

// resolveStartDir returns an absolute start dir: the argument, then the
// configured start_dir, then the working directory.
func resolveStartDir(args []string, cfg *config.Config) (string, error) {
	dir := ""
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	} else if cfg.StartDir != "" {
		dir = cfg.StartDir
	}
	if dir != "" {
		abs, err := filepathAbs(fsutils.ExpandHome(dir))
		if err != nil {
			return "", fmt.Errorf("failed to resolve start directory %s: %w", dir, err)
		}
		return filepath.ToSlash(abs), nil
	}
	dir, err := osGetwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return dir, nil
}
