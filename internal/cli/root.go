// Package cli implements the scratchbook command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/internal/logger"
	"github.com/mesh-intelligence/scratchbook/internal/paths"
	"github.com/mesh-intelligence/scratchbook/pkg/sqlite"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app carries the state one invocation shares across its commands.
type app struct {
	flags    rootFlags
	settings settings
	dataDir  string
	log      logger.Logger
	catalog  types.Catalog
}

// NewRootCmd creates the top-level "scratchbook" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{log: logger.NewNop()}

	root := &cobra.Command{
		Use:   "scratchbook",
		Short: "A local catalog for scratchcard and lottery ticket collections",
		Long: "Scratchbook keeps a scratchcard and lottery ticket collection in a local\n" +
			"database: scanned images, documents and reference websites, with search,\n" +
			"statistics and JSON/CSV backups.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return userError(err)
	})

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newItemCmd(a),
		newDocCmd(a),
		newSiteCmd(a),
		newStatsCmd(a),
		newMapCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newServeCmd(a),
	)
	return root, a
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root, a := newRootCmd()
	return run(context.Background(), root, a, os.Args[1:], os.Stderr)
}

// run executes root and always releases what the command opened, whether
// it succeeded or not. A failure to detach fails an otherwise successful run.
func run(ctx context.Context, root *cobra.Command, a *app, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if cerr := a.close(); cerr != nil && err == nil {
		err = fmt.Errorf("close catalog: %w", cerr)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitCode(err)
	}
	return exitSuccess
}

// setup resolves directories, loads config and builds the logger. It does
// not open the catalog; commands that need it call open.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	s, err := loadSettings(configDir)
	if err != nil {
		return err
	}
	a.settings = s

	a.dataDir, err = paths.ResolveDataDir(a.flags.dataDir, s.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	level := s.LogLevel
	if a.flags.logLevel != "" {
		level = a.flags.logLevel
	}
	log, err := logger.New(level, isatty.IsTerminal(os.Stderr.Fd()))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.log = log.With(logger.String("cmd", cmd.Name()))
	return nil
}

// open attaches the catalog for the resolved data directory. Repeated
// calls return the same catalog.
func (a *app) open() (types.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}
	c := sqlite.NewBackend()
	err := c.Attach(types.Config{Backend: a.settings.Backend, DataDir: a.dataDir})
	if err != nil {
		if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) {
			return nil, userError(err)
		}
		return nil, fmt.Errorf("attach catalog: %w", err)
	}
	a.catalog = c
	return c, nil
}

func (a *app) table(name string) (types.Table, error) {
	c, err := a.open()
	if err != nil {
		return nil, err
	}
	return c.GetTable(name)
}

func (a *app) close() error {
	_ = a.log.Sync()
	if a.catalog == nil {
		return nil
	}
	err := a.catalog.Detach()
	a.catalog = nil
	return err
}
