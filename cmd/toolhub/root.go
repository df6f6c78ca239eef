// In file: cmd/toolhub/root.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dileep-u-k/toolhub/internal/llm"
	"github.com/dileep-u-k/toolhub/internal/logging"
	"github.com/dileep-u-k/toolhub/internal/session"
	"github.com/dileep-u-k/toolhub/internal/tools"
)

// app carries the state shared by every command. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	stateFile   string
	catalogFile string
	logLevel    string

	log     *logging.Logger
	store   *session.FileStore
	catalog *tools.Catalog

	// factory overrides the Gemini client factory; nil means the real one.
	factory llm.ClientFactory
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolhub",
		Short: "Run AI writing and developer tools from the terminal",
		Long: `toolhub lists a catalog of single-purpose AI tools and runs them
against the Gemini API. Set GEMINI_API_KEY, or save your own key with
"toolhub key set".`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.stateFile, "state", "", "state file (default ~/.toolhub/state.yaml)")
	cmd.PersistentFlags().StringVar(&a.catalogFile, "catalog", "", "YAML catalog file (default: built-in tools)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newToolsCmd(a))
	cmd.AddCommand(newCategoriesCmd(a))
	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newKeyCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) init() error {
	// A missing .env is the normal case outside development.
	_ = godotenv.Load()

	a.log = logging.New(nil, a.logLevel)

	if a.stateFile == "" {
		path, err := session.DefaultStatePath()
		if err != nil {
			return err
		}
		a.stateFile = path
	}
	a.store = session.NewFileStore(a.stateFile)

	if a.catalogFile == "" {
		a.catalog = tools.Default()
		return nil
	}
	f, err := os.Open(a.catalogFile)
	if err != nil {
		return fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	a.catalog, err = tools.Load(f)
	return err
}

// newGateway builds a gateway bound to the environment's default key.
func (a *app) newGateway() *llm.Gateway {
	defaultKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if defaultKey == "" {
		defaultKey = strings.TrimSpace(os.Getenv("API_KEY"))
	}
	return llm.NewGateway(defaultKey,
		llm.WithModel(strings.TrimSpace(os.Getenv("GEMINI_MODEL"))),
		llm.WithLogger(a.log.Sub("llm.gateway")),
		llm.WithClientFactory(a.factory),
	)
}
