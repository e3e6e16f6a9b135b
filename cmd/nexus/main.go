// Command nexus is the PriceNexus deal finder: a terminal dashboard that
// sources product listings through a generative-AI bridge with a demo-catalog
// fallback, plus small subcommands for scripted use.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"pricenexus/cmd/nexus/ui"
	"pricenexus/internal/auth"
	"pricenexus/internal/bridge"
	"pricenexus/internal/catalog"
	"pricenexus/internal/chat"
	"pricenexus/internal/config"
	"pricenexus/internal/images"
	"pricenexus/internal/logging"
	"pricenexus/internal/search"
)

var version = "1.0.0"

var (
	cfgPath string
	debug   bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nexus",
		Short: "AI-powered price comparison for Indian stores",
		Long: `PriceNexus finds live product listings through a generative-AI bridge,
falls back to a built-in demo catalog when offline, and ranks everything
cheapest first.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "nexus.yaml", "path to config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(searchCmd(), analyzeCmd(), loginCmd(), versionCmd())
	return root
}

// setup loads .env and config and initializes both loggers.
func setup(cmd *cobra.Command, args []string) error {
	// A missing .env is fine; explicit env always wins anyway.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Logging.Debug = true
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	categories := map[string]bool(nil)
	if len(cfg.Logging.Categories) > 0 {
		categories = make(map[string]bool, len(cfg.Logging.Categories))
		for _, c := range cfg.Logging.Categories {
			categories[c] = true
		}
	}
	if err := logging.Initialize(cfg.Logging.Dir, logging.Settings{
		Debug:      cfg.Logging.Debug,
		Level:      cfg.Logging.Level,
		JSONFormat: cfg.Logging.Format == "json",
		Categories: categories,
	}); err != nil {
		return fmt.Errorf("initializing logs: %w", err)
	}

	if cfg.Logging.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	logging.Boot("nexus %s starting (bridge configured: %v, auth configured: %v)",
		version, cfg.BridgeConfigured(), cfg.AuthConfigured())
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logger != nil {
		logger.Sync()
	}
	logging.CloseAll()
}

// newBridgeClient builds the Gemini client, or returns nil when credentials
// are absent so callers degrade to demo mode.
func newBridgeClient(ctx context.Context) bridge.Client {
	if !cfg.BridgeConfigured() {
		logger.Info("no bridge credentials, running in demo mode")
		return nil
	}
	client, err := bridge.NewGeminiClient(ctx, bridge.GeminiConfig{
		APIKey:      cfg.Bridge.APIKey,
		SearchModel: cfg.Bridge.SearchModel,
		ChatModel:   cfg.Bridge.ChatModel,
		ImageModel:  cfg.Bridge.ImageModel,
		Timeout:     cfg.GetBridgeTimeout(),
		MinInterval: cfg.GetBridgeMinInterval(),
	})
	if err != nil {
		logger.Warn("bridge client unavailable, running in demo mode", zap.Error(err))
		return nil
	}
	return client
}

// newAuthProvider picks the real identity backend or the simulated one.
func newAuthProvider() auth.Provider {
	if cfg.AuthConfigured() {
		fb := auth.DefaultFirebaseConfig()
		fb.APIKey = cfg.Auth.APIKey
		fb.ProjectID = cfg.Auth.ProjectID
		fb.Timeout = cfg.GetAuthTimeout()
		provider, err := auth.NewFirebaseProvider(fb)
		if err == nil {
			return provider
		}
		logger.Warn("identity backend unavailable, simulating sign-in", zap.Error(err))
	}
	return auth.NewSimulatedProvider(cfg.GetSimulatedDelay())
}

func runDashboard(ctx context.Context) error {
	client := newBridgeClient(ctx)
	demo := catalog.Demo()
	ctrl := search.NewController(client, demo, cfg.GetSearchTimeout())

	var gen images.Generator
	if client != nil {
		gen = client
	}

	deps := ui.Deps{
		Session:    search.NewSession(ctrl),
		Controller: ctrl,
		Resolver:   images.NewResolver(gen, cfg.GetImageTimeout()),
		Chat:       chat.NewSession(client, cfg.GetChatTimeout()),
		Auth:       newAuthProvider(),
		Demo:       demo,
	}

	// The program does not exist yet when the model is built, so route
	// Send through a late-bound pointer. Nothing calls Send before the
	// first keystroke, which is after Run starts.
	var program *tea.Program
	deps.Send = func(msg tea.Msg) {
		if program != nil {
			program.Send(msg)
		}
	}

	program = tea.NewProgram(ui.New(ctx, deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func searchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run one search and print the ranked results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			client := newBridgeClient(cmd.Context())
			ctrl := search.NewController(client, catalog.Demo(), cfg.GetSearchTimeout())

			res := ctrl.Search(cmd.Context(), query)
			catalog.SortByBestPrice(res.Products)

			for i := range res.Products {
				if res.Products[i].Image == "" {
					p := &res.Products[i]
					p.Image = images.Placeholder(p.Category, p.ID)
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res.Products)
			}

			if len(res.Products) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No deals found for %q.\n", query)
				return nil
			}
			if res.Simulated {
				fmt.Fprintln(cmd.OutOrStdout(), "(demo catalog results)")
			}
			for i, p := range res.Products {
				best := p.BestPrice()
				price := "price unavailable"
				if best > 0 && !math.IsInf(best, 1) {
					price = fmt.Sprintf("₹%.0f", best)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s — %s (★ %.1f)\n", i+1, p.Name, price, p.Rating)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <query>",
		Short: "Search and print a value verdict for the top result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			client := newBridgeClient(cmd.Context())
			ctrl := search.NewController(client, catalog.Demo(), cfg.GetSearchTimeout())

			res := ctrl.Search(cmd.Context(), query)
			catalog.SortByBestPrice(res.Products)
			if len(res.Products) == 0 {
				return fmt.Errorf("no results for %q", query)
			}

			top := res.Products[0]
			verdict := ctrl.Analyze(cmd.Context(), top)
			if rendered, err := glamour.Render("**"+top.Name+"**\n\n"+verdict, "dark"); err == nil {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", top.Name, verdict)
			return nil
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Check credentials against the identity backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			password, err := readPassword(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}

			provider := newAuthProvider()
			user, err := provider.SignIn(cmd.Context(), args[0], password)
			if err != nil {
				return fmt.Errorf("%s", auth.Message(err))
			}
			mode := "live"
			if provider.Simulated() {
				mode = "simulated"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (uid %s, %s)\n", user.Email, user.UID, mode)
			return nil
		},
	}
}

// readPassword reads a password without echo when stdin is a terminal, and
// falls back to a plain line read otherwise (pipes, tests).
func readPassword(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nexus version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nexus %s\n", version)
		},
	}
}
