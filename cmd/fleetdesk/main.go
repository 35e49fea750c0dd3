package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/fleetdesk/fleetdesk/internal/api"
	"github.com/fleetdesk/fleetdesk/internal/config"
	applog "github.com/fleetdesk/fleetdesk/internal/log"
	"github.com/fleetdesk/fleetdesk/internal/store"
	"github.com/fleetdesk/fleetdesk/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("fleetdesk %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := applog.SetupLogger(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = applog.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting fleetdesk", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	client := api.NewClient(cfg.Server.URL, cfg.Server.Token, logger)

	prefs, err := store.NewPrefStore(config.DefaultPrefsPath(), cfg.Server.URL)
	if err != nil {
		// Preferences are a convenience; run without persistence
		logger.Warn("preference store unavailable", "error", err)
		prefs, _ = store.NewPrefStore("", cfg.Server.URL)
	}
	defer prefs.Close()

	if err := prefs.SaveSession(store.Session{
		ServerURL: cfg.Server.URL,
		Username:  cfg.Server.Username,
		LastSeen:  time.Now(),
	}); err != nil {
		logger.Warn("failed to record session", "error", err)
	}

	model := tui.New(client, prefs, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when not configured
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Fleetdesk!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	var serverURL string
	for {
		fmt.Print("Enter your backend URL (e.g., https://erp.example.com): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		serverURL = strings.TrimSpace(input)
		if serverURL == "" {
			fmt.Println("Backend URL cannot be empty. Please try again.")
			continue
		}
		break
	}

	fmt.Print("Enter your API token: ")
	tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return fmt.Errorf("API token cannot be empty")
	}

	fmt.Print("Username (optional): ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	// Verify the credentials before saving them
	fmt.Println()
	fmt.Println("Checking connection...")

	client := api.NewClient(serverURL, token, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("could not reach the backend: %w", err)
	}

	cfg.Server.URL = serverURL
	cfg.Server.Token = token
	cfg.Server.Username = strings.TrimSpace(username)

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run fleetdesk again to start the application.")

	return nil
}
