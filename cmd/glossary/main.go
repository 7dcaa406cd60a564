package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/glossary/internal/api/v1/apiv1connect"
	"github.com/at-ishikawa/glossary/internal/config"
)

type options struct {
	configFile string
	debugMode  bool
	baseURL    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "glossary",
		Short:         "Command line client for the glossary service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(opts.debugMode)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&opts.debugMode, "debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "glossary server URL (default: client.base_url from config)")

	rootCmd.AddCommand(
		newGetCommand(opts),
		newAddCommand(opts),
		newUpdateCommand(opts),
		newDeleteCommand(opts),
		newListCommand(opts),
		newSearchCommand(opts),
		newCategoryCommand(opts),
	)
	return rootCmd
}

// client connects to --base-url, or to client.base_url from the config when the flag is empty.
func (o *options) client() (apiv1connect.GlossaryServiceClient, error) {
	baseURL := o.baseURL
	if baseURL == "" {
		loader, err := config.NewConfigLoader(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
		}
		cfg, err := loader.Load()
		if err != nil {
			return nil, fmt.Errorf("loader.Load() > %w", err)
		}
		baseURL = cfg.Client.BaseURL
	}
	slog.Debug("connecting", "base_url", baseURL)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	return apiv1connect.NewGlossaryServiceClient(httpClient, baseURL), nil
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelWarn
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

// printError prints RPC errors with their code so that callers can tell them apart.
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		_, _ = fmt.Fprintf(w, "%s %s\n", red.Sprintf("%s:", connectErr.Code()), connectErr.Message())
		return
	}
	_, _ = fmt.Fprintf(w, "%s %v\n", red.Sprint("error:"), err)
}
