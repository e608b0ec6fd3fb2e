// Package main provides the llm-registry CLI entry point.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cecil-the-coder/llm-registry/pkg/provider"
	"github.com/cecil-the-coder/llm-registry/pkg/registry"
)

var (
	// Global flags
	configPath  string
	pluginDir   string
	noDiscovery bool
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "llm-registry",
		Short: "Inspect and validate registered LLM providers",
		Long: `A CLI for the LLM provider registry.

Lists built-in and discovered custom providers, shows their credential and
model requirements, and validates provider configurations offline.`,
		PersistentPreRunE: configureRegistry,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "llm-registry.yaml", "Registry config file")
	rootCmd.PersistentFlags().StringVar(&pluginDir, "plugin-dir", "", "Directory scanned for custom provider plugins")
	rootCmd.PersistentFlags().BoolVar(&noDiscovery, "no-discovery", false, "Skip custom provider discovery")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configureRegistry applies file/env options and flag overrides before any
// subcommand touches the default registry.
func configureRegistry(cmd *cobra.Command, args []string) error {
	opts, err := registry.LoadOptions(configPath)
	if err != nil {
		return err
	}
	if pluginDir != "" {
		opts.PluginDir = pluginDir
	}
	if noDiscovery {
		opts.DisableDiscovery = true
	}
	registry.ConfigureDefault(opts)
	return nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDISPLAY NAME\tDEFAULT MODEL\tSTREAMING")
			for _, name := range reg.List() {
				info, ok := reg.Info(name)
				if !ok {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n",
					info.Name, info.DisplayName, info.DefaultModel, info.SupportsStreaming)
			}
			return w.Flush()
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <provider>",
		Short: "Show detailed information about a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := registry.Default().Info(args[0])
			if !ok {
				return fmt.Errorf("provider %q is not registered", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:              %s\n", info.Name)
			fmt.Fprintf(out, "Display name:      %s\n", info.DisplayName)
			fmt.Fprintf(out, "Required env vars: %s\n", formatList(info.RequiredEnvVars))
			fmt.Fprintf(out, "Default model:     %s\n", valueOrNone(info.DefaultModel))
			fmt.Fprintf(out, "Available models:  %s\n", formatList(info.AvailableModels))
			fmt.Fprintf(out, "Streaming:         %t\n", info.SupportsStreaming)
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	var model string
	var temperature float32

	cmd := &cobra.Command{
		Use:   "validate <provider>",
		Short: "Validate a provider configuration offline",
		Long: `Builds a configuration from the flags and the provider's credential
environment variables, then runs the provider's own validation. No network
calls are made.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()
			p, ok := reg.Get(args[0])
			if !ok {
				return fmt.Errorf("provider %q is not registered", args[0])
			}

			cfg := provider.Config{
				Model:       model,
				Temperature: temperature,
			}
			if cfg.Model == "" {
				cfg.Model = provider.DefaultModelOf(p)
			}
			if envVars := p.RequiredEnvVars(); len(envVars) > 0 {
				cfg.APIKey = os.Getenv(envVars[0])
			}

			if err := p.ValidateConfig(cfg); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Invalid: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration for %q is valid\n", p.Name())
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Model identifier (defaults to the provider default)")
	cmd.Flags().Float32VarP(&temperature, "temperature", "t", 0.7, "Sampling temperature")
	return cmd
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
