package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/your-org/swot-reporter/api/server"
	"github.com/your-org/swot-reporter/internal/app"
	"github.com/your-org/swot-reporter/internal/config"
	"github.com/your-org/swot-reporter/llm/workflow"
)

var (
	configFile string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reporter",
		Short: "Competitor SWOT report generator",
		Long: `Generates a competitor analysis report for a startup or product topic.
Five agents run in sequence: a searcher gathers competitor data through the
Tavily web search API, an analyst preprocesses it, a comparison agent
contrasts features, a SWOT agent assesses strengths and weaknesses, and a
report agent writes the final document using Groq-hosted models.`,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	reportCmd := &cobra.Command{
		Use:   "report [topic]",
		Short: "Generate a SWOT report for a topic",
		Long:  `Run the full report workflow for the given topic. Defaults to "Dell" when no topic is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReport,
	}
	reportCmd.Flags().Bool("no-cache", false, "skip the report cache")
	reportCmd.Flags().Bool("json", false, "emit the result as JSON instead of rendered markdown")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the report HTTP server",
		RunE:  runServe,
	}

	agentsCmd := &cobra.Command{
		Use:   "agents",
		Short: "List the registered agents",
		RunE:  runAgents,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [filename]",
		Short: "Create a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	configValidateCmd := &cobra.Command{
		Use:   "validate [filename]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigValidate,
	}
	configCmd.AddCommand(configInitCmd, configValidateCmd)

	rootCmd.AddCommand(reportCmd, serveCmd, agentsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	topic := "Dell"
	if len(args) > 0 {
		topic = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	noCache, _ := cmd.Flags().GetBool("no-cache")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	cancel := func() {}
	if cfg.Groq.Timeout > 0 {
		// Overall budget: each of the five stages gets the provider timeout.
		ctx, cancel = context.WithTimeout(ctx, 5*cfg.GroqTimeout())
	}
	defer cancel()

	report, err := application.Generator.Run(ctx, topic, workflow.Options{
		UseCache: cfg.Workflow.UseCache && !noCache,
	})
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	out := report.Content
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if rendered, rerr := glamour.Render(report.Content, "auto"); rerr == nil {
			out = rendered
		}
	}
	fmt.Print(out)

	if report.Cached {
		fmt.Fprintln(os.Stderr, "\n(served from cache)")
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	srv := server.New(server.Config{
		Address:         cfg.Server.Address,
		UseCache:        cfg.Workflow.UseCache,
		ShutdownTimeout: cfg.ShutdownTimeout(),
	}, application.Generator, application.Agents, application.Tools, application.Logger)

	return srv.Start()
}

func runAgents(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	for _, agent := range application.Agents.List() {
		fmt.Printf("%-12s %s\n", agent.Name(), agent.Description())
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	filename := "reporter-config.json"
	if len(args) > 0 {
		filename = args[0]
	}

	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("config file already exists: %s", filename)
	}

	cfg := config.DefaultConfig()
	if err := cfg.SaveToFile(filename); err != nil {
		return err
	}

	fmt.Printf("Created default configuration: %s\n", filename)
	fmt.Println("Set GROQ_API_KEY and TAVILY_API_KEY in the environment before running a report.")
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Configuration is valid: %s\n", args[0])
	if verbose {
		fmt.Println(cfg.String())
	}
	return nil
}
