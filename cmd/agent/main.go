package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	agent "github.com/mutablelogic/go-agent"
	banktool "github.com/mutablelogic/go-agent/pkg/banktool"
	calctool "github.com/mutablelogic/go-agent/pkg/calctool"
	openai "github.com/mutablelogic/go-agent/pkg/provider/openai"
	runner "github.com/mutablelogic/go-agent/pkg/runner"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	tool "github.com/mutablelogic/go-agent/pkg/tool"
	client "github.com/mutablelogic/go-client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Providers
	OpenAI `embed:"" help:"OpenAI configuration"`

	// Profile
	Profile string `name:"profile" type:"path" help:"Agent profile (YAML)" optional:""`

	// Context
	ctx       context.Context
	completer agent.Completer
	clients   []agent.Client
	toolkit   *tool.Toolkit
	profile   *schema.Profile
}

type OpenAI struct {
	OpenAIKey string `env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIURL string `env:"OPENAI_URL" help:"OpenAI-compatible endpoint"`
}

type CLI struct {
	Globals

	Chat    ChatCmd    `cmd:"" help:"Interactive chat with tools"`
	Ask     AskCmd     `cmd:"" help:"Ask a single question"`
	Models  ModelsCmd  `cmd:"" help:"Return a list of models"`
	Tools   ToolsCmd   `cmd:"" help:"Return a list of tools"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Tool-calling agent command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Load the profile
	if cli.Profile != "" {
		profile, err := schema.LoadProfile(cli.Profile)
		cmd.FatalIfErrorf(err)
		cli.Globals.profile = profile
	}

	// Client options
	clientopts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, cli.Verbose))
	}

	// Create the provider
	if cli.OpenAIKey != "" || cli.OpenAIURL != "" {
		if cli.OpenAIURL != "" {
			clientopts = append(clientopts, client.OptEndpoint(cli.OpenAIURL))
		}
		provider, err := openai.New(cli.OpenAIKey, clientopts...)
		cmd.FatalIfErrorf(err)
		cli.Globals.completer = provider
		cli.Globals.clients = append(cli.Globals.clients, provider)
	}

	// Create the toolkit
	toolkit, err := newToolkit(&cli.Globals)
	cmd.FatalIfErrorf(err)
	cli.Globals.toolkit = toolkit

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// newToolkit registers the demo tools, filtered by the profile when it
// names specific tools
func newToolkit(globals *Globals) (*tool.Toolkit, error) {
	tools := calctool.NewTools()
	tools = append(tools, banktool.New(os.Stdin, os.Stdout, map[string]float64{
		"checking": 1000,
		"savings":  5000,
	}).Tools()...)

	if globals.profile != nil && len(globals.profile.Tools) > 0 {
		filtered := make([]tool.Tool, 0, len(tools))
		for _, t := range tools {
			if slices.Contains(globals.profile.Tools, t.Name()) {
				filtered = append(filtered, t)
			}
		}
		tools = filtered
	}
	return tool.NewToolkit(tools...)
}

// newRunner creates a runner from the globals and profile
func newRunner(globals *Globals, model, system string) (*runner.Runner, error) {
	if globals.completer == nil {
		return nil, agent.ErrBadParameter.With("no provider configured: set OPENAI_API_KEY or OPENAI_URL")
	}

	opts := []runner.Opt{
		runner.WithToolkit(globals.toolkit),
	}
	if globals.profile != nil {
		if globals.profile.Model != "" {
			opts = append(opts, runner.WithModel(globals.profile.Model))
		}
		if globals.profile.SystemPrompt != "" {
			opts = append(opts, runner.WithSystemPrompt(globals.profile.SystemPrompt))
		}
		if globals.profile.Temperature != nil {
			opts = append(opts, runner.WithTemperature(*globals.profile.Temperature))
		}
		if globals.profile.MaxIterations > 0 {
			opts = append(opts, runner.WithMaxIterations(globals.profile.MaxIterations))
		}
	}

	// Command flags override the profile
	if model != "" {
		opts = append(opts, runner.WithModel(model))
	}
	if system != "" {
		opts = append(opts, runner.WithSystemPrompt(system))
	}

	return runner.New(globals.completer, opts...)
}
