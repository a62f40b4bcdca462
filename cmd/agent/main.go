package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	manager "github.com/mutablelogic/go-agentkit/pkg/manager"
	remote "github.com/mutablelogic/go-agentkit/pkg/remote"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	session "github.com/mutablelogic/go-agentkit/pkg/session"
	version "github.com/mutablelogic/go-agentkit/pkg/version"
	client "github.com/mutablelogic/go-client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Logging
	Verbosity  string `name:"verbosity" enum:"quiet,normal,verbose,debug" default:"normal" help:"Logging verbosity (${enum})"`
	TraceLevel string `name:"trace-level" enum:"none,minimal,standard,detailed,raw" default:"none" help:"Remote reasoning trace level (${enum})"`

	// Orchestrator
	Endpoint string        `name:"endpoint" env:"AGENT_ENDPOINT" default:"http://localhost:8080/api" help:"Orchestrator API endpoint"`
	Token    string        `name:"token" env:"AGENT_TOKEN" help:"Orchestrator bearer token"`
	Timeout  time.Duration `name:"timeout" default:"2m" help:"Request timeout"`

	// Agent
	File         string `name:"agent" short:"a" env:"AGENT_FILE" help:"Agent definition file (YAML)"`
	MaxToolCalls uint   `name:"max-tool-calls" default:"10" help:"Maximum number of local function calls per run"`
	SessionDir   string `name:"session-dir" env:"AGENT_SESSIONS" help:"Directory for session transcripts (default: user cache directory)"`
	Root         string `name:"root" type:"path" help:"Let the agent read files under this directory"`

	// Context
	ctx       context.Context
	execName  string
	verbosity schema.Verbosity
	level     schema.TraceLevel
	logger    *slog.Logger
}

type CLI struct {
	Globals

	// Commands
	Run       RunCmd       `cmd:"" help:"Send text to the agent and print the answer"`
	Chat      ChatCmd      `cmd:"" help:"Start an interactive chat session"`
	Functions FunctionsCmd `cmd:"" help:"List the functions available to the agent"`
	Sessions  SessionsCmd  `cmd:"" help:"List recorded sessions"`
	Session   SessionCmd   `cmd:"" help:"Show or delete a recorded session"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Client for remote agents which return control to local functions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Logging
	var err error
	if cli.Globals.verbosity, err = schema.ParseVerbosity(cli.Verbosity); err != nil {
		cmd.FatalIfErrorf(err)
	}
	if cli.Globals.level, err = schema.ParseTraceLevel(cli.TraceLevel); err != nil {
		cmd.FatalIfErrorf(err)
	}
	cli.Globals.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: schema.LevelTrace}))

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
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

// clientOpts returns the transport options. Wire tracing is enabled at
// debug verbosity.
func (g *Globals) clientOpts() []client.ClientOpt {
	result := []client.ClientOpt{
		client.OptTimeout(g.Timeout),
		client.OptUserAgent(version.UserAgent(g.execName)),
	}
	if g.Token != "" {
		result = append(result, remote.OptToken(g.Token))
	}
	if g.verbosity == schema.VerbosityDebug {
		result = append(result, client.OptTrace(os.Stderr, true))
	}
	return result
}

// store returns the transcript store
func (g *Globals) store() (*session.FileStore, error) {
	dir := g.SessionDir
	if dir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(cache, g.execName, "sessions")
	}
	return session.NewFileStore(dir)
}

// manager returns a manager for the orchestrator endpoint
func (g *Globals) manager() (*manager.Manager, error) {
	client, err := remote.New(g.Endpoint, g.clientOpts()...)
	if err != nil {
		return nil, err
	}
	store, err := g.store()
	if err != nil {
		return nil, err
	}
	return manager.New(client,
		manager.WithLogger(g.logger),
		manager.WithVerbosity(g.verbosity),
		manager.WithTraceLevel(g.level),
		manager.WithMaxToolCalls(g.MaxToolCalls),
		manager.WithSessionStore(store),
	)
}
