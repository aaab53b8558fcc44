// Package mcp exposes the resolved symlint configuration to MCP clients
// over stdio.
package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/DevSymphony/symlint/internal/config"
	"github.com/DevSymphony/symlint/internal/files"
	"github.com/DevSymphony/symlint/internal/inspect"
)

// Server is a MCP (Model Context Protocol) server.
// The configuration is reloaded on every tool call so edits are picked up
// without a restart.
type Server struct {
	configPath string
	root       string
	resolver   config.Resolver
	version    string
}

// NewServer creates a new MCP server instance. Relative config paths are
// resolved against root.
func NewServer(configPath, root, version string, r config.Resolver) *Server {
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}
	return &Server{configPath: configPath, root: root, resolver: r, version: version}
}

// Start runs the server over stdio until the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	log.Info("starting MCP server", "config", s.configPath, "root", s.root)
	return s.SDKServer().Run(ctx, &sdkmcp.StdioTransport{})
}

// DescribeConfigInput represents the input schema for the describe_config tool.
type DescribeConfigInput struct {
	Disable []string `json:"disable,omitempty" jsonschema:"Module ids to treat as disabled (optional)"`
}

// FindPluginInput represents the input schema for the find_plugin tool.
type FindPluginInput struct {
	Extension string `json:"extension" jsonschema:"File extension such as .md or md"`
}

// FindPluginOutput is the find_plugin result.
type FindPluginOutput struct {
	Extension string `json:"extension"`
	Plugin    string `json:"plugin,omitempty"`
	Found     bool   `json:"found"`
}

// ListFilesInput represents the input schema for the list_files tool.
type ListFilesInput struct {
	Include []string `json:"include,omitempty" jsonschema:"Glob patterns to include (optional, defaults to all files)"`
	Exclude []string `json:"exclude,omitempty" jsonschema:"Glob patterns to exclude (optional)"`
}

// ListFilesOutput is the list_files result.
type ListFilesOutput struct {
	Files []files.Target `json:"files"`
}

// SDKServer builds the go-sdk server with all tools registered.
func (s *Server) SDKServer() *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "symlint",
		Version: s.version,
	}, nil)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "describe_config",
		Description: "Show the configured plugins, rules and filter rules with their normalized options and the file extensions that will be linted.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input DescribeConfigInput) (*sdkmcp.CallToolResult, inspect.Summary, error) {
		summary, err := s.describe(input)
		if err != nil {
			return nil, inspect.Summary{}, err
		}
		return nil, *summary, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "find_plugin",
		Description: "Find the enabled plugin that processes files with the given extension.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input FindPluginInput) (*sdkmcp.CallToolResult, FindPluginOutput, error) {
		out, err := s.findPlugin(input)
		return nil, out, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_files",
		Description: "List the files under the project root that an enabled plugin will process.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListFilesInput) (*sdkmcp.CallToolResult, ListFilesOutput, error) {
		out, err := s.listFiles(input)
		return nil, out, err
	})

	return server
}

func (s *Server) describe(input DescribeConfigInput) (*inspect.Summary, error) {
	kd, err := inspect.Load(s.configPath, s.resolver)
	if err != nil {
		return nil, err
	}
	if len(input.Disable) > 0 {
		kd = inspect.Disable(kd, input.Disable)
	}
	return inspect.Summarize(kd)
}

func (s *Server) findPlugin(input FindPluginInput) (FindPluginOutput, error) {
	out := FindPluginOutput{Extension: inspect.NormalizeExtension(input.Extension)}
	if out.Extension == "" {
		return out, fmt.Errorf("extension is required")
	}

	kd, err := inspect.Load(s.configPath, s.resolver)
	if err != nil {
		return out, err
	}
	d, err := kd.Plugins.FindByExtension(out.Extension)
	if err != nil {
		return out, err
	}
	if d != nil {
		out.Plugin = d.ID()
		out.Found = true
	}
	return out, nil
}

func (s *Server) listFiles(input ListFilesInput) (ListFilesOutput, error) {
	kd, err := inspect.Load(s.configPath, s.resolver)
	if err != nil {
		return ListFilesOutput{}, err
	}
	targets, err := files.Collect(os.DirFS(s.root), &files.Selector{Include: input.Include, Exclude: input.Exclude}, kd.Plugins)
	if err != nil {
		return ListFilesOutput{}, err
	}
	if targets == nil {
		targets = []files.Target{}
	}
	return ListFilesOutput{Files: targets}, nil
}
