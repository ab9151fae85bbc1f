package commands

import (
	"fmt"
	"os"
	"path/filepath"

	docker "github.com/fsouza/go-dockerclient"
	"github.com/spf13/cobra"

	"cfgtest/internal/ci"
	"cfgtest/internal/config"
)

// CICommand handles the ci command
type CICommand struct {
	config *config.Config
}

// NewCICommand creates a new CICommand
func NewCICommand(cfg *config.Config) *CICommand {
	return &CICommand{config: cfg}
}

// Execute runs the command
func (cc *CICommand) Execute(cmd *cobra.Command, args []string) error {
	targets := ci.ResolveMatrix(ci.DefaultMatrix, os.Getenv)

	repo, err := filepath.Abs(cc.config.Flags.Repo)
	if err != nil {
		return fmt.Errorf("resolve repository path: %w", err)
	}

	entryPoint := cc.config.Flags.EntryPoint
	if entryPoint == "" {
		entryPoint = config.DefaultCIEntryPoint
	}

	client, err := docker.NewClientFromEnv()
	if err != nil {
		return fmt.Errorf("connect to Docker: %w", err)
	}

	orchestrator := ci.NewOrchestrator(client, repo, entryPoint, os.Stdout)
	return orchestrator.Run(targets)
}
