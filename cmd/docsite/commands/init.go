package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory to place the generated docsite.yaml in"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	cfgPath := root.Config
	// If the user specified an output directory, place the config there.
	if i.Output != "" {
		cfgPath = filepath.Join(i.Output, config.DefaultPath)
	}
	_, _ = fmt.Fprintf(g.Out, "Writing configuration to %s\n", cfgPath)
	if err := config.Init(cfgPath, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(g.Out, "initialized successfully")
	return nil
}
