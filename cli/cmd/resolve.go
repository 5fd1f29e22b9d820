package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/skiffrun/skiff/cli/render"
	"github.com/skiffrun/skiff/resolve"
)

// ResolveResponse is the response for the resolve command.
type ResolveResponse struct {
	Root          string `json:"root"`
	Source        string `json:"source"`
	EngineVersion string `json:"engine_version"`
	Entry         string `json:"entry,omitempty"`
}

// ResolveCommand returns the resolve command. It reports which engine
// a launch from the current directory would delegate to, without
// invoking anything.
func ResolveCommand() *cli.Command {
	return &cli.Command{
		Name:   "resolve",
		Usage:  "Show the project root and engine a launch would use",
		Flags:  ReadOnlyFlags(),
		Action: resolveAction,
	}
}

func resolveAction(c *cli.Context) error {
	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	resp, err := resolveResponse(cwd)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}

	return r.Render(resp)
}

// resolveResponse runs resolution and shapes it for rendering.
func resolveResponse(cwd string) (*ResolveResponse, error) {
	res, err := resolve.Resolve(cwd)
	if err != nil {
		return nil, err
	}
	return &ResolveResponse{
		Root:          res.Root,
		Source:        string(res.Source),
		EngineVersion: res.Version,
		Entry:         res.Entry,
	}, nil
}
