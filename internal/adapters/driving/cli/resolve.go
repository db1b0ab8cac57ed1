package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/droppath/internal/urlpath"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [url...]",
	Short: "Convert file URLs to local paths",
	Long: `Convert URLs to local filesystem paths, one per line, in input order.

With no arguments, URLs are read from stdin one per line.

Examples:
  droppath resolve "file:///home/me/My%20Docs"
  droppath resolve --platform windows "file:///C:/Users/me"
  pbpaste | droppath resolve --json`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(resolveCmd)
}

// resolveOutput is the JSON shape printed by resolve --json.
type resolveOutput struct {
	Local    bool     `json:"local"`
	Platform string   `json:"platform"`
	URLs     []string `json:"urls"`
	Paths    []string `json:"paths"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	urls, err := readArgsOrStdin(cmd.InOrStdin(), args)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs given")
	}

	platform, err := effectivePlatform()
	if err != nil {
		return err
	}

	helper := urlpath.FromMany(urls, urlpath.WithPlatform(platform))
	paths, err := helper.LocalFilePaths()
	if err != nil {
		return err
	}

	if resolveJSON {
		data, err := json.MarshalIndent(resolveOutput{
			Local:    helper.AreAllLocal(),
			Platform: platform.String(),
			URLs:     helper.URLs(),
			Paths:    paths,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	return nil
}
