package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/urlpath"
)

var checkQuiet bool

var checkCmd = &cobra.Command{
	Use:   "check [url...]",
	Short: "Check whether every URL is a local file URL",
	Long: `Print "local" when every URL starts with file:/// and "not local"
otherwise. The command fails when any URL is not local, so it can be used
in scripts:

  droppath check -q "$URL" && open "$(droppath resolve "$URL")"`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "print nothing, only set the exit status")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	urls, err := readArgsOrStdin(cmd.InOrStdin(), args)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	if urlpath.FromMany(urls).AreAllLocal() {
		if !checkQuiet {
			fmt.Fprintln(cmd.OutOrStdout(), "local")
		}
		return nil
	}

	if !checkQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), "not local")
	}
	cmd.SilenceErrors = checkQuiet
	return domain.ErrNotLocal
}
