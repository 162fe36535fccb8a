package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/alias"
	"github.com/pintas-sh/pintas/internal/config"
)

var listTable bool

func init() {
	listCmd.Flags().BoolVar(&listTable, "table", false, "render aliases as a table")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all aliases",
	Long: `List prints every stored alias sorted by name, so output order is
stable regardless of when aliases were added.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	path, err := storePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Available aliases:")

	aliases := alias.Sorted(cfg)
	if len(aliases) == 0 {
		fmt.Fprintln(w, "No aliases found.")
		return nil
	}

	if listTable {
		renderTable(w, aliases)
		return nil
	}

	for _, a := range aliases {
		fmt.Fprintf(w, " - %s: \"%s\"\n", a.Name, a.Command)
	}
	return nil
}

func renderTable(w io.Writer, aliases []alias.Alias) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Alias", "Command"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, a.Command})
	}
	table.Render()
}
