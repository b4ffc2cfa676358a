package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitalmech/neoscope/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show one NEO by designation or name",
	Long: `Inspect looks up a single near-Earth object by its primary designation
(exact, e.g. "433") or by its IAU name (e.g. "Eros") and prints its
attributes. With --verbose its close approaches are listed as well.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringP("designation", "d", "", "primary designation of the NEO")
	inspectCmd.Flags().StringP("name", "n", "", "IAU name of the NEO")
	inspectCmd.MarkFlagsOneRequired("designation", "name")
	inspectCmd.MarkFlagsMutuallyExclusive("designation", "name")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(cmd)

	db, err := loadDatabase(cfg)
	if err != nil {
		return err
	}

	designation, _ := cmd.Flags().GetString("designation")
	name, _ := cmd.Flags().GetString("name")

	if designation != "" {
		n, ok := db.NEOByDesignation(designation)
		if !ok {
			return fmt.Errorf("no NEO with designation %q", designation)
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.NEODetail(n, cfg.Verbose))
		return nil
	}

	n, ok := db.NEOByName(name)
	if !ok {
		return fmt.Errorf("no NEO named %q", name)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.NEODetail(n, cfg.Verbose))
	return nil
}
