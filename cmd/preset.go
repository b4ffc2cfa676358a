package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitalmech/neoscope/internal/filter"
	"github.com/orbitalmech/neoscope/internal/preset"
	"github.com/orbitalmech/neoscope/internal/ui"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved query presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the presets in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the given query criteria under a name",
	Long: `Save stores the supplied filter flags as a named preset in the catalog,
replacing any existing preset with the same name. The preset can then be
applied with "neoscope query --preset NAME".`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetSave,
}

func init() {
	addCriteriaFlags(presetSaveCmd)
	presetSaveCmd.Flags().Int("limit", 0, "default result limit for this preset")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetSaveCmd)
	rootCmd.AddCommand(presetCmd)
}

func runPresetList(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(cmd)

	cat, err := preset.Load(cfg.PresetsPath)
	if err != nil {
		return err
	}
	if len(cat.Presets) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no presets in %s\n", cfg.PresetsPath)
		return nil
	}

	for _, p := range cat.Presets {
		crit, err := p.Criteria()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d filter(s)", p.Name, len(crit.Build()))
		if p.Limit > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), ", limit %d", p.Limit)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	name := args[0]

	crit, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	cat, err := preset.Load(cfg.PresetsPath)
	if err != nil {
		return err
	}

	p := presetFromCriteria(name, crit, limit)
	replaced := false
	for i := range cat.Presets {
		if cat.Presets[i].Name == name {
			cat.Presets[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		cat.Presets = append(cat.Presets, p)
	}

	if err := preset.Save(cfg.PresetsPath, cat); err != nil {
		return err
	}

	if cfg.Verbose {
		ui.Infof("preset %q saved to %s", name, cfg.PresetsPath)
	}
	return nil
}

// presetFromCriteria converts criteria back into the stored preset shape,
// formatting dates as the catalog expects.
func presetFromCriteria(name string, crit filter.Criteria, limit int) preset.Preset {
	p := preset.Preset{
		Name:        name,
		Limit:       limit,
		DistanceMin: crit.DistanceMin,
		DistanceMax: crit.DistanceMax,
		VelocityMin: crit.VelocityMin,
		VelocityMax: crit.VelocityMax,
		DiameterMin: crit.DiameterMin,
		DiameterMax: crit.DiameterMax,
		Hazardous:   crit.Hazardous,
	}
	const layout = "2006-01-02"
	if crit.Date != nil {
		p.Date = crit.Date.Format(layout)
	}
	if crit.StartDate != nil {
		p.StartDate = crit.StartDate.Format(layout)
	}
	if crit.EndDate != nil {
		p.EndDate = crit.EndDate.Format(layout)
	}
	return p
}
