package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/orbitalmech/neoscope/internal/filter"
	"github.com/orbitalmech/neoscope/internal/neo"
	"github.com/orbitalmech/neoscope/internal/preset"
	"github.com/orbitalmech/neoscope/internal/ui"
	"github.com/orbitalmech/neoscope/internal/writer"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query close approaches matching the given criteria",
	Long: `Query iterates the close-approach dataset in chronological order and
prints every approach matching all supplied criteria, capped at --limit
results. Criteria left unset impose no constraint; a bound of zero is an
active constraint. With --outfile the results are written as CSV or JSON
(chosen by extension) instead of printed.`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func init() {
	addCriteriaFlags(queryCmd)
	queryCmd.Flags().Int("limit", 0, "maximum number of results (0 = unbounded)")
	queryCmd.Flags().String("outfile", "", "write results to a .csv or .json file")
	queryCmd.Flags().String("preset", "", "apply a named preset from the preset catalog")

	rootCmd.AddCommand(queryCmd)
}

// addCriteriaFlags registers the shared filter-bound flags. Used by query
// and by "preset save", so stored presets accept exactly the query flags.
func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "approach occurs on this date (YYYY-MM-DD)")
	cmd.Flags().String("start-date", "", "approach occurs on or after this date")
	cmd.Flags().String("end-date", "", "approach occurs on or before this date")
	cmd.Flags().Float64("min-distance", 0, "minimum approach distance, au")
	cmd.Flags().Float64("max-distance", 0, "maximum approach distance, au")
	cmd.Flags().Float64("min-velocity", 0, "minimum approach velocity, km/s")
	cmd.Flags().Float64("max-velocity", 0, "maximum approach velocity, km/s")
	cmd.Flags().Float64("min-diameter", 0, "minimum NEO diameter, km")
	cmd.Flags().Float64("max-diameter", 0, "maximum NEO diameter, km")
	cmd.Flags().Bool("hazardous", false, "only potentially hazardous NEOs")
	cmd.Flags().Bool("not-hazardous", false, "only non-hazardous NEOs")
	cmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")
}

func runQuery(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(cmd)

	crit, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}

	// Limit resolution: explicit flag > preset > config default. An explicit
	// --limit 0 means unbounded.
	limit := cfg.DefaultLimit
	limitExplicit := cmd.Flags().Changed("limit")
	if limitExplicit {
		limit, _ = cmd.Flags().GetInt("limit")
	}

	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		cat, err := preset.Load(cfg.PresetsPath)
		if err != nil {
			return err
		}
		p, ok := cat.Find(name)
		if !ok {
			return fmt.Errorf("no preset named %q in %s", name, cfg.PresetsPath)
		}
		base, err := p.Criteria()
		if err != nil {
			return err
		}
		// Explicit flags win over the stored preset.
		crit = crit.Merge(base)
		if !limitExplicit && p.Limit > 0 {
			limit = p.Limit
		}
	}

	db, err := loadDatabase(cfg)
	if err != nil {
		return err
	}

	results := db.Query(crit.Build(), limit)

	outfile, _ := cmd.Flags().GetString("outfile")
	if outfile == "" {
		var matches []*neo.CloseApproach
		for ca := range results {
			matches = append(matches, ca)
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.ApproachTable(matches))
		if cfg.Verbose {
			ui.Infof("%d match(es) of %d close approaches", len(matches), db.ApproachCount())
		}
		return nil
	}

	f, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("create outfile: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(outfile)) {
	case ".csv":
		err = writer.WriteCSV(f, results)
	case ".json":
		err = writer.WriteJSON(f, results)
	default:
		return fmt.Errorf("outfile %q: unsupported extension (want .csv or .json)", outfile)
	}
	if err != nil {
		return err
	}

	if cfg.Verbose {
		ui.Infof("results written to %s", outfile)
	}
	return nil
}

// criteriaFromFlags builds filter criteria from the flags the user actually
// supplied. Presence is tracked with Changed, not value truthiness, so a
// zero bound filters as an active constraint.
func criteriaFromFlags(cmd *cobra.Command) (filter.Criteria, error) {
	var crit filter.Criteria

	dates := []struct {
		flag string
		dest **time.Time
	}{
		{"date", &crit.Date},
		{"start-date", &crit.StartDate},
		{"end-date", &crit.EndDate},
	}
	for _, d := range dates {
		if !cmd.Flags().Changed(d.flag) {
			continue
		}
		raw, _ := cmd.Flags().GetString(d.flag)
		t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("--%s: %q is not a YYYY-MM-DD date", d.flag, raw)
		}
		parsed := t
		*d.dest = &parsed
	}

	floats := []struct {
		flag string
		dest **float64
	}{
		{"min-distance", &crit.DistanceMin},
		{"max-distance", &crit.DistanceMax},
		{"min-velocity", &crit.VelocityMin},
		{"max-velocity", &crit.VelocityMax},
		{"min-diameter", &crit.DiameterMin},
		{"max-diameter", &crit.DiameterMax},
	}
	for _, f := range floats {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, _ := cmd.Flags().GetFloat64(f.flag)
		bound := v
		*f.dest = &bound
	}

	if cmd.Flags().Changed("hazardous") {
		v := true
		crit.Hazardous = &v
	}
	if cmd.Flags().Changed("not-hazardous") {
		v := false
		crit.Hazardous = &v
	}

	return crit, nil
}
