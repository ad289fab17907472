package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/abhisek/genesis/internal/compat"
	"github.com/abhisek/genesis/internal/i18n"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/scoring"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// printResult writes the text summary of a scored history.
func printResult(w io.Writer, cat *i18n.Catalog, r scoring.AnalysisResult) error {
	base := "archetypes." + string(r.ArchetypeKey)
	tw := newTable(w)
	fmt.Fprintf(tw, "Archetype\t%s (%d%% match)\n", cat.T(base+".title"), r.ArchetypeMatch)
	fmt.Fprintf(tw, "Root command\t%s\n", cat.T(base+".root_command"))
	fmt.Fprintf(tw, "Status\t%s\n", r.Status)
	fmt.Fprintf(tw, "Integrity\t%d\n", r.Integrity)
	fmt.Fprintf(tw, "Capacity\t%d\n", r.Capacity)
	fmt.Fprintf(tw, "Entropy\t%d\n", r.EntropyScore)
	fmt.Fprintf(tw, "Sync\t%d\n", r.NeuroSync)
	fmt.Fprintf(tw, "Health\t%d\n", r.SystemHealth)
	fmt.Fprintf(tw, "Confidence\t%d\n", r.ConfidenceScore)
	fmt.Fprintf(tw, "Clarity\t%.0f%%\n", r.Clarity)
	fmt.Fprintf(tw, "Verdict\t%s\n", cat.T("verdicts."+string(r.VerdictKey)))
	fmt.Fprintf(tw, "Phase\t%s\n", cat.T("phases."+string(r.Phase)))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", cat.T("ui.roadmap"))
	tw = newTable(w)
	for _, step := range r.Roadmap {
		fmt.Fprintf(tw, "  Day %d\t%s\t%s\n", step.Day, cat.T("tasks."+step.TaskKey), step.TargetMetric)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s: %s\n", cat.T("ui.share_code"), r.ShareCode)
	return err
}

// printReport writes the text summary of a compatibility report.
func printReport(w io.Writer, cat *i18n.Catalog, rep compat.Report) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Relationship\t%s\n", cat.T("relationships."+rep.RelationshipType))
	fmt.Fprintf(tw, "Partner archetype\t%s\n", cat.T("archetypes."+string(rep.PartnerArchetype)+".title"))
	fmt.Fprintf(tw, "Match\t%d%%\n", rep.OverallScore)
	fmt.Fprintf(tw, "Synergy\t%s\n", domainList(cat, rep.DomainSynergies))
	fmt.Fprintf(tw, "Conflict\t%s\n", domainList(cat, rep.DomainConflicts))
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, rec := range rep.Recommendations {
		if _, err := fmt.Fprintf(w, "  • %s\n", rec); err != nil {
			return err
		}
	}
	return nil
}

func domainList(cat *i18n.Catalog, keys []registry.DomainKey) string {
	if len(keys) == 0 {
		return "-"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = cat.T("domains." + string(k))
	}
	return strings.Join(names, ", ")
}
