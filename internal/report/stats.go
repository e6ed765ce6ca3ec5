package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/store"
)

// Averages holds mean scores rounded to one decimal.
type Averages struct {
	Dominance  float64 `json:"dominance" yaml:"dominance"`
	Influence  float64 `json:"influence" yaml:"influence"`
	Steadiness float64 `json:"steadiness" yaml:"steadiness"`
	Compliance float64 `json:"compliance" yaml:"compliance"`
}

// Get returns the average for d.
func (a Averages) Get(d disc.Dimension) float64 {
	switch d {
	case disc.Dominance:
		return a.Dominance
	case disc.Influence:
		return a.Influence
	case disc.Steadiness:
		return a.Steadiness
	case disc.Compliance:
		return a.Compliance
	}
	return 0
}

// Stats summarizes the results history.
type Stats struct {
	Count         int            `json:"count" yaml:"count"`
	Averages      Averages       `json:"averages" yaml:"averages"`
	TopPrimary    string         `json:"topPrimary,omitempty" yaml:"top_primary,omitempty"`
	PrimaryCounts map[string]int `json:"primaryCounts" yaml:"primary_counts"`

	top disc.Dimension
}

// ComputeStats summarizes records. The most frequent primary trait breaks
// ties in D, I, S, C order.
func ComputeStats(records []*store.ResultRecord) Stats {
	st := Stats{Count: len(records), PrimaryCounts: make(map[string]int)}
	if len(records) == 0 {
		return st
	}

	var (
		sums   [disc.DimensionCount]int
		counts [disc.DimensionCount]int
	)
	for _, rec := range records {
		for _, d := range disc.AllDimensions() {
			sums[d] += rec.Scores.Get(d)
		}
		if rec.Primary.Valid() {
			counts[rec.Primary]++
		}
	}

	n := float64(len(records))
	avg := func(d disc.Dimension) float64 {
		return math.Round(float64(sums[d])/n*10) / 10
	}
	st.Averages = Averages{
		Dominance:  avg(disc.Dominance),
		Influence:  avg(disc.Influence),
		Steadiness: avg(disc.Steadiness),
		Compliance: avg(disc.Compliance),
	}

	best := -1
	for _, d := range disc.AllDimensions() {
		if counts[d] > 0 {
			st.PrimaryCounts[d.Key()] = counts[d]
		}
		if counts[d] > best {
			best = counts[d]
			st.top = d
		}
	}
	if best > 0 {
		st.TopPrimary = st.top.Key()
	}
	return st
}

// Stats writes st in format f.
func (r *Renderer) Stats(w io.Writer, f Format, st Stats) error {
	return r.write(w, f, st,
		func() string { return r.statsText(st) },
		func() string { return r.statsMarkdown(st) })
}

func (r *Renderer) statsText(st Stats) string {
	var b strings.Builder
	b.WriteString(r.t(i18n.StatsTitle) + "\n")
	fmt.Fprintf(&b, r.t(i18n.StatsCount)+"\n", st.Count)
	if st.Count == 0 {
		return b.String()
	}
	if st.TopPrimary != "" {
		fmt.Fprintf(&b, r.t(i18n.StatsTopPrimary)+"\n", i18n.DimensionName(r.lang, st.top))
	}
	b.WriteString("\n" + r.t(i18n.StatsAverage) + "\n")
	for _, d := range disc.AllDimensions() {
		v := st.Averages.Get(d)
		fmt.Fprintf(&b, "%s %s %5.1f\n", d.Code(), bar(int(math.Round(v))), v)
	}
	return b.String()
}

func (r *Renderer) statsMarkdown(st Stats) string {
	var b strings.Builder
	b.WriteString("# " + r.t(i18n.StatsTitle) + "\n\n")
	fmt.Fprintf(&b, r.t(i18n.StatsCount)+"\n\n", st.Count)
	if st.Count == 0 {
		return b.String()
	}
	if st.TopPrimary != "" {
		fmt.Fprintf(&b, r.t(i18n.StatsTopPrimary)+"\n\n", i18n.DimensionName(r.lang, st.top))
	}
	b.WriteString("## " + r.t(i18n.StatsAverage) + "\n\n")
	fmt.Fprintf(&b, "| %s | %s |\n|---|---:|\n", r.t(i18n.ResultsDimension), r.t(i18n.ResultsScore))
	for _, d := range disc.AllDimensions() {
		fmt.Fprintf(&b, "| %s | %.1f |\n", i18n.DimensionName(r.lang, d), st.Averages.Get(d))
	}
	return b.String()
}
