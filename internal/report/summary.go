// Package report renders a plain-text snapshot of the market order statistics.
package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/template"
	"time"

	"github.com/guttosm/aodata-web/internal/domain/dto"
	"github.com/guttosm/aodata-web/internal/domain/models"
	"github.com/guttosm/aodata-web/internal/format"
	"golang.org/x/sync/errgroup"
)

// maxLocations caps the per-location section.
const maxLocations = 5

// Loader is the subset of service.PageService the summary needs.
type Loader interface {
	LoadOverview(ctx context.Context) (*dto.Page[dto.DataProps[dto.OverviewData]], error)
	LoadStatistics(ctx context.Context) (*dto.Page[dto.DataProps[dto.StatisticsData]], error)
}

// Summary is what gets printed.
type Summary struct {
	Total      int64
	Offers     int64
	Requests   int64
	LastUpdate time.Time
	Locations  []models.MarketOrderCountByLocation
}

// Build runs the overview and statistics loaders concurrently and condenses
// their results. Either loader failing fails the whole summary.
func Build(ctx context.Context, l Loader) (*Summary, error) {
	var (
		overview *dto.Page[dto.DataProps[dto.OverviewData]]
		stats    *dto.Page[dto.DataProps[dto.StatisticsData]]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview, err = l.LoadOverview(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats, err = l.LoadStatistics(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build summary: %w", err)
	}

	o, s := overview.Props.Data, stats.Props.Data
	sum := &Summary{
		Total:    o.MarketOrderCount.Count,
		Offers:   o.MarketOrderCountOffer.Count,
		Requests: o.MarketOrderCountRequest.Count,
	}

	for _, b := range s.MarketOrderCountByUpdatedAt {
		if b.UpdatedAt.After(sum.LastUpdate) {
			sum.LastUpdate = b.UpdatedAt.Time
		}
	}

	locs := append([]models.MarketOrderCountByLocation(nil), s.MarketOrderCountByLocation...)
	sort.SliceStable(locs, func(i, j int) bool {
		if locs[i].Count != locs[j].Count {
			return locs[i].Count > locs[j].Count
		}
		return locs[i].Location < locs[j].Location
	})
	if len(locs) > maxLocations {
		locs = locs[:maxLocations]
	}
	sum.Locations = locs

	return sum, nil
}

const summaryTemplate = `Market orders  {{ standard .Total }} ({{ compact .Total }})
  offers       {{ standard .Offers }}
  requests     {{ standard .Requests }}
{{- if not .LastUpdate.IsZero }}
Last update    {{ ago .LastUpdate now }}
{{- end }}
{{- if .Locations }}
Top locations
{{- range .Locations }}
  {{ printf "%-12s" .Location }} {{ compact .Count }}
{{- end }}
{{- end }}
`

// Write renders s to w. now anchors the relative "last update" label.
func Write(w io.Writer, s *Summary, now time.Time) error {
	funcs := template.FuncMap(format.FuncMap())
	funcs["now"] = func() time.Time { return now }

	tmpl, err := template.New("summary").Funcs(funcs).Parse(summaryTemplate)
	if err != nil {
		return fmt.Errorf("parse summary template: %w", err)
	}
	if err := tmpl.Execute(w, s); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	return nil
}
