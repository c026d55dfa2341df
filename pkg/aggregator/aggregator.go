// Package aggregator runs the news pipeline: fetch all configured sources
// concurrently, gate international items on relevance, classify, translate,
// then merge, sort, deduplicate and truncate into one response snapshot.
package aggregator

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"newsmap/pkg/domain"
	"newsmap/pkg/translate"
)

// Fetcher retrieves and parses one feed endpoint
type Fetcher interface {
	Parse(ctx context.Context, url string) ([]domain.ParsedItem, error)
}

// Classifier decides relevance and detects location and category
type Classifier interface {
	Relevant(title, description string) bool
	Locate(text string) *domain.City
	Categorize(text string) domain.Category
}

// TranslateCache returns translated text, falling back to the original on
// failure; it never blocks an item
type TranslateCache interface {
	Translate(ctx context.Context, text string, target domain.Lang) string
}

// Result is one aggregation snapshot
type Result struct {
	Records     []domain.NewsRecord
	LastUpdated time.Time
}

// Aggregator drives one fetch-classify-merge pass over all sources
type Aggregator struct {
	sources    []domain.Source
	fetcher    Fetcher
	classifier Classifier
	translator TranslateCache

	limit         int
	maxConcurrent int
	now           func() time.Time
}

// Params holds aggregator dependencies and tunables
type Params struct {
	Sources       []domain.Source
	Fetcher       Fetcher
	Classifier    Classifier
	Translator    TranslateCache
	Limit         int
	MaxConcurrent int
}

// New creates an aggregator
func New(p Params) *Aggregator {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.MaxConcurrent <= 0 {
		p.MaxConcurrent = 10
	}
	return &Aggregator{
		sources:       p.Sources,
		fetcher:       p.Fetcher,
		classifier:    p.Classifier,
		translator:    p.Translator,
		limit:         p.Limit,
		maxConcurrent: p.MaxConcurrent,
		now:           time.Now,
	}
}

// Run executes one aggregation pass for the target language. A failing
// source contributes zero records and never aborts the pass; the returned
// snapshot is sorted by publish time descending, deduplicated by link and
// truncated to the configured limit.
func (a *Aggregator) Run(ctx context.Context, target domain.Lang) (*Result, error) {
	perSource := make([][]domain.NewsRecord, len(a.sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrent)

	for i, src := range a.sources {
		g.Go(func() error {
			items, err := a.fetcher.Parse(gctx, src.URL)
			if err != nil {
				lgr.Printf("[WARN] failed to fetch %s: %v", src.Name, err)
				return nil // isolation: one bad source must not affect the rest
			}
			perSource[i] = a.processItems(gctx, &src, items, target)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	var all []domain.NewsRecord
	for _, records := range perSource {
		all = append(all, records...)
	}

	// stable sort keeps source order for identical timestamps, which in
	// turn decides which duplicate survives the link dedup below
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PubDate.After(all[j].PubDate)
	})

	all = dedupByLink(all)
	if len(all) > a.limit {
		all = all[:a.limit]
	}

	return &Result{Records: all, LastUpdated: a.now()}, nil
}

// processItems turns raw entries of one source into records, all items
// handled concurrently. Order of the returned slice matches the feed order.
func (a *Aggregator) processItems(ctx context.Context, src *domain.Source, items []domain.ParsedItem, target domain.Lang) []domain.NewsRecord {
	processed := make([]*domain.NewsRecord, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			processed[i] = a.processItem(ctx, src, item, target)
		}()
	}
	wg.Wait()

	records := make([]domain.NewsRecord, 0, len(items))
	for _, rec := range processed {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records
}

// processItem builds a record from one raw entry, or nil when the relevance
// filter drops it
func (a *Aggregator) processItem(ctx context.Context, src *domain.Source, item domain.ParsedItem, target domain.Lang) *domain.NewsRecord {
	title := item.Title
	if title == "" {
		title = "Untitled"
	}
	description := item.Description

	// international sources get the relevance gate before any translation
	// is paid for; local sources are in scope by construction
	if src.Type == domain.LocalityInternational && !a.classifier.Relevant(title, description) {
		return nil
	}

	text := title + " " + description
	location := a.classifier.Locate(text)
	category := a.classifier.Categorize(text)

	// persian sources are always translated, everything is translated when
	// the requested locale is the alternate language
	if src.Language == domain.LangFA || target == domain.LangJA {
		title, description = a.translatePair(ctx, title, description, target)
	}

	link := item.Link
	if target != domain.LangEN {
		link = translate.ProxyLink(item.Link, target)
	}

	rec := &domain.NewsRecord{
		ID:          recordID(src.Name, item),
		Title:       title,
		Description: description,
		Link:        link,
		PubDate:     item.Published,
		Source:      src.Name,
		Category:    category,
		ImageURL:    item.ImageURL,
	}
	if location != nil {
		rec.Location = &domain.Location{Lat: location.Lat, Lng: location.Lng, Name: location.Name, FaName: location.FaName}
	}
	return rec
}

// translatePair translates title and description concurrently, two
// independent calls through the cache
func (a *Aggregator) translatePair(ctx context.Context, title, description string, target domain.Lang) (tTitle, tDesc string) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		tTitle = a.translator.Translate(ctx, title, target)
	}()
	go func() {
		defer wg.Done()
		tDesc = a.translator.Translate(ctx, description, target)
	}()
	wg.Wait()
	return tTitle, tDesc
}

// dedupByLink keeps the first record per link scanning from the front. The
// input is already sorted by publish time descending, so the survivor is
// the most recent record for a repeated link.
func dedupByLink(records []domain.NewsRecord) []domain.NewsRecord {
	seen := make(map[string]struct{}, len(records))
	result := records[:0]
	for _, rec := range records {
		if _, ok := seen[rec.Link]; ok {
			continue
		}
		seen[rec.Link] = struct{}{}
		result = append(result, rec)
	}
	return result
}

// recordID derives a practically unique record id from the source name and
// the item's guid, link or a random suffix when the feed provides neither
func recordID(sourceName string, item domain.ParsedItem) string {
	switch {
	case item.GUID != "":
		return sourceName + "-" + item.GUID
	case item.Link != "":
		return sourceName + "-" + item.Link
	default:
		return fmt.Sprintf("%s-%08x", sourceName, rand.Uint32()) //nolint:gosec // uniqueness within one response is enough
	}
}
