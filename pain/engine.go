package pain

import "time"

// Engine is the pain quantification pipeline: five independent signal
// analyzers feeding a shared aggregation and ranking stage. It holds no
// mutable state after construction, so a single Engine is safe to share
// across goroutines scoring many companies in parallel.
type Engine struct {
	cfg       Config
	tables    Tables
	analyzers []SignalAnalyzer
}

// New builds an engine with the built-in lookup tables. The config is
// normalized once here; malformed values never reach call time.
func New(cfg Config) *Engine {
	return NewWithTables(cfg, DefaultTables())
}

// NewWithTables builds an engine with caller-supplied lookup tables.
// Missing tables fall back to the built-in defaults.
func NewWithTables(cfg Config, tables Tables) *Engine {
	cfg = cfg.Normalize()
	defaults := DefaultTables()
	if tables.RevenueBySize == nil {
		tables.RevenueBySize = defaults.RevenueBySize
	}
	if tables.TechReleaseYear == nil {
		tables.TechReleaseYear = defaults.TechReleaseYear
	}
	return &Engine{
		cfg:       cfg,
		tables:    tables,
		analyzers: defaultAnalyzers(cfg, tables),
	}
}

// Config returns the engine's normalized configuration.
func (e *Engine) Config() Config { return e.cfg }

// Quantify scores one company against the current wall clock.
func (e *Engine) Quantify(company CompanyBaseline, profiles []ProfileRecord, bundle SignalBundle, signals []SignalEvent) QuantifiedPain {
	return e.QuantifyAt(company, profiles, bundle, signals, time.Now())
}

// QuantifyAt scores one company at an explicit reference time. Identical
// inputs and the same now produce an identical result. It never fails:
// missing signals mean the matching analyzers emit nothing, and a company
// with no usable data yields a zero-point result with all scores at 0.
func (e *Engine) QuantifyAt(company CompanyBaseline, profiles []ProfileRecord, bundle SignalBundle, signals []SignalEvent, now time.Time) QuantifiedPain {
	in := Inputs{
		Company:  company,
		Revenue:  e.tables.EstimateAnnualRevenue(company),
		Profiles: profiles,
		Bundle:   bundle,
		Signals:  signals,
		Now:      now,
	}

	var points []PainDataPoint
	for _, analyzer := range e.analyzers {
		for _, point := range analyzer.Analyze(in) {
			if point.QuantifiedImpact <= 0 {
				continue
			}
			points = append(points, point)
		}
	}

	categories := Categorize(points)
	return QuantifiedPain{
		CompanyID:           company.ID,
		CompanyName:         company.Name,
		TotalQuantifiedPain: categories.Total(),
		PainCategories:      categories,
		CriticalPainPoints:  CriticalPoints(points, e.cfg.Thresholds.CriticalPain),
		PainPoints:          points,
		UrgencyScore:        UrgencyScore(points),
		Confidence:          ConfidenceScore(points),
		LastUpdated:         now,
		NextReviewDate:      now.Add(ReviewInterval),
	}
}
