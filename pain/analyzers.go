package pain

import "time"

// Inputs is everything an analyzer may inspect for one company. Revenue is
// precomputed once by the engine so every analyzer scales against the same
// baseline. Now anchors age calculations for deterministic replays.
type Inputs struct {
	Company  CompanyBaseline
	Revenue  float64
	Profiles []ProfileRecord
	Bundle   SignalBundle
	Signals  []SignalEvent
	Now      time.Time
}

// SignalAnalyzer inspects one slice of input data and emits zero or more
// pain points. Analyzers are independent: each reads only the inputs it
// cares about and stays silent when its signal is missing or below its
// relevance threshold.
type SignalAnalyzer interface {
	Name() string
	Analyze(in Inputs) []PainDataPoint
}

// defaultAnalyzers builds the registered analyzer list in emission order.
// Ranking downstream is stable, so this order is part of the contract.
func defaultAnalyzers(cfg Config, tables Tables) []SignalAnalyzer {
	return []SignalAnalyzer{
		&FinancialAnalyzer{cfg: cfg},
		&OperationalAnalyzer{cfg: cfg, tables: tables},
		&CompetitiveAnalyzer{cfg: cfg},
		&ComplianceAnalyzer{cfg: cfg},
		&StrategicAnalyzer{cfg: cfg},
	}
}
