package fundamental

// Benchmark holds the industry reference ratios the health scorer
// compares against. ROE is a percentage.
type Benchmark struct {
	ROE          float64
	DebtToEquity float64
}

// Benchmarks maps an industry key to its benchmark. Injected into the
// Analyzer; unknown keys fall back to DefaultBenchmark.
type Benchmarks map[string]Benchmark

// DefaultBenchmark applies when the industry key has no entry.
var DefaultBenchmark = Benchmark{ROE: 15.0, DebtToEquity: 0.3}

// BuiltinBenchmarks returns the reference table for the covered sectors.
func BuiltinBenchmarks() Benchmarks {
	return Benchmarks{
		"Banks":      {ROE: 12.0, DebtToEquity: 0.3},
		"Mining":     {ROE: 15.0, DebtToEquity: 0.4},
		"Healthcare": {ROE: 20.0, DebtToEquity: 0.2},
		"Technology": {ROE: 25.0, DebtToEquity: 0.1},
		"Retail":     {ROE: 18.0, DebtToEquity: 0.3},
	}
}

// Lookup returns the benchmark for industry, or DefaultBenchmark when
// the key is absent.
func (b Benchmarks) Lookup(industry string) Benchmark {
	if bench, ok := b[industry]; ok {
		return bench
	}
	return DefaultBenchmark
}
