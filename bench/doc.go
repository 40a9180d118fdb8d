// Package bench measures the embedding matchers on generated graphs.
//
// A Suite (TOML) names target and pattern families, sizes, densities and a
// trial count. Runner expands it into jobs, builds each (target, pattern)
// pair once with a seed derived from the suite seed, times every requested
// algorithm on the pair with Measure and verifies each witness. Jobs run in
// parallel on a bounded errgroup; records go to a Sink (see bench/store)
// and to Prometheus series.
//
// Summarize and SpeedUps turn a results file back into per-size averages,
// the numbers the runtime plots were drawn from.
//
// Record field names algorithm, size, density and time are those of the
// flat JSON results file, so older files load unchanged.
package bench
