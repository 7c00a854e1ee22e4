// Package trace records what the scanner pipeline is doing: driver
// commands, scan passes, individual files and, at debug level, tokens.
//
// Enable it from the CLI:
//
//	cscan tokenize --trace=- --trace-level=detail prog.ci
//
// Implementations: Nop (disabled), StreamTracer (immediate text or NDJSON
// output), RingTracer (last N events, dumped when a scan fails) and
// MultiTracer (both).
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "scan", 0)
//	defer span.End("")
package trace
