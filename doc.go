// Package optfolio implements the lot reconciliation and realized P&L engine
// of a personal options-portfolio tracker.
//
// The engine is a pure batch computation over one imported list of brokerage
// transaction legs. It classifies each leg as opening or closing, aggregates
// opening legs into lots, greedily matches closing quantity against open lots
// of the same instrument, and partitions the result into still-open positions
// and closed trades with realized profit and loss.
//
// The engine performs no I/O and tolerates data-quality anomalies: unknown
// transaction codes fall back to a side heuristic, unmatched closing quantity
// is reported rather than dropped, and a zero price is computed against as a
// literal zero. Statement extraction and persistence belong to the caller;
// this package only offers a JSONL interchange format for its own types.
package optfolio
