package optfolio

// Result is the auditable partition of one reconciled batch: candidate open
// positions on one side, closed-trade history on the other. Every contract of
// the input appears in exactly one of the two.
type Result struct {
	OpenPositions []*OpenLot
	ClosedHistory []ClosedTrade
}

// TotalRealizedPnL sums the realized P&L over all closed trades.
func (r Result) TotalRealizedPnL() Money {
	total := M(0, DefaultCurrency)
	for _, t := range r.ClosedHistory {
		total = total.Add(t.RealizedPnL)
	}
	return total
}

// TotalUnmatched sums the unmatched closing quantity over all closed trades.
func (r Result) TotalUnmatched() int64 {
	var total int64
	for _, t := range r.ClosedHistory {
		total += t.UnmatchedQuantity
	}
	return total
}

// Partition splits the matcher's output into lots that still have remaining
// quantity (candidate open positions, at their true remaining size) and the
// full closed-trade list, including trades with unmatched quantity. It
// performs no mutation beyond what Match already did.
func Partition(lots []*OpenLot, trades []ClosedTrade) (openPositions []*OpenLot, closedHistory []ClosedTrade) {
	for _, lot := range lots {
		if lot.RemainingQuantity > 0 {
			openPositions = append(openPositions, lot)
		}
	}
	return openPositions, trades
}

// Reconcile runs the whole pipeline over one imported batch of legs:
// classification, aggregation of opening legs into lots, greedy matching of
// closing legs, and partitioning into open positions and closed history.
//
// The computation is pure and synchronous; it performs no I/O and never
// fails. Malformed individual legs (zero quantity, zero price) pass through
// with the documented consequences. The caller is responsible for treating
// "read stored state, reconcile, write merged state" as a critical section
// if concurrent imports are possible.
func Reconcile(legs []TransactionLeg) Result {
	var opening, closing []TransactionLeg
	for _, leg := range legs {
		if Classify(leg) == Opening {
			opening = append(opening, leg)
		} else {
			closing = append(closing, leg)
		}
	}

	lots := Aggregate(opening)
	trades := Match(closing, lots)
	openPositions, closedHistory := Partition(lots, trades)
	return Result{OpenPositions: openPositions, ClosedHistory: closedHistory}
}
