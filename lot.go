package optfolio

import "github.com/optfolio/optfolio/date"

// OpenLot is an aggregated opening transaction of fixed price and date,
// representing a position entry. Lots are created by Aggregate and their
// RemainingQuantity is consumed by Match.
type OpenLot struct {
	ID                 string     // stable id, derived from the first contributing leg
	Instrument         Instrument // the contract this lot holds
	Side               Side       // side of the entry, buy or sell
	EntryPrice         Price      // per-contract entry price
	EntryDate          date.Date  // date of the entry
	TotalQuantity      int64      // sum of all aggregated legs
	RemainingQuantity  int64      // 0 ≤ RemainingQuantity ≤ TotalQuantity, decremented by Match only
	ContributingRowIDs []string   // source rows merged into this lot, in input order
}

// lotKey is the exact-match grouping key for aggregation. Different prices or
// dates create distinct lots even for the same instrument, preserving cost
// basis granularity per distinct entry.
type lotKey struct {
	instrument string
	side       Side
	price      string
	day        date.Date
}

// Aggregate merges opening legs that represent the same lot (identical
// instrument, side, price and date) into a single OpenLot with a combined
// quantity. Lots are returned in first-seen order, so processing the same
// input list always yields the same lot set and ordering.
//
// Lots are consumed by Match in this order, which approximates FIFO only if
// the input rows are date-sorted. Callers requiring strict chronological FIFO
// must sort opening legs by date before aggregation.
func Aggregate(openingLegs []TransactionLeg) []*OpenLot {
	var lots []*OpenLot
	index := make(map[lotKey]*OpenLot)

	for _, leg := range openingLegs {
		key := lotKey{
			instrument: leg.Instrument.Key(),
			side:       leg.Side,
			price:      leg.UnitPrice.String(),
			day:        leg.Date,
		}
		lot, ok := index[key]
		if !ok {
			lot = &OpenLot{
				ID:         leg.StableID(),
				Instrument: leg.Instrument,
				Side:       leg.Side,
				EntryPrice: leg.UnitPrice,
				EntryDate:  leg.Date,
			}
			index[key] = lot
			lots = append(lots, lot)
		}
		lot.TotalQuantity += leg.Quantity
		lot.RemainingQuantity = lot.TotalQuantity
		lot.ContributingRowIDs = append(lot.ContributingRowIDs, leg.SourceRowID)
	}
	return lots
}
