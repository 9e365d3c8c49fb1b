package optfolio

import "github.com/shopspring/decimal"

// DefaultCurrency is the currency realized P&L is expressed in.
// Multi-currency accounting is not supported.
const DefaultCurrency = "USD"

// realized computes the P&L contribution of closing `contracts` contracts of
// a lot entered at entry against a close at close. The sign convention is
// profit to the holder of the original lot: a short put sold at 2.00 and
// bought back at 0.50 realizes a gain.
func realized(entry, close Price, contracts int64) Money {
	units := decimal.NewFromInt(contracts * ContractMultiplier)
	return M(entry.Sub(close).Decimal().Mul(units), DefaultCurrency)
}

// Match pairs each closing leg, in input order, against the open lots sharing
// its instrument. Lots are consumed greedily in the order Aggregate created
// them (FIFO-by-discovery), decrementing their RemainingQuantity in place.
//
// A closing leg whose quantity exceeds the available open quantity yields a
// trade with UnmatchedQuantity > 0; a leg with no open lots at all for its
// instrument is fully unmatched with a zero realized P&L. Neither is an
// error: one leg's anomaly never blocks the rest of the batch.
func Match(closingLegs []TransactionLeg, lots []*OpenLot) []ClosedTrade {
	// Lots sharing an instrument, in creation order.
	byInstrument := make(map[string][]*OpenLot)
	for _, lot := range lots {
		key := lot.Instrument.Key()
		byInstrument[key] = append(byInstrument[key], lot)
	}

	trades := make([]ClosedTrade, 0, len(closingLegs))
	for _, leg := range closingLegs {
		remainingToMatch := leg.Quantity
		pnl := M(0, DefaultCurrency)
		var pairings []LotPortion

		// Side of the trade is the side of the lots being closed. When no lot
		// is available the closing leg's own side is inverted instead.
		side := leg.Side.Opposite()

		for _, lot := range byInstrument[leg.Instrument.Key()] {
			if remainingToMatch == 0 {
				break
			}
			take := min(lot.RemainingQuantity, remainingToMatch)
			if take == 0 {
				continue
			}
			if len(pairings) == 0 {
				side = lot.Side
			}
			pnl = pnl.Add(realized(lot.EntryPrice, leg.UnitPrice, take))
			pairings = append(pairings, LotPortion{LotID: lot.ID, Quantity: take})
			lot.RemainingQuantity -= take
			remainingToMatch -= take
		}

		trades = append(trades, ClosedTrade{
			Instrument:        leg.Instrument,
			Side:              side,
			ClosePrice:        leg.UnitPrice,
			CloseDate:         leg.Date,
			Quantity:          leg.Quantity,
			MatchedQuantity:   leg.Quantity - remainingToMatch,
			UnmatchedQuantity: remainingToMatch,
			RealizedPnL:       pnl,
			Pairings:          pairings,
			SourceRowID:       leg.SourceRowID,
		})
	}
	return trades
}
