package optfolio

import (
	"fmt"
	"hash/fnv"

	"github.com/optfolio/optfolio/date"
	"github.com/shopspring/decimal"
)

// Side is the economic direction of a transaction leg as stated on the
// statement row.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Opposite returns the other side. Closing a lot inverts its side: an opening
// sell is closed by a buy, and vice versa.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// ContractMultiplier is the number of underlying units per option contract.
const ContractMultiplier = 100

// TransactionLeg is one parsed transaction row, delivered by the extraction
// layer. Legs are created once per import batch and consumed entirely within
// one engine run; they are never persisted.
type TransactionLeg struct {
	Instrument  Instrument // the option contract this row refers to
	Side        Side       // buy or sell, as stated on the row
	Quantity    int64      // contracts, positive
	UnitPrice   Price      // per-contract price, zero is a valid price
	Code        string     // raw transaction code, e.g. "STO", "BTC", may be blank
	Broker      string     // optional
	Date        date.Date  // transaction date
	TotalAmount Price      // optional statement-reported cash amount
	SourceRowID string     // opaque identifier of the source row
}

// EffectivePrice returns the unit price to account with. When the statement
// row carried no direct price column but reported a total cash amount, the
// per-contract price is back-derived as totalAmount / (quantity × 100).
func (l TransactionLeg) EffectivePrice() Price {
	if !l.UnitPrice.IsZero() || l.TotalAmount.IsZero() || l.Quantity == 0 {
		return l.UnitPrice
	}
	units := decimal.NewFromInt(l.Quantity * ContractMultiplier)
	return Price{value: l.TotalAmount.Decimal().Div(units)}
}

// StableID derives a stable identifier for the leg from its instrument, date,
// broker and source row. Re-importing the same statement yields the same ids,
// so the caller can detect and merge duplicates instead of duplicating
// history.
func (l TransactionLeg) StableID() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s", l.Instrument.Key(), l.Date, l.Broker, l.SourceRowID)
	return fmt.Sprintf("%016x", h.Sum64())
}
