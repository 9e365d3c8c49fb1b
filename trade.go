package optfolio

import (
	"fmt"
	"hash/fnv"

	"github.com/optfolio/optfolio/date"
)

// LotPortion records how many contracts a closing leg took from one lot.
type LotPortion struct {
	LotID    string `json:"lotId"`
	Quantity int64  `json:"quantity"`
}

// ClosedTrade is the outcome of one closing leg after matching. It is an
// append-only history record: trades with unmatched quantity are reported,
// never dropped.
type ClosedTrade struct {
	Instrument        Instrument   // the contract that was closed
	Side              Side         // side of the lot being closed, not of the closing leg
	ClosePrice        Price        // per-contract closing price
	CloseDate         date.Date    // date of the closing leg
	Quantity          int64        // total quantity on the closing leg
	MatchedQuantity   int64        // contracts paired against open lots
	UnmatchedQuantity int64        // Quantity − MatchedQuantity, a reportable condition
	RealizedPnL       Money        // positive = profit to the holder of the original lot
	Pairings          []LotPortion // lots consumed, in consumption order
	SourceRowID       string       // provenance of the closing leg
}

// ID derives a stable identifier for the trade from its instrument, close
// date and source row, so re-imported statements upsert instead of
// duplicating history entries.
func (t ClosedTrade) ID() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s", t.Instrument.Key(), t.CloseDate, t.SourceRowID)
	return fmt.Sprintf("%016x", h.Sum64())
}
