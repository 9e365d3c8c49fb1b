package optfolio

import (
	"time"

	"github.com/optfolio/optfolio/date"
)

// Fixtures shared by the engine tests.

var (
	pltrPut = Instrument{
		Underlying: "PLTR",
		Kind:       Put,
		Strike:     P(150),
		Expiry:     date.New(2026, time.February, 20),
	}
	nvdaCall = Instrument{
		Underlying: "NVDA",
		Kind:       Call,
		Strike:     P(1200),
		Expiry:     date.New(2026, time.March, 20),
	}

	jan5  = date.New(2026, time.January, 5)
	jan12 = date.New(2026, time.January, 12)
	jan20 = date.New(2026, time.January, 20)
)

// leg builds a transaction leg for tests.
func leg(i Instrument, side Side, qty int64, price float64, code, rowID string, on date.Date) TransactionLeg {
	return TransactionLeg{
		Instrument:  i,
		Side:        side,
		Quantity:    qty,
		UnitPrice:   P(price),
		Code:        code,
		Date:        on,
		SourceRowID: rowID,
	}
}

// usd builds the expected realized P&L of a test scenario.
func usd(amount float64) Money { return M(amount, DefaultCurrency) }
