package optfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/optfolio/optfolio/date"
	"github.com/shopspring/decimal"
)

// this file contains the JSONL interchange format for the engine's own types.
// It should remain human readable, one object per line, and easy to merge
// into whatever store the surrounding application uses. Statement-specific
// extraction (column mapping, free-text descriptions, vision) happens
// upstream and is not handled here.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// legRecord is the JSONL shape of a TransactionLeg.
type legRecord struct {
	Instrument  Instrument `json:"instrument"`
	Side        Side       `json:"side"`
	Quantity    int64      `json:"quantity"`
	UnitPrice   Price      `json:"unitPrice"`
	Code        string     `json:"code,omitempty"`
	Broker      string     `json:"broker,omitempty"`
	Date        date.Date  `json:"date"`
	TotalAmount Price      `json:"totalAmount,omitempty"`
	SourceRowID string     `json:"rowId,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for TransactionLeg with
// a canonical field order.
func (l TransactionLeg) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("instrument", l.Instrument)
	w.Append("side", l.Side)
	w.Append("quantity", l.Quantity)
	w.Append("unitPrice", l.UnitPrice)
	w.Optional("code", l.Code)
	w.Optional("broker", l.Broker)
	w.Append("date", l.Date)
	if !l.TotalAmount.IsZero() {
		w.Append("totalAmount", l.TotalAmount)
	}
	w.Optional("rowId", l.SourceRowID)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for TransactionLeg.
func (l *TransactionLeg) UnmarshalJSON(data []byte) error {
	var rec legRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*l = TransactionLeg{
		Instrument:  rec.Instrument,
		Side:        rec.Side,
		Quantity:    rec.Quantity,
		UnitPrice:   rec.UnitPrice,
		Code:        rec.Code,
		Broker:      rec.Broker,
		Date:        rec.Date,
		TotalAmount: rec.TotalAmount,
		SourceRowID: rec.SourceRowID,
	}
	return nil
}

// DecodeLegs decodes a batch of transaction legs from a stream of JSONL data.
// Blank lines are skipped. Legs whose row carried no direct price but a total
// cash amount get their unit price back-derived at this boundary, so the
// engine downstream only ever sees per-contract prices.
func DecodeLegs(r io.Reader) ([]TransactionLeg, error) {
	var legs []TransactionLeg
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var leg TransactionLeg
		if err := json.Unmarshal(line, &leg); err != nil {
			return nil, fmt.Errorf("cannot parse leg line %q: %w", string(line), err)
		}
		leg.UnitPrice = leg.EffectivePrice()
		legs = append(legs, leg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading legs: %w", err)
	}
	return legs, nil
}

// EncodeLegs writes legs to 'w' in JSONL format, one leg per line.
func EncodeLegs(w io.Writer, legs []TransactionLeg) error {
	for _, leg := range legs {
		if err := encodeLine(w, leg); err != nil {
			return fmt.Errorf("cannot write leg %q: %w", leg.SourceRowID, err)
		}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for OpenLot with a
// canonical field order.
func (l OpenLot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", l.ID)
	w.Append("instrument", l.Instrument)
	w.Append("side", l.Side)
	w.Append("entryPrice", l.EntryPrice)
	w.Append("entryDate", l.EntryDate)
	w.Append("totalQuantity", l.TotalQuantity)
	w.Append("remainingQuantity", l.RemainingQuantity)
	w.Optional("rowIds", l.ContributingRowIDs)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for OpenLot.
func (l *OpenLot) UnmarshalJSON(data []byte) error {
	var rec struct {
		ID                 string     `json:"id"`
		Instrument         Instrument `json:"instrument"`
		Side               Side       `json:"side"`
		EntryPrice         Price      `json:"entryPrice"`
		EntryDate          date.Date  `json:"entryDate"`
		TotalQuantity      int64      `json:"totalQuantity"`
		RemainingQuantity  int64      `json:"remainingQuantity"`
		ContributingRowIDs []string   `json:"rowIds"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*l = OpenLot(rec)
	return nil
}

// EncodeLots writes open lots to 'w' in JSONL format, one lot per line.
func EncodeLots(w io.Writer, lots []*OpenLot) error {
	for _, lot := range lots {
		if err := encodeLine(w, lot); err != nil {
			return fmt.Errorf("cannot write lot %q: %w", lot.ID, err)
		}
	}
	return nil
}

// DecodeLots decodes open lots from a stream of JSONL data.
func DecodeLots(r io.Reader) ([]*OpenLot, error) {
	var lots []*OpenLot
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var lot OpenLot
		if err := json.Unmarshal(line, &lot); err != nil {
			return nil, fmt.Errorf("cannot parse lot line %q: %w", string(line), err)
		}
		lots = append(lots, &lot)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lots: %w", err)
	}
	return lots, nil
}

// MarshalJSON implements the json.Marshaler interface for ClosedTrade with a
// canonical field order. The id is derived but written out so the history
// file is greppable by key.
func (t ClosedTrade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID())
	w.Append("instrument", t.Instrument)
	w.Append("side", t.Side)
	w.Append("closePrice", t.ClosePrice)
	w.Append("closeDate", t.CloseDate)
	w.Append("quantity", t.Quantity)
	w.Append("matchedQuantity", t.MatchedQuantity)
	w.Append("unmatchedQuantity", t.UnmatchedQuantity)
	w.Append("realizedPnL", t.RealizedPnL)
	w.Optional("pairings", t.Pairings)
	w.Optional("rowId", t.SourceRowID)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for ClosedTrade.
// It handles the custom structure where amount and currency are separate
// fields of the realized P&L.
func (t *ClosedTrade) UnmarshalJSON(data []byte) error {
	var rec struct {
		Instrument        Instrument `json:"instrument"`
		Side              Side       `json:"side"`
		ClosePrice        Price      `json:"closePrice"`
		CloseDate         date.Date  `json:"closeDate"`
		Quantity          int64      `json:"quantity"`
		MatchedQuantity   int64      `json:"matchedQuantity"`
		UnmatchedQuantity int64      `json:"unmatchedQuantity"`
		RealizedPnL       struct {
			Amount   decimal.Decimal `json:"amount"`
			Currency string          `json:"currency"`
		} `json:"realizedPnL"`
		Pairings    []LotPortion `json:"pairings"`
		SourceRowID string       `json:"rowId"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*t = ClosedTrade{
		Instrument:        rec.Instrument,
		Side:              rec.Side,
		ClosePrice:        rec.ClosePrice,
		CloseDate:         rec.CloseDate,
		Quantity:          rec.Quantity,
		MatchedQuantity:   rec.MatchedQuantity,
		UnmatchedQuantity: rec.UnmatchedQuantity,
		RealizedPnL:       M(rec.RealizedPnL.Amount, rec.RealizedPnL.Currency),
		Pairings:          rec.Pairings,
		SourceRowID:       rec.SourceRowID,
	}
	return nil
}

// EncodeTrades writes closed trades to 'w' in JSONL format, one per line.
func EncodeTrades(w io.Writer, trades []ClosedTrade) error {
	for _, trade := range trades {
		if err := encodeLine(w, trade); err != nil {
			return fmt.Errorf("cannot write trade %q: %w", trade.ID(), err)
		}
	}
	return nil
}

// DecodeTrades decodes closed trades from a stream of JSONL data.
func DecodeTrades(r io.Reader) ([]ClosedTrade, error) {
	var trades []ClosedTrade
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var trade ClosedTrade
		if err := json.Unmarshal(line, &trade); err != nil {
			return nil, fmt.Errorf("cannot parse trade line %q: %w", string(line), err)
		}
		trades = append(trades, trade)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading trades: %w", err)
	}
	return trades, nil
}

// encodeLine marshals one value and writes it followed by a newline.
func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
