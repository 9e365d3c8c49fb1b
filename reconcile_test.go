package optfolio

import (
	"bytes"
	"testing"
)

func TestReconcile_FullClose(t *testing.T) {
	res := Reconcile([]TransactionLeg{
		leg(pltrPut, Sell, 3, 2.0, "STO", "r1", jan5),
		leg(pltrPut, Buy, 3, 0.5, "BTC", "r2", jan20),
	})

	if len(res.OpenPositions) != 0 {
		t.Errorf("open positions = %v, want none", res.OpenPositions)
	}
	if len(res.ClosedHistory) != 1 {
		t.Fatalf("closed history has %d trades, want 1", len(res.ClosedHistory))
	}
	if !res.TotalRealizedPnL().Equal(usd(450)) {
		t.Errorf("total realized = %v, want %v", res.TotalRealizedPnL(), usd(450))
	}
}

func TestReconcile_PartialCloseReopensAtRemainingSize(t *testing.T) {
	res := Reconcile([]TransactionLeg{
		leg(pltrPut, Sell, 5, 2.0, "STO", "r1", jan5),
		leg(pltrPut, Buy, 2, 1.0, "BTC", "r2", jan20),
	})

	if len(res.OpenPositions) != 1 {
		t.Fatalf("got %d open positions, want 1", len(res.OpenPositions))
	}
	if res.OpenPositions[0].RemainingQuantity != 3 {
		t.Errorf("remaining = %d, want 3", res.OpenPositions[0].RemainingQuantity)
	}
	if !res.TotalRealizedPnL().Equal(usd(200)) {
		t.Errorf("total realized = %v, want %v", res.TotalRealizedPnL(), usd(200))
	}
}

func TestReconcile_UnmatchedIsSurfaced(t *testing.T) {
	res := Reconcile([]TransactionLeg{
		leg(pltrPut, Buy, 4, 1.0, "BTC", "r1", jan20),
	})

	if len(res.ClosedHistory) != 1 {
		t.Fatalf("closed history has %d trades, want the unmatched trade", len(res.ClosedHistory))
	}
	if res.TotalUnmatched() != 4 {
		t.Errorf("total unmatched = %d, want 4", res.TotalUnmatched())
	}
	if !res.TotalRealizedPnL().IsZero() {
		t.Errorf("total realized = %v, want zero", res.TotalRealizedPnL())
	}
}

func TestReconcile_HeuristicClassification(t *testing.T) {
	// No codes at all: sells open, buys close.
	res := Reconcile([]TransactionLeg{
		leg(pltrPut, Sell, 2, 2.0, "", "r1", jan5),
		leg(pltrPut, Buy, 2, 1.0, "", "r2", jan20),
	})

	if len(res.OpenPositions) != 0 || len(res.ClosedHistory) != 1 {
		t.Fatalf("partition = %d open / %d closed, want 0/1", len(res.OpenPositions), len(res.ClosedHistory))
	}
	if !res.TotalRealizedPnL().Equal(usd(200)) {
		t.Errorf("total realized = %v, want %v", res.TotalRealizedPnL(), usd(200))
	}
}

func TestReconcile_ZeroQuantityLegPassesThrough(t *testing.T) {
	// A zero-quantity closing leg is tolerated, matches nothing, and does not
	// block the rest of the batch.
	res := Reconcile([]TransactionLeg{
		leg(pltrPut, Sell, 3, 2.0, "STO", "r1", jan5),
		leg(pltrPut, Buy, 0, 1.0, "BTC", "r2", jan12),
		leg(pltrPut, Buy, 3, 0.5, "BTC", "r3", jan20),
	})

	if len(res.ClosedHistory) != 2 {
		t.Fatalf("closed history has %d trades, want 2", len(res.ClosedHistory))
	}
	if !res.TotalRealizedPnL().Equal(usd(450)) {
		t.Errorf("total realized = %v, want %v", res.TotalRealizedPnL(), usd(450))
	}
}

func TestReconcile_Deterministic(t *testing.T) {
	legs := []TransactionLeg{
		leg(pltrPut, Sell, 3, 2.0, "STO", "r1", jan5),
		leg(nvdaCall, Sell, 2, 5.0, "STO", "r2", jan5),
		leg(pltrPut, Sell, 2, 1.5, "STO", "r3", jan12),
		leg(pltrPut, Buy, 4, 0.5, "BTC", "r4", jan20),
		leg(nvdaCall, Buy, 3, 4.0, "BTC", "r5", jan20),
	}

	encode := func(res Result) []byte {
		var b bytes.Buffer
		if err := EncodeLots(&b, res.OpenPositions); err != nil {
			t.Fatalf("EncodeLots: %v", err)
		}
		if err := EncodeTrades(&b, res.ClosedHistory); err != nil {
			t.Fatalf("EncodeTrades: %v", err)
		}
		return b.Bytes()
	}

	first := encode(Reconcile(legs))
	second := encode(Reconcile(legs))
	if !bytes.Equal(first, second) {
		t.Errorf("two runs over the same batch differ:\n%s\nvs\n%s", first, second)
	}
}

func TestPartition_LeavesTradesUntouched(t *testing.T) {
	lots := Aggregate([]TransactionLeg{
		leg(pltrPut, Sell, 3, 2.0, "STO", "r1", jan5),
		leg(nvdaCall, Sell, 2, 5.0, "STO", "r2", jan12),
	})
	trades := Match([]TransactionLeg{leg(pltrPut, Buy, 3, 0.5, "BTC", "r3", jan20)}, lots)

	open, closed := Partition(lots, trades)
	if len(open) != 1 || !open[0].Instrument.Equal(nvdaCall) {
		t.Errorf("open = %v, want only the untouched NVDA lot", open)
	}
	if len(closed) != len(trades) {
		t.Errorf("closed history has %d trades, want %d", len(closed), len(trades))
	}
}
