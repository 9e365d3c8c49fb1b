package optfolio

import "testing"

func reconciledTrades(t *testing.T) []ClosedTrade {
	t.Helper()
	res := Reconcile([]TransactionLeg{
		leg(pltrPut, Sell, 3, 2.0, "STO", "r1", jan5),
		leg(pltrPut, Buy, 3, 0.5, "BTC", "r2", jan20),
		leg(nvdaCall, Buy, 1, 4.0, "BTC", "r3", jan20),
	})
	return res.ClosedHistory
}

func TestMergeTrades_ReimportIsIdempotent(t *testing.T) {
	history := MergeTrades(nil, reconciledTrades(t))
	again := MergeTrades(history, reconciledTrades(t))

	if len(again) != len(history) {
		t.Fatalf("re-import grew history from %d to %d entries", len(history), len(again))
	}
	for i := range history {
		if history[i].ID() != again[i].ID() {
			t.Errorf("entry %d changed id on re-import", i)
		}
	}
}

func TestMergeTrades_ReplacesByID(t *testing.T) {
	history := MergeTrades(nil, reconciledTrades(t))

	// The same statement re-extracted with a corrected price yields the same
	// trade ids but different amounts; the merge must update in place.
	corrected := Reconcile([]TransactionLeg{
		leg(pltrPut, Sell, 3, 2.0, "STO", "r1", jan5),
		leg(pltrPut, Buy, 3, 1.0, "BTC", "r2", jan20),
		leg(nvdaCall, Buy, 1, 4.0, "BTC", "r3", jan20),
	}).ClosedHistory

	merged := MergeTrades(history, corrected)
	if len(merged) != len(history) {
		t.Fatalf("merge grew history from %d to %d entries", len(history), len(merged))
	}
	if !merged[0].RealizedPnL.Equal(usd(300)) {
		t.Errorf("merged realized = %v, want corrected %v", merged[0].RealizedPnL, usd(300))
	}
}

func TestMergeTrades_AppendsNewTrades(t *testing.T) {
	history := MergeTrades(nil, reconciledTrades(t))

	later := Reconcile([]TransactionLeg{
		leg(nvdaCall, Sell, 2, 5.0, "STO", "r10", jan5),
		leg(nvdaCall, Buy, 2, 4.0, "BTC", "r11", jan12),
	}).ClosedHistory

	merged := MergeTrades(history, later)
	if len(merged) != len(history)+1 {
		t.Fatalf("merged history has %d entries, want %d", len(merged), len(history)+1)
	}
	// Existing entries keep their position, new ones append in input order.
	if merged[len(merged)-1].ID() != later[0].ID() {
		t.Error("new trade was not appended last")
	}
}
