// Package renderer turns reconciliation results into markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/optfolio/optfolio"
)

// ReconciliationMarkdown renders the outcome of one reconciled batch: the
// closed trades with their realized P&L, the candidate open positions at
// their remaining size, and a warnings section when closing quantity could
// not be matched.
func ReconciliationMarkdown(res optfolio.Result) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Reconciliation Report\n\n")

	fmt.Fprint(&b, "## Closed Trades\n\n")
	if len(res.ClosedHistory) == 0 {
		fmt.Fprint(&b, "No closing transactions in this batch.\n\n")
	} else {
		fmt.Fprintln(&b, "| Instrument | Side | Close Date | Qty | Matched | Close | Realized P&L |")
		fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|")
		for _, t := range res.ClosedHistory {
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %d | %s | %s |\n",
				t.Instrument,
				t.Side,
				t.CloseDate,
				t.Quantity,
				t.MatchedQuantity,
				t.ClosePrice,
				t.RealizedPnL.SignedString(),
			)
		}
		fmt.Fprintf(&b, "| **Total** | | | | | | **%s** |\n\n", res.TotalRealizedPnL().SignedString())
	}

	fmt.Fprint(&b, "## Open Positions\n\n")
	if len(res.OpenPositions) == 0 {
		fmt.Fprint(&b, "No open positions remain from this batch.\n\n")
	} else {
		fmt.Fprintln(&b, "| Instrument | Side | Entry Date | Qty | Entry |")
		fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
		for _, lot := range res.OpenPositions {
			// A partially closed lot re-enters the open set at its remaining size.
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
				lot.Instrument,
				lot.Side,
				lot.EntryDate,
				lot.RemainingQuantity,
				lot.EntryPrice,
			)
		}
		fmt.Fprintln(&b)
	}

	if warnings := unmatchedWarnings(res); len(warnings) > 0 {
		fmt.Fprint(&b, "## Warnings\n\n")
		for _, warning := range warnings {
			fmt.Fprintf(&b, "* %s\n", warning)
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}

// unmatchedWarnings lists closing legs whose quantity exceeded the open
// quantity available for their instrument.
func unmatchedWarnings(res optfolio.Result) []string {
	var warnings []string
	for _, t := range res.ClosedHistory {
		if t.UnmatchedQuantity > 0 {
			warnings = append(warnings,
				fmt.Sprintf("%s closed on %s: %d of %d contracts had no open lot to match",
					t.Instrument, t.CloseDate, t.UnmatchedQuantity, t.Quantity))
		}
	}
	return warnings
}

// ClassificationMarkdown renders the per-leg classification of a batch, with
// the source of each decision. Legs resolved by the side heuristic deserve a
// manual review: the heuristic is a known source of misclassification on
// statements lacking transaction codes.
func ClassificationMarkdown(legs []optfolio.TransactionLeg) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Leg Classification\n\n")
	fmt.Fprintln(&b, "| Row | Instrument | Side | Code | Action | Decided By |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|:---|")

	heuristic := 0
	for _, leg := range legs {
		action, source := optfolio.ClassifyLeg(leg)
		if source == optfolio.SourceSide {
			heuristic++
		}
		code := leg.Code
		if code == "" {
			code = "(blank)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			leg.SourceRowID, leg.Instrument, leg.Side, code, action, source)
	}
	fmt.Fprintln(&b)

	if heuristic > 0 {
		fmt.Fprintf(&b, "%d of %d legs were classified by the side heuristic; review them before importing.\n", heuristic, len(legs))
	}
	return b.String()
}
