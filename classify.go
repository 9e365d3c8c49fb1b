package optfolio

import "strings"

// Action labels a transaction leg as opening a new lot or closing an
// existing one.
type Action string

const (
	Opening Action = "opening"
	Closing Action = "closing"
)

// ClassificationSource records how a leg's action was decided, so callers can
// tell an explicit broker code apart from the side heuristic.
type ClassificationSource string

const (
	// SourceCode means the action came from the explicit code table.
	SourceCode ClassificationSource = "code"
	// SourceSide means the code was blank or unrecognized and the action was
	// derived from the leg's side. This heuristic is a known source of
	// misclassification for statements lacking transaction codes.
	SourceSide ClassificationSource = "side"
)

// codeActions is the explicit decision table for broker transaction codes.
// A sell-to-open opens a short lot; buys, buy-to-close and assignments close
// one. Note that BTO is interpreted as the close of a short, not the opening
// of a long.
var codeActions = map[string]Action{
	"STO":   Opening,
	"SELL":  Opening,
	"BTC":   Closing,
	"BTO":   Closing,
	"OASGN": Closing,
	"BUY":   Closing,
}

// ClassifyCode resolves a raw transaction code against the decision table.
// The second return value is false when the code is blank or unknown.
func ClassifyCode(code string) (Action, bool) {
	action, ok := codeActions[strings.ToUpper(strings.TrimSpace(code))]
	return action, ok
}

// Classify labels a leg as Opening or Closing. It is a pure function over one
// leg and always resolves: legs with a blank or unrecognized code fall back
// to the side heuristic (sell opens, buy closes).
func Classify(leg TransactionLeg) Action {
	action, _ := ClassifyLeg(leg)
	return action
}

// ClassifyLeg is Classify with provenance: it also reports whether the action
// came from the code table or from the side heuristic.
func ClassifyLeg(leg TransactionLeg) (Action, ClassificationSource) {
	if action, ok := ClassifyCode(leg.Code); ok {
		return action, SourceCode
	}
	if leg.Side == Sell {
		return Opening, SourceSide
	}
	return Closing, SourceSide
}
