package enum

// ── Session state machine ──

const (
	SessionAwaitingSelection = "AWAITING_SELECTION"
	SessionAwaitingQuantity  = "AWAITING_QUANTITY"
	SessionCheckout          = "CHECKOUT"
)

// ── Operator input ──

// TerminatorToken ends the ordering loop when it is the whole input line.
const TerminatorToken = "0"

// ── Receipt files ──

const (
	ReceiptFilePrefix = "TastyBites_Receipt_"
	ReceiptFileLayout = "2006-01-02_150405"
	ReceiptFileExt    = ".txt"
)
