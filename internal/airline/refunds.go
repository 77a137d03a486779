package airline

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

const refundBasePrice = 4999

var classMultipliers = map[string]float64{
	"Economy":  1,
	"Business": 2.5,
	"First":    5,
}

type RefundRequest struct {
	Reference string `json:"reference"`
	PNR       string `json:"pnr"`
	Reason    string `json:"reason"`
	Amount    int    `json:"amount"`
	Status    string `json:"status"`
}

// RefundLedger records refund requests in memory. Nothing else in the demo
// mutates state, so this is the only guarded structure in the package.
type RefundLedger struct {
	mu       sync.Mutex
	requests map[string]RefundRequest
}

func NewRefundLedger() *RefundLedger {
	return &RefundLedger{
		requests: make(map[string]RefundRequest),
	}
}

// ProcessRefund validates the booking and records an approved refund request.
// A booking that is already cancelled reports its pending refund instead of
// creating a second ledger entry.
func (l *RefundLedger) ProcessRefund(pnr, reason string) string {
	ref := strings.ToUpper(strings.TrimSpace(pnr))

	booking, ok := bookings[ref]
	if !ok {
		return fmt.Sprintf("Cannot process refund: Booking %s not found.", ref)
	}

	if strings.Contains(booking.Status, "Cancelled") {
		return fmt.Sprintf("Booking %s is already cancelled. Refund is being processed.", ref)
	}

	multiplier, ok := classMultipliers[booking.Class]
	if !ok {
		multiplier = 1
	}
	amount := int(refundBasePrice * multiplier)

	l.mu.Lock()
	refundRef := fmt.Sprintf("REF%06d", 100000+rand.Intn(900000))
	l.requests[refundRef] = RefundRequest{
		Reference: refundRef,
		PNR:       ref,
		Reason:    reason,
		Amount:    amount,
		Status:    "Approved",
	}
	l.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("Refund Request Processed:\n")
	sb.WriteString(fmt.Sprintf("- Reference: %s\n", refundRef))
	sb.WriteString(fmt.Sprintf("- Booking: %s\n", ref))
	sb.WriteString(fmt.Sprintf("- Passenger: %s\n", booking.Passenger))
	sb.WriteString(fmt.Sprintf("- Refund Amount: ₹%s\n", formatRupees(amount)))
	sb.WriteString("- Status: Approved - Will be credited in 5-7 business days\n")
	sb.WriteString(fmt.Sprintf("- Reason: %s", reason))
	return sb.String()
}

// Requests returns a snapshot of the recorded refund requests.
func (l *RefundLedger) Requests() []RefundRequest {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]RefundRequest, 0, len(l.requests))
	for _, r := range l.requests {
		out = append(out, r)
	}
	return out
}
