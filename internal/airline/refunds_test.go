package airline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessRefundConfirmedBooking(t *testing.T) {
	ledger := NewRefundLedger()

	got := ledger.ProcessRefund("abc123", "Change of plans")

	assert.Contains(t, got, "Refund Request Processed:")
	assert.Contains(t, got, "- Booking: ABC123")
	assert.Contains(t, got, "- Passenger: Rahul Sharma")
	// Business class refunds at 2.5x the base amount.
	assert.Contains(t, got, "₹12,497")
	assert.Contains(t, got, "Approved - Will be credited in 5-7 business days")
	assert.Contains(t, got, "- Reason: Change of plans")
	assert.Regexp(t, `- Reference: REF\d{6}`, got)

	requests := ledger.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "ABC123", requests[0].PNR)
	assert.Equal(t, 12497, requests[0].Amount)
	assert.Equal(t, "Approved", requests[0].Status)
}

func TestProcessRefundAmountsByClass(t *testing.T) {
	tests := []struct {
		pnr  string
		want int
	}{
		{"XYZ789", 4999},  // economy, 1x
		{"ABC123", 12497}, // business, 2.5x
		{"LMN555", 12497}, // business, 2.5x
	}

	for _, tt := range tests {
		t.Run(tt.pnr, func(t *testing.T) {
			ledger := NewRefundLedger()
			ledger.ProcessRefund(tt.pnr, "test")

			requests := ledger.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, tt.want, requests[0].Amount)
		})
	}
}

func TestProcessRefundUnknownBooking(t *testing.T) {
	ledger := NewRefundLedger()

	got := ledger.ProcessRefund("ZZZ000", "lost ticket")

	assert.Contains(t, got, "Cannot process refund: Booking ZZZ000 not found.")
	assert.Empty(t, ledger.Requests())
}

func TestProcessRefundCancelledBookingIsIdempotent(t *testing.T) {
	ledger := NewRefundLedger()

	got := ledger.ProcessRefund("DEF456", "flight cancelled")

	assert.Contains(t, got, "Booking DEF456 is already cancelled. Refund is being processed.")
	assert.Empty(t, ledger.Requests(), "cancelled bookings must not create a new ledger entry")

	// Asking again changes nothing.
	ledger.ProcessRefund("DEF456", "flight cancelled")
	assert.Empty(t, ledger.Requests())
}

func TestProcessRefundUniqueReferences(t *testing.T) {
	ledger := NewRefundLedger()

	ledger.ProcessRefund("ABC123", "first")
	ledger.ProcessRefund("XYZ789", "second")

	requests := ledger.Requests()
	require.Len(t, requests, 2)
	assert.NotEqual(t, requests[0].Reference, requests[1].Reference)
}
