package knowledge

// Document is a single policy entry in the ERWIQ Airlines knowledge base.
type Document struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding,omitempty"`
}

// PolicyDocuments returns the fixed ERWIQ Airlines policy corpus. The set is
// small enough (tens of documents) that a flat scan is the right index.
func PolicyDocuments() []Document {
	return []Document{
		{
			ID:       "bag_001",
			Category: "Baggage",
			Title:    "Carry-on Baggage Allowance",
			Content: `Carry-on baggage allowance for ERWIQ Airlines:
- Economy Class: 1 carry-on bag (max 7kg), dimensions 55x40x20cm
- Business Class: 2 carry-on bags (max 10kg each)
- First Class: 2 carry-on bags (max 12kg each)
All passengers may also bring 1 personal item (laptop bag, purse, small backpack).
Carry-on must fit in overhead bin or under seat in front of you.`,
		},
		{
			ID:       "bag_002",
			Category: "Baggage",
			Title:    "Checked Baggage Allowance",
			Content: `Checked baggage allowance for ERWIQ Airlines:
- Economy Class: 1 bag, max 23kg, dimensions up to 158cm total
- Business Class: 2 bags, max 32kg each
- First Class: 3 bags, max 32kg each
Additional bags: ₹2,500 for domestic routes per extra bag.
Overweight bags (23-32kg): ₹1,500 extra fee.
Oversized bags (158-203cm): ₹3,000 extra fee.`,
		},
		{
			ID:       "bag_003",
			Category: "Baggage",
			Title:    "Prohibited Items",
			Content: `Items prohibited in carry-on baggage:
- Sharp objects: knives, scissors (blade >6cm), razor blades
- Sporting goods: cricket bats, hockey sticks, golf clubs
- Firearms and weapons of any kind
- Explosives and flammable items
- Liquids over 100ml (must be in clear plastic bag)
Items prohibited in all baggage:
- Explosives, fireworks, flares
- Lithium batteries over 160Wh
- Toxic substances, radioactive materials`,
		},
		{
			ID:       "checkin_001",
			Category: "Check-in",
			Title:    "Online Check-in",
			Content: `ERWIQ Airlines online check-in:
- Opens 48 hours before departure
- Closes 2 hours before departure for all flights
- Available at erwiqairlines.com or ERWIQ Airlines mobile app
- Select seats, add bags, and get digital boarding pass
- Passengers with checked bags must still visit bag drop counter
- Web check-in available in Hindi, English, and regional languages`,
		},
		{
			ID:       "checkin_002",
			Category: "Check-in",
			Title:    "Airport Check-in Deadlines",
			Content: `Airport check-in counter deadlines:
- Domestic flights: Counter closes 45 minutes before departure
- Metro routes (Mumbai-Delhi, Delhi-Bangalore): Counter closes 60 minutes before
- First/Business class: Dedicated counters with priority service at all major airports
- Bag drop for online check-in: Closes 45 minutes before all flights
Passengers arriving after deadline may be denied boarding without refund.`,
		},
		{
			ID:       "booking_001",
			Category: "Booking",
			Title:    "Ticket Types and Flexibility",
			Content: `ERWIQ Airlines ticket types:
- Saver Fare: No changes allowed, no refund. Seat assigned at check-in. Lowest price.
- Flexi Fare: Changes allowed with ₹2,000 fee. Refund as travel credit minus ₹2,500 fee.
- Premium Fare: Free changes up to 24 hours before departure, full refund available.
- Business Fare: Free unlimited changes, full refund anytime.
- First Class: Free unlimited changes, full refund anytime, dedicated support line.`,
		},
		{
			ID:       "booking_002",
			Category: "Booking",
			Title:    "24-Hour Cancellation Policy",
			Content: `ERWIQ Airlines 24-hour free cancellation:
- All tickets booked directly with ERWIQ Airlines can be cancelled within 24 hours of booking for full refund
- Flight must be at least 7 days away from departure
- Refund processed to original payment method within 7-10 business days
- UPI refunds processed within 24-48 hours
- This policy applies to all fare types including Saver Fare
- Does not apply to tickets booked through third-party websites like MakeMyTrip, Goibibo`,
		},
		{
			ID:       "booking_003",
			Category: "Booking",
			Title:    "Refund Processing Time",
			Content: `Refund processing times at ERWIQ Airlines:
- Credit card refunds: 7-10 business days
- Debit card refunds: 10-14 business days
- UPI refunds: 24-48 hours
- Net banking: 5-7 business days
- Travel credit: Issued immediately, valid for 12 months
Refunds are processed to original form of payment only.
For booking modifications, contact our support at 1800-ERWIQ-AIR (toll-free).`,
		},
		{
			ID:       "special_001",
			Category: "Special Services",
			Title:    "Traveling with Pets",
			Content: `ERWIQ Airlines pet policy:
- Small pets (dogs, cats under 8kg): Allowed in cabin, ₹3,500 each way
- Pet must fit in carrier under seat (max 46x28x24cm)
- Larger pets: Must travel in cargo hold, ₹7,500 each way
- Service animals: Travel free in cabin with valid documentation
- Book pet travel at least 48 hours before departure
- Maximum 2 pets per passenger, 4 pets per flight
- Pets not allowed on flights under 2 hours duration
- Health certificate required, issued within 10 days of travel`,
		},
		{
			ID:       "special_002",
			Category: "Special Services",
			Title:    "Unaccompanied Minors",
			Content: `Unaccompanied minor service (UM Service):
- Available for children ages 5-14 traveling alone
- Children 15-17 may use service optionally
- Fee: ₹3,000 each way for all domestic routes
- Includes dedicated staff escort through airport and flight
- Must be booked at least 48 hours in advance by calling customer care
- Child delivered only to pre-authorized adult with valid government ID (Aadhaar/PAN/Passport)
- Not available on flights with layover over 2 hours
- Special meals for children available on request`,
		},
		{
			ID:       "special_003",
			Category: "Special Services",
			Title:    "Wheelchair and Mobility Assistance",
			Content: `Mobility assistance at ERWIQ Airlines:
- Wheelchair assistance: Free of charge, request when booking or at least 48 hours before
- Types: WCHR (to/from gate), WCHS (to/from seat), WCHC (full assistance)
- Personal wheelchairs: Transported free as checked item
- Electric wheelchairs/scooters: Accepted, must notify 48 hours ahead for battery handling
- Stretcher service available on select routes (advance booking required)
- Priority boarding for passengers needing extra time
- All major Indian airports have accessibility features`,
		},
		{
			ID:       "loyalty_001",
			Category: "Loyalty",
			Title:    "ERWIQ Wings Rewards Program",
			Content: `ERWIQ Wings loyalty program:
- Earn 10 Wings points per ₹100 spent on flights
- Business class: Earn 15 Wings points per ₹100
- First class: Earn 20 Wings points per ₹100
- Points valid for 24 months from last activity
- Redeem for flights starting at 5,000 points one-way (short routes)
- Status tiers: Silver (10k points), Gold (25k), Platinum (50k), Diamond (100k)
- Earn bonus points with ERWIQ co-branded credit cards (HDFC, ICICI, SBI)
- Transfer points from partner hotels and banks`,
		},
		{
			ID:       "loyalty_002",
			Category: "Loyalty",
			Title:    "Elite Status Benefits",
			Content: `ERWIQ Wings Elite status benefits:
Silver (10k points/year):
- Priority check-in, 1 free checked bag, priority boarding
Gold (25k points/year):
- Above + complimentary seat selection, 2 free checked bags, lounge access (2 visits/year)
Platinum (50k points/year):
- Above + unlimited lounge access, complimentary upgrades when available, dedicated helpline
Diamond (100k points/year):
- Above + guaranteed upgrades, free companion ticket annually, exclusive airport meet & greet at metros`,
		},
		{
			ID:       "delay_001",
			Category: "Delays",
			Title:    "Flight Delay Compensation",
			Content: `ERWIQ Airlines delay compensation policy (as per DGCA guidelines):
For delays within airline control:
- 2+ hour delay: Refreshments (snacks and beverages)
- 4+ hour delay: Meal voucher (₹500) + rebooking on next available flight
- 6+ hour delay: Full refund option or hotel accommodation if overnight
For weather or ATC delays:
- Rebooking on next available flight at no charge
- No meal or hotel compensation (outside airline control)
- ERWIQ will assist with alternate arrangements where possible`,
		},
		{
			ID:       "delay_002",
			Category: "Delays",
			Title:    "Cancelled Flight Rights",
			Content: `Your rights when ERWIQ Airlines cancels your flight:
- Full refund to original payment method, OR
- Rebooking on next available ERWIQ flight at no charge, OR
- Rebooking on partner airline if faster (subject to availability)
If cancellation is within 24 hours of departure:
- Meal vouchers provided during wait
- Hotel accommodation if overnight wait required (for different-city connections)
- Transportation to/from hotel arranged by ERWIQ
For cancellations within airline control, compensation of ₹5,000 for delays over 6 hours.
Contact: 1800-ERWIQ-AIR or visit nearest ERWIQ counter.`,
		},
		{
			ID:       "india_001",
			Category: "India Specific",
			Title:    "Valid ID Requirements",
			Content: `Valid ID for domestic travel on ERWIQ Airlines:
Accepted government-issued photo IDs:
- Aadhaar Card (most preferred)
- Passport
- PAN Card
- Voter ID
- Driving License
- Government employee ID
- Student ID with photo (for students under 18)
For children under 5: Birth certificate with parent's ID
DigiLocker documents accepted at all airports
ID must match name on booking exactly`,
		},
		{
			ID:       "india_002",
			Category: "India Specific",
			Title:    "Payment Options",
			Content: `Payment options for ERWIQ Airlines bookings:
- All major credit cards (Visa, Mastercard, RuPay, Amex)
- Debit cards with 3D secure
- UPI (Google Pay, PhonePe, Paytm, BHIM)
- Net Banking (all major banks)
- EMI options available on bookings above ₹5,000 (select banks)
- ERWIQ Wallet (preloaded wallet with 2% bonus)
- Corporate billing for business accounts
All payments secured with Indian banking standards and RBI guidelines`,
		},
	}
}
