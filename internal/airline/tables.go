package airline

// Static reference data for the ERWIQ Airlines demo. Loaded once, read-only.

// ticketPrices maps destination city to per-class fares in rupees.
var ticketPrices = map[string]map[string]int{
	"mumbai":    {"economy": 4999, "business": 12999, "first": 24999},
	"delhi":     {"economy": 5499, "business": 14999, "first": 28999},
	"bangalore": {"economy": 4499, "business": 11999, "first": 22999},
	"chennai":   {"economy": 4299, "business": 10999, "first": 21999},
	"kolkata":   {"economy": 5999, "business": 15999, "first": 29999},
	"hyderabad": {"economy": 4599, "business": 11499, "first": 22499},
	"ahmedabad": {"economy": 3999, "business": 9999, "first": 19999},
	"pune":      {"economy": 3499, "business": 8999, "first": 17999},
	"jaipur":    {"economy": 4199, "business": 10499, "first": 20999},
	"goa":       {"economy": 5499, "business": 13999, "first": 26999},
	"kochi":     {"economy": 4799, "business": 12499, "first": 23999},
	"lucknow":   {"economy": 3999, "business": 9499, "first": 18999},
}

type Flight struct {
	Route     string
	Departure string
	Status    string
}

var flights = map[string]Flight{
	"EQ101": {Route: "Mumbai → Delhi", Departure: "06:00", Status: "On Time"},
	"EQ202": {Route: "Delhi → Bangalore", Departure: "09:30", Status: "Delayed 30min"},
	"EQ303": {Route: "Chennai → Kolkata", Departure: "14:15", Status: "On Time"},
	"EQ404": {Route: "Hyderabad → Mumbai", Departure: "18:45", Status: "Cancelled"},
	"EQ505": {Route: "Bangalore → Goa", Departure: "11:00", Status: "Boarding"},
	"EQ606": {Route: "Pune → Jaipur", Departure: "07:30", Status: "On Time"},
	"EQ707": {Route: "Kochi → Chennai", Departure: "16:00", Status: "Delayed 1hr"},
	"EQ808": {Route: "Ahmedabad → Lucknow", Departure: "20:30", Status: "On Time"},
}

type Booking struct {
	Passenger string
	Flight    string
	Route     string
	Date      string
	Class     string
	Seat      string
	Status    string
	Meal      string
}

var bookings = map[string]Booking{
	"ABC123": {
		Passenger: "Rahul Sharma",
		Flight:    "EQ101",
		Route:     "Mumbai → Delhi",
		Date:      "2025-06-15",
		Class:     "Business",
		Seat:      "2A",
		Status:    "Confirmed",
		Meal:      "Vegetarian",
	},
	"XYZ789": {
		Passenger: "Priya Patel",
		Flight:    "EQ303",
		Route:     "Chennai → Kolkata",
		Date:      "2025-06-20",
		Class:     "Economy",
		Seat:      "24F",
		Status:    "Confirmed",
		Meal:      "Standard",
	},
	"DEF456": {
		Passenger: "Amit Kumar",
		Flight:    "EQ404",
		Route:     "Hyderabad → Mumbai",
		Date:      "2025-06-18",
		Class:     "First",
		Seat:      "1A",
		Status:    "Cancelled - Refund Pending",
		Meal:      "Jain",
	},
	"PQR999": {
		Passenger: "Sneha Reddy",
		Flight:    "EQ505",
		Route:     "Bangalore → Goa",
		Date:      "2025-06-22",
		Class:     "Economy",
		Seat:      "15C",
		Status:    "Confirmed",
		Meal:      "Non-Vegetarian",
	},
	"LMN555": {
		Passenger: "Vikram Singh",
		Flight:    "EQ606",
		Route:     "Pune → Jaipur",
		Date:      "2025-06-25",
		Class:     "Business",
		Seat:      "4B",
		Status:    "Confirmed",
		Meal:      "Vegetarian",
	},
}
