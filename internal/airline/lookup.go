package airline

import (
	"fmt"
	"sort"
	"strings"
)

// TicketPrice looks up the fare for a destination city and travel class.
// Unknown cities list the available destinations; unknown classes list the
// valid cabin classes.
func TicketPrice(destinationCity, travelClass string) string {
	city := strings.ToLower(strings.TrimSpace(destinationCity))
	class := strings.ToLower(strings.TrimSpace(travelClass))
	if class == "" {
		class = "economy"
	}

	fares, ok := ticketPrices[city]
	if !ok {
		return fmt.Sprintf("Sorry, we don't fly to %s. Available destinations: %s",
			destinationCity, strings.Join(Destinations(), ", "))
	}

	price, ok := fares[class]
	if !ok {
		return "Invalid class. Choose from: economy, business, first"
	}

	return fmt.Sprintf("₹%s for %s class to %s", formatRupees(price), title(class), title(city))
}

// FlightStatus reports route, departure and current status for a flight.
func FlightStatus(flightNumber string) string {
	number := strings.ToUpper(strings.TrimSpace(flightNumber))

	flight, ok := flights[number]
	if !ok {
		return fmt.Sprintf("Flight %s not found. Please check the flight number. Our flights start with 'EQ' (e.g., EQ101, EQ202).", number)
	}

	return fmt.Sprintf("Flight %s (%s): Departure %s, Status: %s", number, flight.Route, flight.Departure, flight.Status)
}

// LookupBooking finds a booking by PNR and renders its details.
func LookupBooking(pnr string) string {
	ref := strings.ToUpper(strings.TrimSpace(pnr))

	booking, ok := bookings[ref]
	if !ok {
		return fmt.Sprintf("Booking %s not found. Please check your booking reference.", ref)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Booking %s:\n", ref))
	sb.WriteString(fmt.Sprintf("- Passenger: %s\n", booking.Passenger))
	sb.WriteString(fmt.Sprintf("- Flight: %s (%s)\n", booking.Flight, booking.Route))
	sb.WriteString(fmt.Sprintf("- Date: %s\n", booking.Date))
	sb.WriteString(fmt.Sprintf("- Class: %s, Seat: %s\n", booking.Class, booking.Seat))
	sb.WriteString(fmt.Sprintf("- Status: %s\n", booking.Status))
	sb.WriteString(fmt.Sprintf("- Meal Preference: %s", booking.Meal))
	return sb.String()
}

// Destinations returns the served cities in sorted order.
func Destinations() []string {
	cities := make([]string, 0, len(ticketPrices))
	for city := range ticketPrices {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// title capitalizes the first letter; cities and classes are single
// lowercase words in the fare table.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatRupees renders an amount with Indian-style use of a comma for the
// thousands group, matching the fare table's magnitudes.
func formatRupees(amount int) string {
	if amount < 1000 {
		return fmt.Sprintf("%d", amount)
	}
	return fmt.Sprintf("%d,%03d", amount/1000, amount%1000)
}
