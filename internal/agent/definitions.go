package agent

import "github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/llm"

func getSystemPrompt() string {
	return `You are a helpful and factual customer support assistant for **ERWIQ Airlines**.
ERWIQ Airlines was founded by **SANTHOSH KUMAR**.

Your responsibilities:
- Help customers with flight bookings, cancellations, and modifications
- Provide accurate information about airline policies and procedures
- Answer questions about baggage, check-in, refunds, and special services
- Handle refund and compensation requests

IMPORTANT: When customers ask about policies, rules, or procedures:
- Use the search_airline_policies tool to find accurate information
- Base your answers on the retrieved policy documents
- Don't make up policies - if information isn't found, say so

Guidelines:
- Keep responses helpful and accurate
- Quote specific rules and limits from policies when relevant
- For complex issues, offer to escalate to a human agent
- All prices are in Indian Rupees (₹)

Available tools:
- get_ticket_price: Check flight prices
- get_flight_status: Get flight status updates
- lookup_booking: Find booking details by PNR
- process_refund: Process refund requests
- get_destination_image: Generate destination images
- search_airline_policies: Search FAQs and policies`
}

func getToolDefinitions() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Name:        "get_ticket_price",
			Description: "Get the price of a flight ticket to a destination city in India. Use this when a customer asks about ticket prices or how much it costs to fly somewhere.",
			Parameters: map[string]interface{}{
				"destination_city": map[string]interface{}{
					"type":        "string",
					"description": "The Indian city the customer wants to fly to (e.g., 'Mumbai', 'Delhi', 'Bangalore', 'Goa')",
				},
				"travel_class": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"economy", "business", "first"},
					"description": "The travel class. Defaults to economy if not specified.",
				},
			},
			Required: []string{"destination_city"},
		},
		{
			Name:        "get_flight_status",
			Description: "Get the current status of an ERWIQ Airlines flight (on time, delayed, cancelled, boarding). Flight numbers start with 'EQ'.",
			Parameters: map[string]interface{}{
				"flight_number": map[string]interface{}{
					"type":        "string",
					"description": "The flight number (e.g., 'EQ101', 'EQ202')",
				},
			},
			Required: []string{"flight_number"},
		},
		{
			Name:        "lookup_booking",
			Description: "Look up a booking using the PNR (booking reference). Use this when a customer wants to check their booking details.",
			Parameters: map[string]interface{}{
				"pnr": map[string]interface{}{
					"type":        "string",
					"description": "The 6-character booking reference (e.g., 'ABC123')",
				},
			},
			Required: []string{"pnr"},
		},
		{
			Name:        "process_refund",
			Description: "Process a refund request for a cancelled or unwanted booking. Use this when a customer wants to cancel and get a refund.",
			Parameters: map[string]interface{}{
				"pnr": map[string]interface{}{
					"type":        "string",
					"description": "The booking reference to refund",
				},
				"reason": map[string]interface{}{
					"type":        "string",
					"description": "The reason for the refund request",
				},
			},
			Required: []string{"pnr", "reason"},
		},
		{
			Name:        "get_destination_image",
			Description: "Generate a beautiful travel image of an Indian destination city. Use this when a customer wants to see what a destination looks like.",
			Parameters: map[string]interface{}{
				"city": map[string]interface{}{
					"type":        "string",
					"description": "The Indian city to generate an image for",
				},
			},
			Required: []string{"city"},
		},
		{
			Name:        "search_airline_policies",
			Description: "Search ERWIQ Airlines knowledge base for policies, FAQs, and procedures. Use this when a customer asks about baggage rules, check-in procedures, refund policies, pet travel, wheelchair assistance, loyalty programs, ID requirements, or any airline policy.",
			Parameters: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "The topic or question to search for in the knowledge base",
				},
			},
			Required: []string{"query"},
		},
	}
}
