package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/airline"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/knowledge"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/media"
)

// ToolHandler dispatches tool calls from the model to the deterministic
// lookups, the refund ledger, the policy index, and the media service.
type ToolHandler struct {
	refunds  *airline.RefundLedger
	policies *knowledge.Index
	media    *media.Service
}

func NewToolHandler(refunds *airline.RefundLedger, policies *knowledge.Index, mediaSvc *media.Service) *ToolHandler {
	return &ToolHandler{
		refunds:  refunds,
		policies: policies,
		media:    mediaSvc,
	}
}

func (h *ToolHandler) ExecuteTool(ctx context.Context, name string, input json.RawMessage) (string, error) {
	switch name {
	case "get_ticket_price":
		return h.ticketPrice(input)
	case "get_flight_status":
		return h.flightStatus(input)
	case "lookup_booking":
		return h.lookupBooking(input)
	case "process_refund":
		return h.processRefund(input)
	case "get_destination_image":
		return h.destinationImage(ctx, input)
	case "search_airline_policies":
		return h.searchPolicies(ctx, input)
	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

type ticketPriceInput struct {
	DestinationCity string `json:"destination_city"`
	TravelClass     string `json:"travel_class"`
}

func (h *ToolHandler) ticketPrice(input json.RawMessage) (string, error) {
	var params ticketPriceInput
	if err := json.Unmarshal(input, &params); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	if params.DestinationCity == "" {
		return "", fmt.Errorf("destination_city is required")
	}

	return airline.TicketPrice(params.DestinationCity, params.TravelClass), nil
}

type flightStatusInput struct {
	FlightNumber string `json:"flight_number"`
}

func (h *ToolHandler) flightStatus(input json.RawMessage) (string, error) {
	var params flightStatusInput
	if err := json.Unmarshal(input, &params); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	if params.FlightNumber == "" {
		return "", fmt.Errorf("flight_number is required")
	}

	return airline.FlightStatus(params.FlightNumber), nil
}

type lookupBookingInput struct {
	PNR string `json:"pnr"`
}

func (h *ToolHandler) lookupBooking(input json.RawMessage) (string, error) {
	var params lookupBookingInput
	if err := json.Unmarshal(input, &params); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	if params.PNR == "" {
		return "", fmt.Errorf("pnr is required")
	}

	return airline.LookupBooking(params.PNR), nil
}

type processRefundInput struct {
	PNR    string `json:"pnr"`
	Reason string `json:"reason"`
}

func (h *ToolHandler) processRefund(input json.RawMessage) (string, error) {
	var params processRefundInput
	if err := json.Unmarshal(input, &params); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	if params.PNR == "" {
		return "", fmt.Errorf("pnr is required")
	}

	return h.refunds.ProcessRefund(params.PNR, params.Reason), nil
}

type destinationImageInput struct {
	City string `json:"city"`
}

func (h *ToolHandler) destinationImage(ctx context.Context, input json.RawMessage) (string, error) {
	if h.media == nil {
		return "", fmt.Errorf("image generation not available: OPENAI_API_KEY is not configured")
	}

	var params destinationImageInput
	if err := json.Unmarshal(input, &params); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	if params.City == "" {
		return "", fmt.Errorf("city is required")
	}

	return h.media.DestinationImage(ctx, params.City)
}

type searchPoliciesInput struct {
	Query string `json:"query"`
}

func (h *ToolHandler) searchPolicies(ctx context.Context, input json.RawMessage) (string, error) {
	if h.policies == nil {
		return "", fmt.Errorf("policy search not available: knowledge base is not configured")
	}

	var params searchPoliciesInput
	if err := json.Unmarshal(input, &params); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	if params.Query == "" {
		return "", fmt.Errorf("query is required")
	}

	return h.policies.SearchPolicies(ctx, params.Query)
}
