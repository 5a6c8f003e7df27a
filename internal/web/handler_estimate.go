package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/estimate"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/pricing"
)

type deckEstimateRequest struct {
	ZipCode    string                  `json:"zipCode"`
	Complexity string                  `json:"complexity,omitempty"`
	Dimensions estimate.DeckDimensions `json:"dimensions"`
	Options    estimate.DeckOptions    `json:"options"`
}

type kitchenEstimateRequest struct {
	ZipCode    string                     `json:"zipCode"`
	Complexity string                     `json:"complexity,omitempty"`
	Dimensions estimate.KitchenDimensions `json:"dimensions"`
	Options    estimate.KitchenOptions    `json:"options"`
}

type bathroomEstimateRequest struct {
	ZipCode    string                      `json:"zipCode"`
	Complexity string                      `json:"complexity,omitempty"`
	Dimensions estimate.BathroomDimensions `json:"dimensions"`
	Options    estimate.BathroomOptions    `json:"options"`
}

type estimateResponse struct {
	EstimateID   string                `json:"estimateId"`
	MaterialList *domain.MaterialList  `json:"materialList"`
	Pricing      *domain.PricingResult `json:"pricing"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *Server) handleDeckEstimate(w http.ResponseWriter, r *http.Request) {
	var req deckEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	calc, err := estimate.NewDeckCalculator(req.Dimensions, req.Options, s.book)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	s.respondPriced(w, r, calc.Calculate(), req.ZipCode, req.Complexity)
}

func (s *Server) handleKitchenEstimate(w http.ResponseWriter, r *http.Request) {
	var req kitchenEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	calc, err := estimate.NewKitchenCalculator(req.Dimensions, req.Options, s.book)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	s.respondPriced(w, r, calc.Calculate(), req.ZipCode, req.Complexity)
}

func (s *Server) handleBathroomEstimate(w http.ResponseWriter, r *http.Request) {
	var req bathroomEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	calc, err := estimate.NewBathroomCalculator(req.Dimensions, req.Options, s.book)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	s.respondPriced(w, r, calc.Calculate(), req.ZipCode, req.Complexity)
}

// respondPriced runs the pricing chain over a calculated material list and
// writes the combined estimate.
func (s *Server) respondPriced(w http.ResponseWriter, r *http.Request, list *domain.MaterialList, zipCode, complexity string) {
	cx, err := pricing.ParseComplexity(complexity)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "complexity"})
		return
	}

	result := s.pricer.FetchPricing(r.Context(), list.Items, zipCode, cx)
	s.writeJSON(w, http.StatusOK, estimateResponse{
		EstimateID:   uuid.NewString(),
		MaterialList: list,
		Pricing:      result,
	})
}

// writeCalcError maps calculator construction failures: validation errors
// become 400s with field detail, anything else is a 500.
func (s *Server) writeCalcError(w http.ResponseWriter, err error) {
	var verr *estimate.ValidationError
	if errors.As(err, &verr) {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
		return
	}
	s.logger.Error("estimate calculation failed", "error", err)
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
