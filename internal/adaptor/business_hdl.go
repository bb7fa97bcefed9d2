package adaptor

import (
	"encoding/json"
	"net/http"

	"business-directory/internal/dto/request"
	"business-directory/internal/dto/response"
	"business-directory/internal/usecase"
	"business-directory/pkg/utils"

	"go.uber.org/zap"
)

type BusinessHandler struct {
	service usecase.BusinessService
	links   func(*http.Request) response.Links
	log     *zap.Logger
}

func NewBusinessHandler(service usecase.BusinessService, links func(*http.Request) response.Links, log *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		service: service,
		links:   links,
		log:     log.With(zap.String("handler", "business")),
	}
}

// CreateBusiness handles POST /businesses
func (h *BusinessHandler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeBusiness(w, r)
	if err != nil {
		h.handleServiceError(w, err, "create business")
		return
	}

	business, err := h.service.CreateBusiness(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "create business")
		return
	}

	utils.ResponseCreated(w, response.BusinessToResponse(business, h.links(r)))
}

// GetBusiness handles GET /businesses/{id}
func (h *BusinessHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	businessID, ok := pathID(r, "id")
	if !ok {
		h.handleServiceError(w, usecase.ErrBusinessNotFound, "get business")
		return
	}

	business, err := h.service.GetBusiness(r.Context(), businessID)
	if err != nil {
		h.handleServiceError(w, err, "get business")
		return
	}

	utils.ResponseSuccess(w, response.BusinessToResponse(business, h.links(r)))
}

// GetBusinesses handles GET /businesses?offset=0&limit=3
func (h *BusinessHandler) GetBusinesses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := request.NewOffsetRequest(
		utils.ParseInt(query.Get("offset"), request.DefaultOffset, 0),
		utils.ParseInt(query.Get("limit"), request.DefaultLimit, 1),
	)

	businesses, err := h.service.ListBusinesses(r.Context(), page)
	if err != nil {
		h.handleServiceError(w, err, "list businesses")
		return
	}

	links := h.links(r)
	utils.ResponseSuccess(w, response.NewPageResponse(
		response.BusinessesToResponse(businesses, links),
		links.NextBusinesses(page.Offset, page.Limit),
	))
}

// GetOwnerBusinesses handles GET /owners/{id}/businesses
func (h *BusinessHandler) GetOwnerBusinesses(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(r, "id")
	if !ok {
		utils.ResponseSuccess(w, []response.BusinessResponse{})
		return
	}

	businesses, err := h.service.ListOwnerBusinesses(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err, "list owner businesses")
		return
	}

	utils.ResponseSuccess(w, response.BusinessesToResponse(businesses, h.links(r)))
}

// UpdateBusiness handles PUT /businesses/{id}
func (h *BusinessHandler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	// Body problems are reported before existence, like on create
	req, err := h.decodeBusiness(w, r)
	if err != nil {
		h.handleServiceError(w, err, "update business")
		return
	}

	businessID, ok := pathID(r, "id")
	if !ok {
		h.handleServiceError(w, usecase.ErrBusinessNotFound, "update business")
		return
	}

	business, err := h.service.UpdateBusiness(r.Context(), businessID, req)
	if err != nil {
		h.handleServiceError(w, err, "update business")
		return
	}

	utils.ResponseSuccess(w, response.BusinessToResponse(business, h.links(r)))
}

// DeleteBusiness handles DELETE /businesses/{id}
func (h *BusinessHandler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	businessID, ok := pathID(r, "id")
	if !ok {
		h.handleServiceError(w, usecase.ErrBusinessNotFound, "delete business")
		return
	}

	if err := h.service.DeleteBusiness(r.Context(), businessID); err != nil {
		h.handleServiceError(w, err, "delete business")
		return
	}

	utils.ResponseNoContent(w)
}

// decodeBusiness enforces that the body names exactly the six business
// attributes before decoding it.
func (h *BusinessHandler) decodeBusiness(w http.ResponseWriter, r *http.Request) (*request.BusinessRequest, error) {
	body, err := readBody(w, r)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || !request.HasExactBusinessFields(fields) {
		return nil, usecase.ErrMissingAttributes
	}

	var req request.BusinessRequest
	if err := decodeJSON(body, &req); err != nil {
		return nil, err
	}

	return &req, nil
}

func (h *BusinessHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	handleServiceError(w, h.log, err, operation)
}
