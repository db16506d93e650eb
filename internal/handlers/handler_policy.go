package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthsure/policyadmin/internal/apperrors"
	"github.com/hearthsure/policyadmin/internal/core/domain"
	portssvc "github.com/hearthsure/policyadmin/internal/core/ports/services"
	"github.com/hearthsure/policyadmin/internal/dto"
	"github.com/hearthsure/policyadmin/internal/middleware"
)

// policyHandler handles HTTP requests related to policies.
type policyHandler struct {
	sales        portssvc.PolicySalesSvc
	retrieval    portssvc.PolicyRetrievalSvc
	cancellation portssvc.PolicyCancellationSvc
	renewal      portssvc.PolicyRenewalSvc
}

// RegisterPolicyRoutes registers routes related to policies.
func RegisterPolicyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &policyHandler{
		sales:        services.Sales,
		retrieval:    services.Retrieval,
		cancellation: services.Cancellation,
		renewal:      services.Renewal,
	}

	policies := rg.Group("/policies")
	{
		policies.POST("", h.sellPolicy)
		policies.GET("/:policyReference", h.getPolicy)
		policies.POST("/:policyReference/cancel", h.cancelPolicy)
		policies.POST("/:policyReference/cancellation-quote", h.cancellationQuote)
		policies.PUT("/:policyReference/mark-as-claim", h.markAsClaim)
		policies.POST("/:policyReference/renew", h.renewPolicy)
	}
}

// sellPolicy godoc
// @Summary Sell a new policy
// @Description Creates, purchases and persists a new home insurance policy
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   policy body dto.SellPolicyRequest true "Policy details"
// @Success 201 {object} dto.SellPolicyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /policies [post]
func (h *policyHandler) sellPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SellPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SellPolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "request.validation", Message: err.Error()})
		return
	}

	resp, err := h.sales.SellPolicy(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Policy sold", slog.String("policy_reference", resp.PolicyReference))
	c.JSON(http.StatusCreated, resp)
}

// getPolicy godoc
// @Summary Get a policy
// @Description Retrieves a policy by its reference
// @Tags policies
// @Produce  json
// @Param   policyReference path string true "Policy reference"
// @Success 200 {object} dto.PolicyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /policies/{policyReference} [get]
func (h *policyHandler) getPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.retrieval.GetPolicy(c.Request.Context(), c.Param("policyReference"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// cancelPolicy godoc
// @Summary Cancel a policy
// @Description Cancels an active policy and returns the refund due
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   policyReference path string true "Policy reference"
// @Param   cancellation body dto.CancelPolicyRequest true "Cancellation details"
// @Success 200 {object} dto.CancelPolicyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /policies/{policyReference}/cancel [post]
func (h *policyHandler) cancelPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CancelPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CancelPolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "request.validation", Message: err.Error()})
		return
	}

	resp, err := h.cancellation.CancelPolicy(c.Request.Context(), c.Param("policyReference"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Policy cancelled", slog.String("policy_reference", resp.PolicyReference))
	c.JSON(http.StatusOK, resp)
}

// cancellationQuote godoc
// @Summary Quote a cancellation
// @Description Computes the refund a cancellation would yield without changing the policy
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   policyReference path string true "Policy reference"
// @Param   cancellation body dto.CancelPolicyRequest true "Cancellation details"
// @Success 200 {object} dto.CancelPolicyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /policies/{policyReference}/cancellation-quote [post]
func (h *policyHandler) cancellationQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CancelPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CancellationQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "request.validation", Message: err.Error()})
		return
	}

	resp, err := h.cancellation.GetCancellationQuote(c.Request.Context(), c.Param("policyReference"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// markAsClaim godoc
// @Summary Mark a policy as claimed against
// @Description Flags the policy as having a claim; claims void cancellation refunds
// @Tags policies
// @Produce  json
// @Param   policyReference path string true "Policy reference"
// @Success 200 {object} dto.PolicyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /policies/{policyReference}/mark-as-claim [put]
func (h *policyHandler) markAsClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.cancellation.MarkAsClaim(c.Request.Context(), c.Param("policyReference"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Policy marked as claim", slog.String("policy_reference", resp.PolicyReference))
	c.JSON(http.StatusOK, resp)
}

// renewPolicy godoc
// @Summary Renew a policy
// @Description Renews an active policy for another year
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   policyReference path string true "Policy reference"
// @Param   renewal body dto.RenewPolicyRequest true "Renewal details"
// @Success 200 {object} dto.PolicyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /policies/{policyReference}/renew [post]
func (h *policyHandler) renewPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RenewPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RenewPolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "request.validation", Message: err.Error()})
		return
	}

	resp, err := h.renewal.RenewPolicy(c.Request.Context(), c.Param("policyReference"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Policy renewed", slog.String("policy_reference", resp.PolicyReference))
	c.JSON(http.StatusOK, resp)
}

// respondWithError maps service errors to HTTP responses. Clients branch on
// the code field, so every business failure keeps its domain code; only the
// not-found code changes the status.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	var domErr *domain.Error
	if errors.As(err, &domErr) {
		status := http.StatusBadRequest
		if domErr.Code == "policy.not_found" {
			status = http.StatusNotFound
		}
		logger.Warn("Business rule rejected request",
			slog.String("code", domErr.Code), slog.String("error", domErr.Message))
		c.JSON(status, dto.ErrorResponse{Code: domErr.Code, Message: domErr.Message})
		return
	}

	if errors.Is(err, apperrors.ErrDuplicate) {
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Code: "policy.duplicate", Message: err.Error()})
		return
	}

	logger.Error("Unexpected error handling request", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: "internal_error", Message: "An unexpected error occurred."})
}
