package http

import (
	"encoding/json"
	"net/http"

	"github.com/zafrapp/zafra-backend-go/internal/domain/finance"
	"github.com/zafrapp/zafra-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
	GetBalanceSheet(w http.ResponseWriter, r *http.Request)
	GetProfitLoss(w http.ResponseWriter, r *http.Request)
	GetCashFlow(w http.ResponseWriter, r *http.Request)
	GetZisStatement(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetReports(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

func (h *financeHandlerImpl) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.financeService.CreateTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded", result)
}

func (h *financeHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.ListTransactions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) GetLedger(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetLedger(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) GetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetBalanceSheet(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) GetProfitLoss(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetProfitLoss(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) GetCashFlow(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetCashFlow(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) GetZisStatement(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetZisStatement(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) GetReports(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetReports(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
