package handler

import (
	"net/http"

	"transaction-ledger/internal/models"
	"transaction-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultPageSize = 100

// TransactionHandler serves the transaction endpoints.
type TransactionHandler struct {
	DB       *gorm.DB
	PageSize int // default list page size when the caller omits limit
}

func NewTransactionHandler(db *gorm.DB, pageSize int) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &TransactionHandler{
		DB:       db,
		PageSize: pageSize,
	}
}

// createTransactionReq is the accepted payload shape. Pointer fields
// distinguish a missing key from a zero value, so amount 0, is_income false
// and empty strings all bind while an absent field fails validation.
type createTransactionReq struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Category    *string  `json:"category" binding:"required"`
	Description *string  `json:"description" binding:"required"`
	IsIncome    *bool    `json:"is_income" binding:"required"`
	Date        *string  `json:"date" binding:"required"`
}

// CreateTransaction records one ledger entry and responds with the stored
// record, including the database-assigned id.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.FieldError(c, "invalid transaction payload", util.BindingFields(&req, err))
		return
	}

	tx := models.Transaction{
		Amount:      *req.Amount,
		Category:    *req.Category,
		Description: *req.Description,
		IsIncome:    *req.IsIncome,
		Date:        *req.Date,
	}

	// Create fills tx.ID from the store before returning.
	if err := h.DB.Create(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save transaction")
		return
	}

	c.JSON(http.StatusOK, tx)
}

// ListTransactions returns a page of transactions ordered by id ascending.
// Query params: skip (offset, >= 0, default 0) and limit (page size, >= 1,
// default PageSize, no upper bound). A page past the end is an empty array.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	skip, err := util.ParsePageParam(c.Query("skip"), 0, 0)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid skip: "+err.Error())
		return
	}

	limit, err := util.ParsePageParam(c.Query("limit"), h.PageSize, 1)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid limit: "+err.Error())
		return
	}

	txs := make([]models.Transaction, 0)
	if err := h.DB.Order("id ASC").Offset(skip).Limit(limit).Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "list transactions")
		return
	}

	c.JSON(http.StatusOK, txs)
}
