package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"transaction-ledger/internal/models"
	"transaction-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"ID", "Type", "Category", "Amount", "Description", "Date"}

func transactionType(t *models.Transaction) string {
	if t.IsIncome {
		return "income"
	}
	return "expense"
}

// ExportCSV streams every transaction as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	var txs []models.Transaction
	if err := h.DB.Order("id ASC").Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel detects the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range txs {
		t := &txs[i]
		writer.Write([]string{
			strconv.FormatUint(uint64(t.ID), 10),
			transactionType(t),
			t.Category,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Description,
			t.Date,
		})
	}
}

// ExportXLSX streams every transaction as an XLSX attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	var txs []models.Transaction
	if err := h.DB.Order("id ASC").Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions")
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range txs {
		t := &txs[idx]
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), transactionType(t))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), t.Date)
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 30)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write workbook")
	}
}
