package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"transaction-ledger/internal/config"
	"transaction-ledger/internal/database"
	"transaction-ledger/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func setupExportRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate database: %v", err)
	}

	r := gin.New()
	h := NewExportHandler(db)
	r.GET("/transactions/export/csv", h.ExportCSV)
	r.GET("/transactions/export/xlsx", h.ExportXLSX)
	return r, db
}

func seedTransactions(t *testing.T, db *gorm.DB) {
	t.Helper()
	txs := []models.Transaction{
		{Amount: 42.5, Category: "food", Description: "lunch", IsIncome: false, Date: "2024-01-01"},
		{Amount: 1500, Category: "salary", Description: "january", IsIncome: true, Date: "2024-01-31"},
	}
	if err := db.Create(&txs).Error; err != nil {
		t.Fatalf("seed transactions: %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	r, db := setupExportRouter(t)
	seedTransactions(t, db)

	w := doRequest(t, r, http.MethodGet, "/transactions/export/csv", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}

	body := bytes.TrimPrefix(w.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF})
	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("csv has %d rows, want header + 2 records", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Type" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "expense" || rows[1][3] != "42.50" {
		t.Errorf("first record = %v, want expense of 42.50", rows[1])
	}
	if rows[2][1] != "income" || rows[2][2] != "salary" {
		t.Errorf("second record = %v, want salary income", rows[2])
	}
}

func TestExportXLSX(t *testing.T) {
	r, db := setupExportRouter(t)
	seedTransactions(t, db)

	w := doRequest(t, r, http.MethodGet, "/transactions/export/xlsx", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Transactions", "C2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "food" {
		t.Errorf("C2 = %q, want %q", got, "food")
	}

	got, err = f.GetCellValue("Transactions", "B3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "income" {
		t.Errorf("B3 = %q, want %q", got, "income")
	}
}

func TestExportCSV_EmptyStore(t *testing.T) {
	r, _ := setupExportRouter(t)

	w := doRequest(t, r, http.MethodGet, "/transactions/export/csv", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := bytes.TrimPrefix(w.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF})
	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("csv has %d rows, want header only", len(rows))
	}
}
