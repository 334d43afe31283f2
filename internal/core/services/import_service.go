package services

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/adapters/persistence/repositories"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidWorkbook is returned when the uploaded file is not a readable xlsx
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Expected column order in the import sheet: name, description, price, stock.
// The first row is treated as a header and skipped.
const importSheetColumns = 4

// ImportService handles seller bulk product import from spreadsheets
type ImportService struct {
	productRepo repositories.ProductRepository
}

// NewImportService creates a new import service
func NewImportService(productRepo repositories.ProductRepository) *ImportService {
	return &ImportService{productRepo: productRepo}
}

// ImportRowError describes a skipped row
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult summarizes a bulk import
type ImportResult struct {
	Created int              `json:"created"`
	Skipped []ImportRowError `json:"skipped,omitempty"`
}

// ImportProducts reads an xlsx stream and creates products for the seller.
// Rows failing validation are skipped and reported, not fatal.
func (s *ImportService) ImportProducts(ctx context.Context, sellerID uint, r io.Reader) (*ImportResult, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrInvalidWorkbook
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, ErrInvalidWorkbook
	}

	result := &ImportResult{}
	var products []*models.Product

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1

		product, reason := parseImportRow(row, sellerID)
		if reason != "" {
			result.Skipped = append(result.Skipped, ImportRowError{Row: rowNum, Reason: reason})
			continue
		}
		products = append(products, product)
	}

	if err := s.productRepo.CreateBatch(ctx, products); err != nil {
		return nil, err
	}

	result.Created = len(products)
	return result, nil
}

func parseImportRow(row []string, sellerID uint) (*models.Product, string) {
	cells := make([]string, importSheetColumns)
	for i := 0; i < importSheetColumns && i < len(row); i++ {
		cells[i] = strings.TrimSpace(row[i])
	}

	name := cells[0]
	if name == "" {
		return nil, "name is required"
	}

	price, err := strconv.ParseFloat(cells[2], 64)
	if err != nil || price <= 0 {
		return nil, "price must be a positive number"
	}

	stock := 0
	if cells[3] != "" {
		stock, err = strconv.Atoi(cells[3])
		if err != nil || stock < 0 {
			return nil, "stock must be a non-negative integer"
		}
	}

	return &models.Product{
		SellerID:    sellerID,
		Name:        name,
		Description: cells[1],
		Price:       price,
		Stock:       stock,
	}, ""
}
