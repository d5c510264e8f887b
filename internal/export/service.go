package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dfrestrepo/guia-notify/internal/entity"
	"github.com/dfrestrepo/guia-notify/internal/repository"
)

// Service is a tiny façade over the order repository that produces shipped
// order reports as XLSX or CSV bytes.
type Service struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

func NewService(orders repository.OrderRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{orders: orders, logger: logger}
}

// ExportShippedXLSX returns an XLSX workbook for orders marked shipped
// inside the date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all shipped orders.
func (s *Service) ExportShippedXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	orders, err := s.listWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Despachos"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range reportHeaders() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, o := range orders {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		for col, v := range reportRow(o) {
			write(col+1, v)
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 16) // order number
	_ = f.SetColWidth(sheet, "B", "B", 26) // customer
	_ = f.SetColWidth(sheet, "C", "C", 16) // phone
	_ = f.SetColWidth(sheet, "D", "D", 40) // address
	_ = f.SetColWidth(sheet, "E", "E", 18) // city
	_ = f.SetColWidth(sheet, "F", "F", 20) // tracking
	_ = f.SetColWidth(sheet, "G", "G", 18) // carrier
	_ = f.SetColWidth(sheet, "H", "H", 14) // shipped at

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(orders),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportShippedCSV is the plain-text counterpart for the same window.
func (s *Service) ExportShippedCSV(ctx context.Context, from, to *time.Time) ([]byte, error) {
	orders, err := s.listWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(reportHeaders()); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	for _, o := range orders {
		row := reportRow(o)
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = fmt.Sprintf("%v", v)
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("csv write: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok", "rows", len(orders))
	return buf.Bytes(), nil
}

func (s *Service) listWindow(ctx context.Context, from, to *time.Time) ([]*entity.Order, error) {
	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	orders, err := s.orders.ListShipped(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query shipped orders: %w", err)
	}
	return orders, nil
}

func reportHeaders() []string {
	return []string{
		"Order Number",
		"Customer",
		"Phone",
		"Address",
		"City",
		"Tracking Number",
		"Carrier",
		"Shipped At",
	}
}

func reportRow(o *entity.Order) []any {
	tracking := ""
	if o.TrackingNumber != nil {
		tracking = *o.TrackingNumber
	}
	carrier := ""
	if o.Carrier != nil {
		carrier = *o.Carrier
	}
	city := ""
	if o.City != nil {
		city = *o.City
	}
	shippedAt := ""
	if o.ShippedAt != nil {
		shippedAt = o.ShippedAt.Format("2006-01-02")
	}
	return []any{
		o.OrderNumber,
		o.CustomerName,
		o.PhoneNumber,
		o.ShippingAddress,
		city,
		tracking,
		carrier,
		shippedAt,
	}
}
