package dto

import (
	"time"

	"github.com/apenask/csnutri-server/internal/domain/report"
)

// SalesByDayResponse representa o agregado de vendas de um dia
type SalesByDayResponse struct {
	Day   string  `json:"day"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// SalesReportResponse representa o relatório de vendas de um período
type SalesReportResponse struct {
	From       string               `json:"from"`
	To         string               `json:"to"`
	SalesCount int                  `json:"sales_count"`
	Total      float64              `json:"total"`
	ByDay      []SalesByDayResponse `json:"by_day"`
}

// TopProductResponse representa um produto ranqueado por vendas
type TopProductResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// SummaryResponse representa o resumo financeiro de um período
type SummaryResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

const reportDateLayout = "2006-01-02"

// ToSalesReportResponse converte o relatório de vendas
func ToSalesReportResponse(r *report.SalesReport) SalesReportResponse {
	byDay := make([]SalesByDayResponse, 0, len(r.ByDay))
	for _, d := range r.ByDay {
		byDay = append(byDay, SalesByDayResponse{
			Day:   d.Day.Format(reportDateLayout),
			Count: d.Count,
			Total: d.Total,
		})
	}
	return SalesReportResponse{
		From:       r.From.Format(reportDateLayout),
		To:         r.To.Format(reportDateLayout),
		SalesCount: r.SalesCount,
		Total:      r.Total,
		ByDay:      byDay,
	}
}

// ToTopProductsResponse converte o ranking de produtos
func ToTopProductsResponse(products []report.TopProduct) []TopProductResponse {
	items := make([]TopProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, TopProductResponse{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			Total:       p.Total,
		})
	}
	return items
}

// ToSummaryResponse converte o resumo financeiro
func ToSummaryResponse(s *report.Summary) SummaryResponse {
	return SummaryResponse{
		From:     s.From.Format(reportDateLayout),
		To:       s.To.Format(reportDateLayout),
		Revenue:  s.Revenue,
		Expenses: s.Expenses,
		Profit:   s.Profit,
	}
}

// ParseReportPeriod interpreta o intervalo de datas dos relatórios.
// Sem parâmetros, assume os últimos 30 dias; o fim do intervalo é
// estendido até o último instante do dia
func ParseReportPeriod(fromParam, toParam string) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if fromParam != "" {
		parsed, err := time.Parse(reportDateLayout, fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	if toParam != "" {
		parsed, err := time.Parse(reportDateLayout, toParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	return from, to, nil
}
