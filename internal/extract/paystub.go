package extract

import (
	"context"
	"fmt"
	"strings"

	"docklogger/internal/domain"
	"docklogger/internal/port"
)

// ParsePaystub extracts current-period values from a paystub. This operation
// is primary-only: there is no backup fallback, failures propagate directly.
func (e *Extractor) ParsePaystub(ctx context.Context, in Input) (*domain.PaystubData, error) {
	var att *port.Attachment
	if in.ImageDataURL != "" {
		att = ParseDataURL(in.ImageDataURL)
	}

	raw, err := e.primary.Generate(ctx, port.GenerateInput{
		APIKey:     in.APIKey,
		Prompt:     PaystubPrompt(),
		Attachment: att,
	})
	if err != nil {
		return nil, err
	}

	return normalizePaystub(raw)
}

// rawPaystub tolerates numbers arriving as strings.
type rawPaystub struct {
	LineItems []struct {
		Date   string      `json:"date"`
		Type   string      `json:"type"`
		Rate   interface{} `json:"rate"`
		Hours  interface{} `json:"hours"`
		Amount interface{} `json:"amount"`
	} `json:"line_items"`
	GrossPay       interface{} `json:"gross_pay"`
	NetPay         interface{} `json:"net_pay"`
	TotalHours     interface{} `json:"total_hours"`
	FederalTax     interface{} `json:"federal_tax"`
	ProvincialTax  interface{} `json:"provincial_tax"`
	CPP            interface{} `json:"cpp"`
	EI             interface{} `json:"ei"`
	UnionDues      interface{} `json:"union_dues"`
	OtherDeduction interface{} `json:"other_deductions"`
	PayPeriodStart string      `json:"pay_period_start"`
	PayPeriodEnd   string      `json:"pay_period_end"`
}

func normalizePaystub(raw string) (*domain.PaystubData, error) {
	var parsed rawPaystub
	if err := DecodeObject(raw, &parsed); err != nil {
		return nil, err
	}

	data := &domain.PaystubData{
		// line_items is always an array, even when the model omitted it
		LineItems:      make([]domain.PaystubLineItem, 0, len(parsed.LineItems)),
		GrossPay:       toFloatPtr(parsed.GrossPay),
		NetPay:         toFloatPtr(parsed.NetPay),
		TotalHours:     toFloatPtr(parsed.TotalHours),
		FederalTax:     toFloatPtr(parsed.FederalTax),
		ProvincialTax:  toFloatPtr(parsed.ProvincialTax),
		CPP:            toFloatPtr(parsed.CPP),
		EI:             toFloatPtr(parsed.EI),
		UnionDues:      toFloatPtr(parsed.UnionDues),
		OtherDeduction: toFloatPtr(parsed.OtherDeduction),
		PayPeriodStart: strings.TrimSpace(parsed.PayPeriodStart),
		PayPeriodEnd:   strings.TrimSpace(parsed.PayPeriodEnd),
	}

	for _, item := range parsed.LineItems {
		rate, _ := toFloat(item.Rate)
		hours, _ := toFloat(item.Hours)
		amount, _ := toFloat(item.Amount)

		earningType := domain.EarningRegular
		if strings.Contains(strings.ToLower(item.Type), "over") {
			earningType = domain.EarningOvertime
		}

		data.LineItems = append(data.LineItems, domain.PaystubLineItem{
			Date:   normalizeDate(item.Date),
			Type:   earningType,
			Rate:   rate,
			Hours:  hours,
			Amount: amount,
		})
	}

	// legacy flat shape compatibility: older callers read hours_worked
	if data.HoursWorked == nil && data.TotalHours != nil {
		hw := *data.TotalHours
		data.HoursWorked = &hw
	}

	if data.GrossPay == nil && data.NetPay == nil && len(data.LineItems) == 0 {
		return nil, NewValidationError(fmt.Errorf("no payroll fields found in model response: %s", truncate(raw, 300)))
	}

	return data, nil
}
