package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docklogger/internal/domain"
	"docklogger/internal/extract"
	"docklogger/mocks"
)

func TestParsePaystub_FullResponse(t *testing.T) {
	primary := new(mocks.MockVisionClient)

	raw := `{
		"line_items": [
			{"date": "2024-01-15", "type": "regular", "rate": 54.27, "hours": 8, "amount": 434.16},
			{"date": "2024-01-16", "type": "overtime", "rate": 81.40, "hours": 4, "amount": 325.60}
		],
		"gross_pay": 759.76,
		"net_pay": 540.12,
		"total_hours": 12,
		"federal_tax": 98.40,
		"provincial_tax": 45.20,
		"cpp": 41.30,
		"ei": 12.54,
		"union_dues": 22.20,
		"other_deductions": null,
		"pay_period_start": "2024-01-14",
		"pay_period_end": "2024-01-20"
	}`
	primary.On("Generate", mock.Anything, mock.Anything).Return(raw, nil)

	e := extract.NewExtractor(primary, nil, "")

	data, err := e.ParsePaystub(context.Background(), extract.Input{
		ImageDataURL: "data:image/png;base64,AAAA",
	})

	require.NoError(t, err)
	require.Len(t, data.LineItems, 2)
	assert.Equal(t, domain.EarningRegular, data.LineItems[0].Type)
	assert.Equal(t, domain.EarningOvertime, data.LineItems[1].Type)
	assert.Equal(t, 434.16, data.LineItems[0].Amount)
	require.NotNil(t, data.GrossPay)
	assert.Equal(t, 759.76, *data.GrossPay)
	require.NotNil(t, data.TotalHours)
	assert.Equal(t, float64(12), *data.TotalHours)
	assert.Nil(t, data.OtherDeduction)
	assert.Equal(t, "2024-01-14", data.PayPeriodStart)
}

func TestParsePaystub_DerivesLegacyHoursWorked(t *testing.T) {
	primary := new(mocks.MockVisionClient)

	raw := `{"gross_pay": 500, "total_hours": 16}`
	primary.On("Generate", mock.Anything, mock.Anything).Return(raw, nil)

	e := extract.NewExtractor(primary, nil, "")

	data, err := e.ParsePaystub(context.Background(), extract.Input{})

	require.NoError(t, err)
	require.NotNil(t, data.HoursWorked)
	assert.Equal(t, float64(16), *data.HoursWorked)
}

func TestParsePaystub_MissingLineItemsCoercedToEmpty(t *testing.T) {
	primary := new(mocks.MockVisionClient)

	raw := `{"gross_pay": 500}`
	primary.On("Generate", mock.Anything, mock.Anything).Return(raw, nil)

	e := extract.NewExtractor(primary, nil, "")

	data, err := e.ParsePaystub(context.Background(), extract.Input{})

	require.NoError(t, err)
	assert.NotNil(t, data.LineItems)
	assert.Empty(t, data.LineItems)
}

func TestParsePaystub_StringNumbersCoerced(t *testing.T) {
	primary := new(mocks.MockVisionClient)

	raw := `{"gross_pay": "759.76", "line_items": [{"date":"2024-01-15","type":"regular","rate":"54.27","hours":"8","amount":"434.16"}]}`
	primary.On("Generate", mock.Anything, mock.Anything).Return(raw, nil)

	e := extract.NewExtractor(primary, nil, "")

	data, err := e.ParsePaystub(context.Background(), extract.Input{})

	require.NoError(t, err)
	require.NotNil(t, data.GrossPay)
	assert.Equal(t, 759.76, *data.GrossPay)
	require.Len(t, data.LineItems, 1)
	assert.Equal(t, 54.27, data.LineItems[0].Rate)
}

func TestParsePaystub_NoPayrollFieldsIsFailure(t *testing.T) {
	primary := new(mocks.MockVisionClient)

	raw := `{"notes": "this does not look like a paystub"}`
	primary.On("Generate", mock.Anything, mock.Anything).Return(raw, nil)

	e := extract.NewExtractor(primary, nil, "")

	data, err := e.ParsePaystub(context.Background(), extract.Input{})

	assert.Nil(t, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no payroll fields found")
	// the raw response excerpt is embedded for diagnosis
	assert.Contains(t, err.Error(), "does not look like a paystub")
}

func TestParsePaystub_NoFallback(t *testing.T) {
	primary := new(mocks.MockVisionClient)
	backup := new(mocks.MockVisionClient)

	primaryErr := errors.New("anthropic API error (status 500)")
	primary.On("Generate", mock.Anything, mock.Anything).Return("", primaryErr)

	e := extract.NewExtractor(primary, backup, "backup-key")

	data, err := e.ParsePaystub(context.Background(), extract.Input{})

	assert.Nil(t, data)
	assert.Equal(t, primaryErr, err)
	backup.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestParsePaystub_PromptExampleRoundTrip(t *testing.T) {
	// The worked example embedded in the paystub prompt normalizes cleanly.
	// Feeding the whole prompt text also exercises prose-wrapped extraction:
	// the first {...} in the prompt is the example object.
	primary := new(mocks.MockVisionClient)
	primary.On("Generate", mock.Anything, mock.Anything).Return(extract.PaystubPrompt(), nil)

	e := extract.NewExtractor(primary, nil, "")

	data, err := e.ParsePaystub(context.Background(), extract.Input{})

	require.NoError(t, err)
	require.Len(t, data.LineItems, 2)
	assert.Equal(t, "2024-01-15", data.LineItems[0].Date)
	require.NotNil(t, data.GrossPay)
	assert.Equal(t, 759.76, *data.GrossPay)
	require.NotNil(t, data.NetPay)
	assert.Equal(t, 540.12, *data.NetPay)
	require.NotNil(t, data.HoursWorked)
	assert.Equal(t, float64(12), *data.HoursWorked)
}
