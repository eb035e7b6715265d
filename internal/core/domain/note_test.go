package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

func TestParseNoteDetails_Canonical(t *testing.T) {
	raw := []byte(`{
		"transaction_type": "Debit",
		"transaction_date": "2024-04-01",
		"invoice_no": "INV-42",
		"status": "Created",
		"total_amount": 236,
		"items": [
			{"item_id": "ITM001", "particulars": "Cement", "remarks": "grade 53", "qty": 2, "rate": 100, "tax": 18}
		]
	}`)

	d, ok := domain.ParseNoteDetails(raw)

	require.True(t, ok)
	assert.Equal(t, "Debit", d.TransactionType)
	assert.Equal(t, "INV-42", d.InvoiceNo)
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(236)))
	require.Len(t, d.Items, 1)
	assert.Equal(t, "ITM001", d.Items[0].ItemID)
	assert.True(t, d.Items[0].Qty.Valid)
	assert.True(t, d.Items[0].Qty.Decimal.Equal(decimal.NewFromInt(2)))
}

func TestParseNoteDetails_LegacyAliases(t *testing.T) {
	raw := []byte(`{
		"transaction_type": "Credit",
		"invoiceNo": "INV-7",
		"totalAmount": "59",
		"items": [
			{"description": "Sand", "note": "river", "quantity": "1", "price": "50", "taxAmount": "18"}
		]
	}`)

	d, ok := domain.ParseNoteDetails(raw)

	require.True(t, ok)
	assert.Equal(t, "INV-7", d.InvoiceNo)
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(59)))
	require.Len(t, d.Items, 1)
	assert.Equal(t, "Sand", d.Items[0].Particulars)
	assert.Equal(t, "river", d.Items[0].Remarks)
	assert.True(t, d.Items[0].Rate.Decimal.Equal(decimal.NewFromInt(50)))
	assert.True(t, d.Items[0].Tax.Decimal.Equal(decimal.NewFromInt(18)))
}

func TestParseNoteDetails_DoubleEncoded(t *testing.T) {
	inner := `{"transaction_type":"Debit","status":"Created","total_amount":10,"items":[]}`
	raw, err := json.Marshal(inner)
	require.NoError(t, err)

	d, ok := domain.ParseNoteDetails(raw)

	require.True(t, ok)
	assert.Equal(t, "Debit", d.TransactionType)
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(10)))
}

func TestParseNoteDetails_Corrupt(t *testing.T) {
	d, ok := domain.ParseNoteDetails([]byte(`{"transaction_type": `))

	assert.False(t, ok)
	assert.Equal(t, domain.NoteDetails{}, d)
}

func TestParseNoteDetails_Empty(t *testing.T) {
	d, ok := domain.ParseNoteDetails(nil)

	assert.True(t, ok)
	assert.Empty(t, d.Items)
}

func TestParseNoteDetails_UnparseableNumbersDecodeAsAbsent(t *testing.T) {
	raw := []byte(`{"items":[{"qty":"two","rate":{},"tax":null},{"qty":"","rate":5}]}`)

	d, ok := domain.ParseNoteDetails(raw)

	require.True(t, ok)
	require.Len(t, d.Items, 2)
	assert.False(t, d.Items[0].Qty.Valid)
	assert.False(t, d.Items[0].Rate.Valid)
	assert.False(t, d.Items[0].Tax.Valid)
	assert.False(t, d.Items[1].Qty.Valid)
	assert.True(t, d.Items[1].Rate.Valid)
	// absent values contribute nothing to amounts
	assert.True(t, d.Items[0].LineAmount().IsZero())
	assert.True(t, d.Items[1].LineAmount().IsZero())
}

func TestNoteDetails_MarshalCanonicalShape(t *testing.T) {
	d := domain.NoteDetails{
		TransactionType: "Debit",
		TransactionDate: "2024-04-01",
		InvoiceNo:       "INV-42",
		Status:          "Created",
		TotalAmount:     decimal.NewFromInt(236),
		Items: []domain.NoteItem{
			{ItemID: "ITM001", Particulars: "Cement", Qty: decimal.NewNullDecimal(decimal.NewFromInt(2)), Rate: decimal.NewNullDecimal(decimal.NewFromInt(100)), Tax: decimal.NewNullDecimal(decimal.NewFromInt(18))},
		},
	}

	b, err := json.Marshal(d)
	require.NoError(t, err)

	var generic map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &generic))
	assert.Contains(t, generic, "total_amount")
	assert.NotContains(t, generic, "totalAmount")
	assert.Equal(t, "236", string(generic["total_amount"]))

	// aliases must survive a decode round trip as canonical names
	var back domain.NoteDetails
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "ITM001", back.Items[0].ItemID)
	assert.True(t, back.Items[0].Tax.Decimal.Equal(decimal.NewFromInt(18)))
}

func TestNoteItem_MarshalAbsentValuesAsNull(t *testing.T) {
	it := domain.NoteItem{ItemID: "ITM001", Rate: decimal.NewNullDecimal(decimal.NewFromInt(50))}

	b, err := json.Marshal(it)
	require.NoError(t, err)

	var generic map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &generic))
	assert.Equal(t, "null", string(generic["qty"]))
	assert.Equal(t, "50", string(generic["rate"]))
	assert.Equal(t, "null", string(generic["tax"]))

	// absence survives a round trip
	var back domain.NoteItem
	require.NoError(t, json.Unmarshal(b, &back))
	assert.False(t, back.Qty.Valid)
	assert.True(t, back.Rate.Valid)
}

func TestNoteDetails_MarshalNilItemsAsEmptyArray(t *testing.T) {
	b, err := json.Marshal(domain.NoteDetails{TransactionType: "Debit"})
	require.NoError(t, err)

	var generic map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &generic))
	assert.Equal(t, "[]", string(generic["items"]))
}

func TestNoteItem_Amounts(t *testing.T) {
	it := domain.NoteItem{
		Qty:  decimal.NewNullDecimal(decimal.NewFromInt(2)),
		Rate: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Tax:  decimal.NewNullDecimal(decimal.NewFromInt(18)),
	}

	assert.True(t, it.BasicAmount().Equal(decimal.NewFromInt(200)))
	assert.True(t, it.TaxAmount().Equal(decimal.NewFromInt(36)))
	assert.True(t, it.LineAmount().Equal(decimal.NewFromInt(236)))
}

func TestNoteDetails_RecomputeTotal(t *testing.T) {
	d := domain.NoteDetails{
		TotalAmount: decimal.NewFromInt(999),
		Items: []domain.NoteItem{
			{Qty: decimal.NewNullDecimal(decimal.NewFromInt(2)), Rate: decimal.NewNullDecimal(decimal.NewFromInt(100)), Tax: decimal.NewNullDecimal(decimal.NewFromInt(18))},
			{Qty: decimal.NewNullDecimal(decimal.NewFromInt(1)), Rate: decimal.NewNullDecimal(decimal.NewFromInt(50))},
		},
	}

	d.RecomputeTotal()

	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(286)), "total was %s", d.TotalAmount)
}

func TestNoteType_Prefix(t *testing.T) {
	assert.Equal(t, "DBN", domain.Debit.Prefix())
	assert.Equal(t, "CRN", domain.Credit.Prefix())
	assert.Equal(t, "DBN", domain.NoteType("").Prefix())
}
