package extract

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/llm"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

// fakeModel serves canned responses keyed by field-group name. The group name
// is recovered from the rendered instructions.
type fakeModel struct {
	mu        sync.Mutex
	responses map[string]string
	errors    map[string]error
	calls     []string
}

func (f *fakeModel) Generate(_ context.Context, req port.GenerateRequest) (string, error) {
	group := groupNameFrom(req.Instructions)
	f.mu.Lock()
	f.calls = append(f.calls, group)
	f.mu.Unlock()

	if err, ok := f.errors[group]; ok {
		return "", err
	}
	if resp, ok := f.responses[group]; ok {
		return resp, nil
	}
	return "{}", nil
}

func groupNameFrom(instructions string) string {
	start := strings.IndexByte(instructions, '"')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(instructions[start+1:], '"')
	if end < 0 {
		return ""
	}
	return instructions[start+1 : start+1+end]
}

func newOrchestrator(model port.ModelClient, policy string) *Orchestrator {
	return NewOrchestrator(model, &config.ExtractConfig{Policy: policy})
}

func completeInvoiceResponses() map[string]string {
	return map[string]string{
		"basic_info": `{"invoice_number": "INV-2024-001", "invoice_date": "2024-03-15", "currency": "USD", "total_amount": null}`,
		"exporter":   `{"name": "Acme Exports Pvt Ltd", "address": "Mumbai", "country": "India", "tax_id": "GSTIN123"}`,
		"consignee":  `{"name": "Globex GmbH", "address": "Hamburg", "country": "Germany", "tax_id": null}`,
		"items": `{"items": [
			{"description": "Steel bolts", "quantity": 100, "unit": "pcs", "unit_price": 1.2, "total": 120, "hs_code": "7318.15"},
			{"description": "Steel nuts", "quantity": 200, "unit": "pcs", "unit_price": 0.4, "total": 80, "hs_code": "7318.16"}
		]}`,
		"bank":       `{"bank_name": "HDFC Bank", "account_number": "001122334455", "swift_code": "HDFCINBB", "iban": null}`,
		"shipping":   `{"port_of_loading": "Nhava Sheva", "port_of_discharge": "Hamburg", "country_of_origin": "India", "country_of_destination": "Germany", "vessel_or_flight": null, "incoterms": "FOB"}`,
		"additional": `{"payment_terms": "30 days", "delivery_terms": null, "remarks": null, "scomet_covered": false, "signed": "true"}`,
	}
}

func TestExtractAndValidate_CompleteInvoice(t *testing.T) {
	model := &fakeModel{responses: completeInvoiceResponses()}
	o := newOrchestrator(model, "auto")

	result := o.ExtractAndValidate(context.Background(), domain.DocTypeCommercialInvoice, "INVOICE ...")
	require.NotNil(t, result)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, result.IsValid, len(result.Errors) == 0)

	rec, ok := result.Data.(*trade.CommercialInvoice)
	require.True(t, ok)
	require.NotNil(t, rec.TotalAmount)
	assert.Equal(t, 200.0, *rec.TotalAmount, "total derived from line items")
	require.Len(t, rec.Items, 2)
	require.NotNil(t, rec.Signed)
	assert.True(t, *rec.Signed, `"true" canonicalizes to true`)
	assert.Nil(t, rec.ScometCovered, "false stays nil, never false")

	// Invoice groups run sequentially under the auto policy: one call per group.
	assert.Len(t, model.calls, 7)
}

func TestExtractAndValidate_GroupExhaustionBecomesWarning(t *testing.T) {
	model := &fakeModel{
		responses: completeInvoiceResponses(),
		errors: map[string]error{
			"items": &llm.ModelError{Kind: llm.ErrKindExhausted, Attempts: 4, Err: fmt.Errorf("rate limited")},
		},
	}
	o := newOrchestrator(model, "auto")

	result := o.ExtractAndValidate(context.Background(), domain.DocTypeCommercialInvoice, "INVOICE ...")
	require.NotNil(t, result)

	assert.Contains(t, result.Warnings, "Could not extract items fields")
	// Items are required, so the record is invalid, but the other groups survive.
	assert.False(t, result.IsValid)
	rec := result.Data.(*trade.CommercialInvoice)
	require.NotNil(t, rec.Exporter.Name)
	assert.Equal(t, "Acme Exports Pvt Ltd", *rec.Exporter.Name)
}

func TestExtractAndValidate_DecodeFailureBecomesWarning(t *testing.T) {
	responses := completeInvoiceResponses()
	responses["bank"] = "I could not find any banking details in this document."
	model := &fakeModel{responses: responses}
	o := newOrchestrator(model, "auto")

	result := o.ExtractAndValidate(context.Background(), domain.DocTypeCommercialInvoice, "INVOICE ...")
	require.NotNil(t, result)

	assert.Contains(t, result.Warnings, "Could not decode bank fields")
	assert.True(t, result.IsValid, "bank details are recommended, not required")
}

func TestExtractAndValidate_ScometCoverageUnspecifiedBlocks(t *testing.T) {
	model := &fakeModel{responses: map[string]string{
		"basic_info": `{"declaration_number": "SCO-77", "declaration_date": "2024-02-01", "exporter_name": "Acme Exports Pvt Ltd", "consignee_name": "Globex GmbH"}`,
		"coverage":   `{"item_description": "Industrial valves", "scomet_category": null, "scomet_covered": null, "end_use": "Manufacturing", "end_user_name": "Globex", "end_user_country": "Germany"}`,
		"signature":  `{"signatory_name": "R. Sharma", "signatory_designation": "Director", "signed": true, "place_of_signing": "Mumbai", "signing_date": "2024-02-01"}`,
	}}
	o := newOrchestrator(model, "auto")

	result := o.ExtractAndValidate(context.Background(), domain.DocTypeScometDeclaration, "DECLARATION ...")
	require.NotNil(t, result)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "SCOMET coverage status not specified")
}

type panickingModel struct{}

func (panickingModel) Generate(context.Context, port.GenerateRequest) (string, error) {
	panic("model client blew up")
}

func TestExtractAndValidate_PanicBecomesGroupWarnings(t *testing.T) {
	o := newOrchestrator(panickingModel{}, "sequential")

	result := o.ExtractAndValidate(context.Background(), domain.DocTypePackingList, "PACKING LIST ...")
	require.NotNil(t, result)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Warnings, "Could not extract basic_info fields")
	assert.Contains(t, result.Warnings, "Could not extract packages fields")
	assert.Contains(t, result.Warnings, "Could not extract totals fields")
	assert.NotNil(t, result.Data, "empty record is still returned")
}

func TestExtractAndValidate_ConcurrentPanicStaysContained(t *testing.T) {
	o := newOrchestrator(panickingModel{}, "concurrent")

	result := o.ExtractAndValidate(context.Background(), domain.DocTypeCommercialInvoice, "INVOICE ...")
	require.NotNil(t, result)

	assert.False(t, result.IsValid)
	failed := 0
	for _, w := range result.Warnings {
		if strings.HasPrefix(w, "Could not extract") {
			failed++
		}
	}
	assert.Equal(t, 7, failed, "every group's panic is contained as its own warning")
	assert.NotNil(t, result.Data)
}

func TestExtractAndValidate_UnsupportedType(t *testing.T) {
	o := newOrchestrator(&fakeModel{}, "auto")

	result := o.ExtractAndValidate(context.Background(), domain.DocumentType("bill_of_lading"), "...")
	require.NotNil(t, result)
	assert.False(t, result.IsValid)
	require.NotEmpty(t, result.Errors)
}

func TestConcurrentFor_PolicyOverrides(t *testing.T) {
	auto := newOrchestrator(&fakeModel{}, "auto")
	assert.False(t, auto.concurrentFor(domain.DocTypeCommercialInvoice))
	assert.True(t, auto.concurrentFor(domain.DocTypePackingList))
	assert.True(t, auto.concurrentFor(domain.DocTypeScometDeclaration))

	seq := newOrchestrator(&fakeModel{}, "sequential")
	assert.False(t, seq.concurrentFor(domain.DocTypePackingList))

	conc := newOrchestrator(&fakeModel{}, "concurrent")
	assert.True(t, conc.concurrentFor(domain.DocTypeCommercialInvoice))
}

func TestApplyOrderDoesNotChangeRecord(t *testing.T) {
	responses := completeInvoiceResponses()
	order1 := []string{"basic_info", "exporter", "consignee", "items", "bank", "shipping", "additional"}
	order2 := []string{"additional", "shipping", "bank", "items", "consignee", "exporter", "basic_info"}

	build := func(order []string) *trade.CommercialInvoice {
		rec := &trade.CommercialInvoice{}
		for _, g := range order {
			require.NoError(t, applyCommercialInvoiceGroup(rec, g, responses[g]))
		}
		deriveCommercialInvoice(rec)
		return rec
	}

	assert.Equal(t, build(order1), build(order2))
}

func TestExtractAndValidate_ConcurrentRunCoversAllGroups(t *testing.T) {
	model := &fakeModel{responses: completeInvoiceResponses()}
	o := newOrchestrator(model, "concurrent")

	result := o.ExtractAndValidate(context.Background(), domain.DocTypeCommercialInvoice, "INVOICE ...")
	require.NotNil(t, result)
	assert.True(t, result.IsValid)
	assert.Len(t, model.calls, 7)
}
