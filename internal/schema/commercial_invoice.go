package schema

// Commercial invoices are the densest document type: seven groups, so the
// orchestrator runs them sequentially to stay inside provider rate limits.
var commercialInvoiceGroups = []GroupSchema{
	{
		Name:    "basic_info",
		Version: 2,
		Fields: []Field{
			{Name: "invoice_number", Type: "string", Description: "The commercial invoice number.", Hint: "Usually near the top, labelled Invoice No or Inv No."},
			{Name: "invoice_date", Type: "string", Description: "The invoice issue date, exactly as written.", Hint: "Keep the original format, e.g. 01.01.2025 or 2025-01-01."},
			{Name: "currency", Type: "string", Description: "The invoice currency code.", Hint: "Three-letter code such as USD, EUR, INR."},
			{Name: "total_amount", Type: "number", Description: "The grand total invoice amount.", Hint: "Labelled Total, Grand Total, or Amount in figures."},
		},
		Shape:       `{"invoice_number": null, "invoice_date": null, "currency": null, "total_amount": null}`,
		MaxDocChars: 6000,
	},
	{
		Name:    "exporter",
		Version: 1,
		Fields: []Field{
			{Name: "name", Type: "string", Description: "The exporter/seller company name.", Hint: "Header block labelled Exporter, Shipper, or Seller."},
			{Name: "address", Type: "string", Description: "The exporter's full address as one string."},
			{Name: "country", Type: "string", Description: "The exporter's country."},
			{Name: "tax_id", Type: "string", Description: "The exporter's tax or registration identifier.", Hint: "GSTIN, IEC, VAT, or EORI number."},
		},
		Shape:       `{"name": null, "address": null, "country": null, "tax_id": null}`,
		MaxDocChars: 3000,
	},
	{
		Name:    "consignee",
		Version: 1,
		Fields: []Field{
			{Name: "name", Type: "string", Description: "The consignee/buyer company name.", Hint: "Block labelled Consignee, Buyer, or Bill To."},
			{Name: "address", Type: "string", Description: "The consignee's full address as one string."},
			{Name: "country", Type: "string", Description: "The consignee's country."},
			{Name: "tax_id", Type: "string", Description: "The consignee's tax or registration identifier."},
		},
		Shape:       `{"name": null, "address": null, "country": null, "tax_id": null}`,
		MaxDocChars: 3000,
	},
	{
		Name:    "items",
		Version: 2,
		Fields: []Field{
			{Name: "items", Type: "array", Description: "Every line item on the invoice, in document order.", Hint: "One entry per table row; amounts as plain numbers without currency symbols."},
		},
		Shape: `{"items": [{"description": null, "quantity": null, "unit": null, "unit_price": null, "total": null, "hs_code": null}]}`,
		// Item tables run long; this group gets the largest prefix.
		MaxDocChars: 12000,
	},
	{
		Name:    "bank",
		Version: 1,
		Fields: []Field{
			{Name: "bank_name", Type: "string", Description: "The beneficiary bank name.", Hint: "Often in a Bank Details or Remittance block near the bottom."},
			{Name: "account_number", Type: "string", Description: "The beneficiary account number."},
			{Name: "swift_code", Type: "string", Description: "The SWIFT/BIC code."},
			{Name: "iban", Type: "string", Description: "The IBAN, if present."},
		},
		Shape:       `{"bank_name": null, "account_number": null, "swift_code": null, "iban": null}`,
		MaxDocChars: 3000,
	},
	{
		Name:    "shipping",
		Version: 1,
		Fields: []Field{
			{Name: "port_of_loading", Type: "string", Description: "The port or airport of loading."},
			{Name: "port_of_discharge", Type: "string", Description: "The port or airport of discharge."},
			{Name: "country_of_origin", Type: "string", Description: "The country of origin of the goods."},
			{Name: "country_of_destination", Type: "string", Description: "The final destination country."},
			{Name: "vessel_or_flight", Type: "string", Description: "The vessel name or flight number, if stated."},
			{Name: "incoterms", Type: "string", Description: "The delivery terms code.", Hint: "FOB, CIF, EXW, DAP, and similar."},
		},
		Shape:       `{"port_of_loading": null, "port_of_discharge": null, "country_of_origin": null, "country_of_destination": null, "vessel_or_flight": null, "incoterms": null}`,
		MaxDocChars: 6000,
	},
	{
		Name:    "additional",
		Version: 2,
		Fields: []Field{
			{Name: "payment_terms", Type: "string", Description: "Payment terms as written.", Hint: "e.g. 30 days from BL date, advance TT."},
			{Name: "delivery_terms", Type: "string", Description: "Delivery terms if stated separately from incoterms."},
			{Name: "remarks", Type: "string", Description: "Any declaration or remarks paragraph."},
			{Name: "scomet_covered", Type: "boolean", Description: "Whether the goods are declared as covered under SCOMET.", Hint: "true only when the document explicitly says the items are SCOMET listed; null when not mentioned."},
			{Name: "signed", Type: "boolean", Description: "Whether the invoice carries a signature or authorised signatory block.", Hint: "true only when a signature is clearly indicated; null otherwise."},
		},
		Shape:       `{"payment_terms": null, "delivery_terms": null, "remarks": null, "scomet_covered": null, "signed": null}`,
		MaxDocChars: 8000,
	},
}
