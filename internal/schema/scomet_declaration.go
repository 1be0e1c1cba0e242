package schema

var scometDeclarationGroups = []GroupSchema{
	{
		Name:    "basic_info",
		Version: 1,
		Fields: []Field{
			{Name: "declaration_number", Type: "string", Description: "The declaration reference number."},
			{Name: "declaration_date", Type: "string", Description: "The declaration date, exactly as written."},
			{Name: "exporter_name", Type: "string", Description: "The exporting company name."},
			{Name: "consignee_name", Type: "string", Description: "The foreign consignee or end customer name."},
		},
		Shape:       `{"declaration_number": null, "declaration_date": null, "exporter_name": null, "consignee_name": null}`,
		MaxDocChars: 6000,
	},
	{
		Name:    "coverage",
		Version: 2,
		Fields: []Field{
			{Name: "item_description", Type: "string", Description: "Description of the goods being declared."},
			{Name: "scomet_category", Type: "string", Description: "The SCOMET category or entry number, if cited.", Hint: "e.g. Category 8A001."},
			{Name: "scomet_covered", Type: "boolean", Description: "Whether the declaration states the goods ARE covered under SCOMET.", Hint: "true only for an explicit positive statement; null when the document is silent or ambiguous."},
			{Name: "end_use", Type: "string", Description: "The declared end use of the goods."},
			{Name: "end_user_name", Type: "string", Description: "The declared end user name."},
			{Name: "end_user_country", Type: "string", Description: "The end user's country."},
		},
		Shape:       `{"item_description": null, "scomet_category": null, "scomet_covered": null, "end_use": null, "end_user_name": null, "end_user_country": null}`,
		MaxDocChars: 8000,
	},
	{
		Name:    "signature",
		Version: 1,
		Fields: []Field{
			{Name: "signatory_name", Type: "string", Description: "The name of the authorised signatory."},
			{Name: "signatory_designation", Type: "string", Description: "The signatory's designation or title."},
			{Name: "signed", Type: "boolean", Description: "Whether the declaration is signed.", Hint: "true only when a signature is clearly indicated; null otherwise."},
			{Name: "place_of_signing", Type: "string", Description: "The place where the declaration was signed."},
			{Name: "signing_date", Type: "string", Description: "The signing date, exactly as written."},
		},
		Shape:       `{"signatory_name": null, "signatory_designation": null, "signed": null, "place_of_signing": null, "signing_date": null}`,
		MaxDocChars: 3000,
	},
}
