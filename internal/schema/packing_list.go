package schema

var packingListGroups = []GroupSchema{
	{
		Name:    "basic_info",
		Version: 1,
		Fields: []Field{
			{Name: "packing_list_number", Type: "string", Description: "The packing list number."},
			{Name: "date", Type: "string", Description: "The packing list date, exactly as written."},
			{Name: "invoice_number", Type: "string", Description: "The related commercial invoice number, if referenced."},
			{Name: "exporter_name", Type: "string", Description: "The exporter/shipper company name."},
			{Name: "consignee_name", Type: "string", Description: "The consignee company name."},
		},
		Shape:       `{"packing_list_number": null, "date": null, "invoice_number": null, "exporter_name": null, "consignee_name": null}`,
		MaxDocChars: 6000,
	},
	{
		Name:    "packages",
		Version: 1,
		Fields: []Field{
			{Name: "packages", Type: "array", Description: "Every package row, in document order.", Hint: "Weights as plain numbers without units."},
		},
		Shape:       `{"packages": [{"marks_and_numbers": null, "description": null, "quantity": null, "net_weight": null, "gross_weight": null}]}`,
		MaxDocChars: 12000,
	},
	{
		Name:    "totals",
		Version: 1,
		Fields: []Field{
			{Name: "total_packages", Type: "number", Description: "The total number of packages."},
			{Name: "total_net_weight", Type: "number", Description: "The total net weight."},
			{Name: "total_gross_weight", Type: "number", Description: "The total gross weight."},
			{Name: "weight_unit", Type: "string", Description: "The unit the weights are expressed in.", Hint: "Usually KGS or LBS."},
		},
		Shape:       `{"total_packages": null, "total_net_weight": null, "total_gross_weight": null, "weight_unit": null}`,
		MaxDocChars: 3000,
	},
}
