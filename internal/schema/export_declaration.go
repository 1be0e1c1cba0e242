package schema

var exportDeclarationGroups = []GroupSchema{
	{
		Name:    "basic_info",
		Version: 1,
		Fields: []Field{
			{Name: "declaration_number", Type: "string", Description: "The shipping bill or declaration number."},
			{Name: "declaration_date", Type: "string", Description: "The declaration date, exactly as written."},
			{Name: "exporter_name", Type: "string", Description: "The exporter company name."},
			{Name: "exporter_iec", Type: "string", Description: "The exporter's IEC (importer-exporter code), if stated."},
			{Name: "consignee_name", Type: "string", Description: "The consignee company name."},
			{Name: "invoice_number", Type: "string", Description: "The related commercial invoice number."},
			{Name: "currency", Type: "string", Description: "The declared currency code."},
		},
		Shape:       `{"declaration_number": null, "declaration_date": null, "exporter_name": null, "exporter_iec": null, "consignee_name": null, "invoice_number": null, "currency": null}`,
		MaxDocChars: 6000,
	},
	{
		Name:    "shipment",
		Version: 1,
		Fields: []Field{
			{Name: "port_of_loading", Type: "string", Description: "The port of loading."},
			{Name: "port_of_discharge", Type: "string", Description: "The port of discharge."},
			{Name: "country_of_destination", Type: "string", Description: "The final destination country."},
			{Name: "goods_description", Type: "string", Description: "Description of the exported goods."},
			{Name: "hs_code", Type: "string", Description: "The HS/RITC classification code."},
			{Name: "net_weight", Type: "number", Description: "The net weight as a plain number."},
			{Name: "gross_weight", Type: "number", Description: "The gross weight as a plain number."},
		},
		Shape:       `{"port_of_loading": null, "port_of_discharge": null, "country_of_destination": null, "goods_description": null, "hs_code": null, "net_weight": null, "gross_weight": null}`,
		MaxDocChars: 8000,
	},
	{
		Name:    "customs",
		Version: 1,
		Fields: []Field{
			{Name: "fob_value", Type: "number", Description: "The declared FOB value."},
			{Name: "freight_value", Type: "number", Description: "The declared freight value, if stated."},
			{Name: "insurance_value", Type: "number", Description: "The declared insurance value, if stated."},
			{Name: "total_value", Type: "number", Description: "The total declared value."},
		},
		Shape:       `{"fob_value": null, "freight_value": null, "insurance_value": null, "total_value": null}`,
		MaxDocChars: 6000,
	},
}
