package schema

var fumigationCertificateGroups = []GroupSchema{
	{
		Name:    "basic_info",
		Version: 1,
		Fields: []Field{
			{Name: "certificate_number", Type: "string", Description: "The certificate number."},
			{Name: "issue_date", Type: "string", Description: "The certificate issue date, exactly as written."},
			{Name: "operator_name", Type: "string", Description: "The fumigation operator or treatment company name."},
		},
		Shape:       `{"certificate_number": null, "issue_date": null, "operator_name": null}`,
		MaxDocChars: 6000,
	},
	{
		Name:    "treatment",
		Version: 1,
		Fields: []Field{
			{Name: "treatment_date", Type: "string", Description: "The date the treatment was performed."},
			{Name: "fumigant", Type: "string", Description: "The fumigant used.", Hint: "e.g. Methyl Bromide, Aluminium Phosphide."},
			{Name: "dosage", Type: "string", Description: "The dosage rate as written, including units."},
			{Name: "duration_hours", Type: "number", Description: "The exposure duration in hours."},
			{Name: "temperature", Type: "string", Description: "The minimum temperature during treatment, as written."},
			{Name: "container_number", Type: "string", Description: "The container number, if treated in a container."},
			{Name: "cargo_description", Type: "string", Description: "Description of the treated cargo."},
		},
		Shape:       `{"treatment_date": null, "fumigant": null, "dosage": null, "duration_hours": null, "temperature": null, "container_number": null, "cargo_description": null}`,
		MaxDocChars: 8000,
	},
	{
		Name:    "certification",
		Version: 1,
		Fields: []Field{
			{Name: "port_of_loading", Type: "string", Description: "The port of loading, if stated."},
			{Name: "destination", Type: "string", Description: "The destination port or country."},
			{Name: "signed", Type: "boolean", Description: "Whether the certificate is signed.", Hint: "true only when a signature is clearly indicated; null otherwise."},
		},
		Shape:       `{"port_of_loading": null, "destination": null, "signed": null}`,
		MaxDocChars: 3000,
	},
}
