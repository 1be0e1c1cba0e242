// Package trade defines the canonical extracted-record types for each
// supported document type. Every field is a pointer: nil means the value was
// not found (or could not be decoded), which the validation engine treats
// differently from a present-but-empty value.
package trade

// Party is a named company on a trade document.
type Party struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Country *string `json:"country"`
	TaxID   *string `json:"tax_id"`
}

// LineItem is one invoice line.
type LineItem struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	UnitPrice   *float64 `json:"unit_price"`
	Total       *float64 `json:"total"`
	HSCode      *string  `json:"hs_code"`
}

// BankDetails holds remittance information.
type BankDetails struct {
	BankName      *string `json:"bank_name"`
	AccountNumber *string `json:"account_number"`
	SwiftCode     *string `json:"swift_code"`
	IBAN          *string `json:"iban"`
}

// Shipping holds routing details.
type Shipping struct {
	PortOfLoading        *string `json:"port_of_loading"`
	PortOfDischarge      *string `json:"port_of_discharge"`
	CountryOfOrigin      *string `json:"country_of_origin"`
	CountryOfDestination *string `json:"country_of_destination"`
	VesselOrFlight       *string `json:"vessel_or_flight"`
	Incoterms            *string `json:"incoterms"`
}

// CommercialInvoice is the canonical record for a commercial invoice.
type CommercialInvoice struct {
	InvoiceNumber *string  `json:"invoice_number"`
	InvoiceDate   *string  `json:"invoice_date"`
	Currency      *string  `json:"currency"`
	TotalAmount   *float64 `json:"total_amount"`

	Exporter  Party `json:"exporter"`
	Consignee Party `json:"consignee"`

	Items []LineItem `json:"items"`

	Bank     BankDetails `json:"bank"`
	Shipping Shipping    `json:"shipping"`

	PaymentTerms  *string `json:"payment_terms"`
	DeliveryTerms *string `json:"delivery_terms"`
	Remarks       *string `json:"remarks"`
	ScometCovered *bool   `json:"scomet_covered"`
	Signed        *bool   `json:"signed"`
}

// ScometDeclaration is the canonical record for a SCOMET declaration.
type ScometDeclaration struct {
	DeclarationNumber *string `json:"declaration_number"`
	DeclarationDate   *string `json:"declaration_date"`
	ExporterName      *string `json:"exporter_name"`
	ConsigneeName     *string `json:"consignee_name"`

	ItemDescription *string `json:"item_description"`
	ScometCategory  *string `json:"scomet_category"`
	ScometCovered   *bool   `json:"scomet_covered"`
	EndUse          *string `json:"end_use"`
	EndUserName     *string `json:"end_user_name"`
	EndUserCountry  *string `json:"end_user_country"`

	SignatoryName        *string `json:"signatory_name"`
	SignatoryDesignation *string `json:"signatory_designation"`
	Signed               *bool   `json:"signed"`
	PlaceOfSigning       *string `json:"place_of_signing"`
	SigningDate          *string `json:"signing_date"`
}

// PackageEntry is one row of a packing list.
type PackageEntry struct {
	MarksAndNumbers *string  `json:"marks_and_numbers"`
	Description     *string  `json:"description"`
	Quantity        *float64 `json:"quantity"`
	NetWeight       *float64 `json:"net_weight"`
	GrossWeight     *float64 `json:"gross_weight"`
}

// PackingList is the canonical record for a packing list.
type PackingList struct {
	PackingListNumber *string `json:"packing_list_number"`
	Date              *string `json:"date"`
	InvoiceNumber     *string `json:"invoice_number"`
	ExporterName      *string `json:"exporter_name"`
	ConsigneeName     *string `json:"consignee_name"`

	Packages []PackageEntry `json:"packages"`

	TotalPackages    *float64 `json:"total_packages"`
	TotalNetWeight   *float64 `json:"total_net_weight"`
	TotalGrossWeight *float64 `json:"total_gross_weight"`
	WeightUnit       *string  `json:"weight_unit"`
}

// FumigationCertificate is the canonical record for a fumigation certificate.
type FumigationCertificate struct {
	CertificateNumber *string `json:"certificate_number"`
	IssueDate         *string `json:"issue_date"`
	OperatorName      *string `json:"operator_name"`

	TreatmentDate    *string  `json:"treatment_date"`
	Fumigant         *string  `json:"fumigant"`
	Dosage           *string  `json:"dosage"`
	DurationHours    *float64 `json:"duration_hours"`
	Temperature      *string  `json:"temperature"`
	ContainerNumber  *string  `json:"container_number"`
	CargoDescription *string  `json:"cargo_description"`

	PortOfLoading *string `json:"port_of_loading"`
	Destination   *string `json:"destination"`
	Signed        *bool   `json:"signed"`
}

// ExportDeclaration is the canonical record for an export declaration.
type ExportDeclaration struct {
	DeclarationNumber *string `json:"declaration_number"`
	DeclarationDate   *string `json:"declaration_date"`
	ExporterName      *string `json:"exporter_name"`
	ExporterIEC       *string `json:"exporter_iec"`
	ConsigneeName     *string `json:"consignee_name"`
	InvoiceNumber     *string `json:"invoice_number"`
	Currency          *string `json:"currency"`

	PortOfLoading        *string  `json:"port_of_loading"`
	PortOfDischarge      *string  `json:"port_of_discharge"`
	CountryOfDestination *string  `json:"country_of_destination"`
	GoodsDescription     *string  `json:"goods_description"`
	HSCode               *string  `json:"hs_code"`
	NetWeight            *float64 `json:"net_weight"`
	GrossWeight          *float64 `json:"gross_weight"`

	FOBValue       *float64 `json:"fob_value"`
	FreightValue   *float64 `json:"freight_value"`
	InsuranceValue *float64 `json:"insurance_value"`
	TotalValue     *float64 `json:"total_value"`
}
