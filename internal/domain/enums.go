package domain

// DocumentType identifies the kind of trade document being processed.
type DocumentType string

const (
	DocTypeCommercialInvoice     DocumentType = "commercial_invoice"
	DocTypeScometDeclaration     DocumentType = "scomet_declaration"
	DocTypePackingList           DocumentType = "packing_list"
	DocTypeFumigationCertificate DocumentType = "fumigation_certificate"
	DocTypeExportDeclaration     DocumentType = "export_declaration"
)

// AllDocumentTypes lists every supported document type in a stable order.
var AllDocumentTypes = []DocumentType{
	DocTypeCommercialInvoice,
	DocTypeScometDeclaration,
	DocTypePackingList,
	DocTypeFumigationCertificate,
	DocTypeExportDeclaration,
}

// ParseDocumentType converts a raw string into a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	dt := DocumentType(s)
	for _, known := range AllDocumentTypes {
		if dt == known {
			return dt, nil
		}
	}
	return "", ErrUnsupportedDocumentType
}

// ExtractionStatus represents the lifecycle of a document's extraction.
type ExtractionStatus string

const (
	ExtractionPending    ExtractionStatus = "pending"
	ExtractionProcessing ExtractionStatus = "processing"
	ExtractionCompleted  ExtractionStatus = "completed"
	ExtractionFailed     ExtractionStatus = "failed"
)

// UserRole defines the role hierarchy within an organization.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)
