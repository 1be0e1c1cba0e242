package schema

import (
	"fmt"
	"strings"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
)

// SystemPrompt is the instruction sent with every field-group extraction call.
const SystemPrompt = "You are a precise trade-document data extraction engine. " +
	"Extract values exactly as written in the document. " +
	"Return ONLY JSON, with no explanations and no markdown."

// Field describes one extractable field inside a group.
type Field struct {
	Name        string
	Type        string // string | number | boolean | array
	Description string
	Hint        string // location or canonicalization hint, optional
}

// GroupSchema is a named, versioned description of one field group. Schemas
// are statically defined and never mutated at runtime; the version bumps
// whenever a field list or shape changes so stored results stay comparable.
type GroupSchema struct {
	Name        string
	Version     int
	Fields      []Field
	Shape       string // literal JSON shape embedded in the prompt
	MaxDocChars int    // bounded document prefix sent with this group
}

// Prompt renders the group schema into extraction instructions. All groups go
// through this one routine so schema correctness is testable independently of
// prompt wording.
func (g *GroupSchema) Prompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extract the %q field group (schema v%d) from the document text.\n\n", g.Name, g.Version)
	b.WriteString("Fields:\n")
	for _, f := range g.Fields {
		fmt.Fprintf(&b, "- %s (%s): %s", f.Name, f.Type, f.Description)
		if f.Hint != "" {
			fmt.Fprintf(&b, " Hint: %s", f.Hint)
		}
		b.WriteByte('\n')
	}
	b.WriteString("\nReturn ONLY a JSON object with exactly this shape, using null for any value not found in the document:\n")
	b.WriteString(g.Shape)
	return b.String()
}

// DocPrefix returns the bounded document prefix for this group. The whole
// document is never guaranteed to fit; callers accept partial-text
// extraction as a known limitation.
func (g *GroupSchema) DocPrefix(text string) string {
	if g.MaxDocChars > 0 && len(text) > g.MaxDocChars {
		return text[:g.MaxDocChars]
	}
	return text
}

// GroupsFor returns the fixed, ordered group set for a document type.
func GroupsFor(dt domain.DocumentType) []GroupSchema {
	switch dt {
	case domain.DocTypeCommercialInvoice:
		return commercialInvoiceGroups
	case domain.DocTypeScometDeclaration:
		return scometDeclarationGroups
	case domain.DocTypePackingList:
		return packingListGroups
	case domain.DocTypeFumigationCertificate:
		return fumigationCertificateGroups
	case domain.DocTypeExportDeclaration:
		return exportDeclarationGroups
	default:
		return nil
	}
}
