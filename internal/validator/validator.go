// Package validator scores assembled extraction records. Validation is a
// pure function: it never returns an error and never panics, and internal
// extraction failures arrive here only as nil fields.
package validator

import (
	"fmt"
	"math"
	"strings"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

// amountTolerance is the allowed drift, in currency units, between a declared
// total and a sum computed from its parts before a warning is raised.
const amountTolerance = 1.0

// Result is the terminal outcome of validating one extracted record.
// Invariant: IsValid == (len(Errors) == 0).
type Result struct {
	IsValid      bool        `json:"is_valid"`
	Errors       []string    `json:"errors"`
	Warnings     []string    `json:"warnings"`
	Completeness int         `json:"completeness"`
	Data         interface{} `json:"data"`
}

// check is one field probe with its failure message.
type check struct {
	ok      bool
	message string
}

// Validate applies the document-type rule set to a record. A record of the
// wrong type yields an invalid result, not a panic.
func Validate(docType domain.DocumentType, record interface{}) *Result {
	switch docType {
	case domain.DocTypeCommercialInvoice:
		if rec, ok := record.(*trade.CommercialInvoice); ok {
			return validateCommercialInvoice(rec)
		}
	case domain.DocTypeScometDeclaration:
		if rec, ok := record.(*trade.ScometDeclaration); ok {
			return validateScometDeclaration(rec)
		}
	case domain.DocTypePackingList:
		if rec, ok := record.(*trade.PackingList); ok {
			return validatePackingList(rec)
		}
	case domain.DocTypeFumigationCertificate:
		if rec, ok := record.(*trade.FumigationCertificate); ok {
			return validateFumigationCertificate(rec)
		}
	case domain.DocTypeExportDeclaration:
		if rec, ok := record.(*trade.ExportDeclaration); ok {
			return validateExportDeclaration(rec)
		}
	default:
		return &Result{
			IsValid:  false,
			Errors:   []string{fmt.Sprintf("unsupported document type %q", docType)},
			Warnings: []string{},
			Data:     record,
		}
	}
	return &Result{
		IsValid:  false,
		Errors:   []string{fmt.Sprintf("record does not match document type %q", docType)},
		Warnings: []string{},
		Data:     record,
	}
}

// assemble turns the per-type rule evaluations into a Result. The checklist
// is the fixed completeness probe list for the document type; it must not
// change between runs or stored scores stop being comparable.
func assemble(data interface{}, required, recommended []check, crossWarnings []string, checklist []bool) *Result {
	errs := []string{}
	for _, c := range required {
		if !c.ok {
			errs = append(errs, c.message)
		}
	}

	warnings := []string{}
	for _, c := range recommended {
		if !c.ok {
			warnings = append(warnings, c.message)
		}
	}
	warnings = append(warnings, crossWarnings...)

	truthy := 0
	for _, ok := range checklist {
		if ok {
			truthy++
		}
	}
	completeness := 0
	if len(checklist) > 0 {
		completeness = int(math.Round(100 * float64(truthy) / float64(len(checklist))))
	}

	return &Result{
		IsValid:      len(errs) == 0,
		Errors:       errs,
		Warnings:     warnings,
		Completeness: completeness,
		Data:         data,
	}
}

func hasStr(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func hasNum(f *float64) bool {
	return f != nil && *f != 0
}

func hasBool(b *bool) bool {
	return b != nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
