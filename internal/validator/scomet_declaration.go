package validator

import (
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

func validateScometDeclaration(dec *trade.ScometDeclaration) *Result {
	required := []check{
		{hasStr(dec.ExporterName), "Exporter name is missing"},
		{hasStr(dec.ItemDescription), "Item description is missing"},
		// A nil coverage flag means the document never took a position; that
		// blocks validity rather than defaulting to "not covered".
		{hasBool(dec.ScometCovered), "SCOMET coverage status not specified"},
		{hasStr(dec.EndUserCountry), "End user country is missing"},
	}

	recommended := []check{
		{hasStr(dec.DeclarationNumber), "Declaration number is missing"},
		{hasStr(dec.DeclarationDate), "Declaration date is missing"},
		{hasStr(dec.ConsigneeName), "Consignee name is missing"},
		{hasStr(dec.EndUse), "End use is missing"},
		{hasStr(dec.EndUserName), "End user name is missing"},
		{hasStr(dec.SignatoryName), "Signatory name is missing"},
		{hasBool(dec.Signed), "Signature status is missing"},
	}

	var crossWarnings []string
	if dec.ScometCovered != nil && *dec.ScometCovered && !hasStr(dec.ScometCategory) {
		crossWarnings = append(crossWarnings,
			"Goods declared as SCOMET covered but no SCOMET category is cited")
	}

	checklist := []bool{
		hasStr(dec.DeclarationNumber),
		hasStr(dec.DeclarationDate),
		hasStr(dec.ExporterName),
		hasStr(dec.ConsigneeName),
		hasStr(dec.ItemDescription),
		hasStr(dec.ScometCategory),
		hasBool(dec.ScometCovered),
		hasStr(dec.EndUse),
		hasStr(dec.EndUserName),
		hasStr(dec.EndUserCountry),
		hasStr(dec.SignatoryName),
		hasStr(dec.SignatoryDesignation),
		hasBool(dec.Signed),
		hasStr(dec.PlaceOfSigning),
		hasStr(dec.SigningDate),
	}

	return assemble(dec, required, recommended, crossWarnings, checklist)
}
