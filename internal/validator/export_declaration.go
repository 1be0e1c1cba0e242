package validator

import (
	"fmt"
	"math"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

func validateExportDeclaration(ed *trade.ExportDeclaration) *Result {
	required := []check{
		{hasStr(ed.DeclarationNumber), "Declaration number is missing"},
		{hasStr(ed.DeclarationDate), "Declaration date is missing"},
		{hasStr(ed.ExporterName), "Exporter name is missing"},
		{hasStr(ed.GoodsDescription), "Goods description is missing"},
		{hasNum(ed.FOBValue), "FOB value is missing"},
	}

	recommended := []check{
		{hasStr(ed.ExporterIEC), "Exporter IEC is missing"},
		{hasStr(ed.ConsigneeName), "Consignee name is missing"},
		{hasStr(ed.InvoiceNumber), "Related invoice number is missing"},
		{hasStr(ed.Currency), "Currency is missing"},
		{hasStr(ed.HSCode), "HS code is missing"},
		{hasStr(ed.PortOfLoading), "Port of loading is missing"},
		{hasStr(ed.CountryOfDestination), "Country of destination is missing"},
		{hasNum(ed.GrossWeight), "Gross weight is missing"},
	}

	var crossWarnings []string
	if hasNum(ed.TotalValue) && hasNum(ed.FOBValue) {
		sum := *ed.FOBValue
		if ed.FreightValue != nil {
			sum += *ed.FreightValue
		}
		if ed.InsuranceValue != nil {
			sum += *ed.InsuranceValue
		}
		sum = round2(sum)
		if math.Abs(sum-*ed.TotalValue) > amountTolerance {
			crossWarnings = append(crossWarnings, fmt.Sprintf(
				"FOB + freight + insurance (%.2f) does not match the declared total value (%.2f)",
				sum, *ed.TotalValue))
		}
	}

	checklist := []bool{
		hasStr(ed.DeclarationNumber),
		hasStr(ed.DeclarationDate),
		hasStr(ed.ExporterName),
		hasStr(ed.ExporterIEC),
		hasStr(ed.ConsigneeName),
		hasStr(ed.InvoiceNumber),
		hasStr(ed.Currency),
		hasStr(ed.PortOfLoading),
		hasStr(ed.PortOfDischarge),
		hasStr(ed.CountryOfDestination),
		hasStr(ed.GoodsDescription),
		hasStr(ed.HSCode),
		hasNum(ed.NetWeight),
		hasNum(ed.GrossWeight),
		hasNum(ed.FOBValue),
		hasNum(ed.TotalValue),
	}

	return assemble(ed, required, recommended, crossWarnings, checklist)
}
