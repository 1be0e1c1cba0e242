package validator

import (
	"fmt"
	"math"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

func validatePackingList(pl *trade.PackingList) *Result {
	required := []check{
		{hasStr(pl.PackingListNumber), "Packing list number is missing"},
		{hasStr(pl.ExporterName), "Exporter name is missing"},
		{len(pl.Packages) > 0, "Packing list has no package entries"},
		{hasNum(pl.TotalGrossWeight), "Total gross weight is missing"},
	}

	recommended := []check{
		{hasStr(pl.Date), "Date is missing"},
		{hasStr(pl.InvoiceNumber), "Related invoice number is missing"},
		{hasStr(pl.ConsigneeName), "Consignee name is missing"},
		{hasNum(pl.TotalNetWeight), "Total net weight is missing"},
		{hasNum(pl.TotalPackages), "Total package count is missing"},
		{hasStr(pl.WeightUnit), "Weight unit is missing"},
	}

	var crossWarnings []string
	if hasNum(pl.TotalGrossWeight) && len(pl.Packages) > 0 {
		sum := 0.0
		counted := 0
		for _, p := range pl.Packages {
			if p.GrossWeight != nil {
				sum += *p.GrossWeight
				counted++
			}
		}
		if counted > 0 {
			sum = round2(sum)
			if math.Abs(sum-*pl.TotalGrossWeight) > amountTolerance {
				crossWarnings = append(crossWarnings, fmt.Sprintf(
					"Package gross weights (%.2f) do not match the declared total gross weight (%.2f)",
					sum, *pl.TotalGrossWeight))
			}
		}
	}

	checklist := []bool{
		hasStr(pl.PackingListNumber),
		hasStr(pl.Date),
		hasStr(pl.InvoiceNumber),
		hasStr(pl.ExporterName),
		hasStr(pl.ConsigneeName),
		len(pl.Packages) > 0,
		hasNum(pl.TotalPackages),
		hasNum(pl.TotalNetWeight),
		hasNum(pl.TotalGrossWeight),
		hasStr(pl.WeightUnit),
	}

	return assemble(pl, required, recommended, crossWarnings, checklist)
}
