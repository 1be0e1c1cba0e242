package extract

import (
	"fmt"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/llm"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

func applyPackingListGroup(rec *trade.PackingList, group, raw string) error {
	switch group {
	case "basic_info":
		var p struct {
			PackingListNumber FlexString `json:"packing_list_number"`
			Date              FlexString `json:"date"`
			InvoiceNumber     FlexString `json:"invoice_number"`
			ExporterName      FlexString `json:"exporter_name"`
			ConsigneeName     FlexString `json:"consignee_name"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.PackingListNumber = p.PackingListNumber.V
		rec.Date = p.Date.V
		rec.InvoiceNumber = p.InvoiceNumber.V
		rec.ExporterName = p.ExporterName.V
		rec.ConsigneeName = p.ConsigneeName.V

	case "packages":
		var p struct {
			Packages []struct {
				MarksAndNumbers FlexString `json:"marks_and_numbers"`
				Description     FlexString `json:"description"`
				Quantity        FlexFloat  `json:"quantity"`
				NetWeight       FlexFloat  `json:"net_weight"`
				GrossWeight     FlexFloat  `json:"gross_weight"`
			} `json:"packages"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		packages := make([]trade.PackageEntry, 0, len(p.Packages))
		for _, pk := range p.Packages {
			packages = append(packages, trade.PackageEntry{
				MarksAndNumbers: pk.MarksAndNumbers.V,
				Description:     pk.Description.V,
				Quantity:        pk.Quantity.V,
				NetWeight:       pk.NetWeight.V,
				GrossWeight:     pk.GrossWeight.V,
			})
		}
		rec.Packages = packages

	case "totals":
		var p struct {
			TotalPackages    FlexFloat  `json:"total_packages"`
			TotalNetWeight   FlexFloat  `json:"total_net_weight"`
			TotalGrossWeight FlexFloat  `json:"total_gross_weight"`
			WeightUnit       FlexString `json:"weight_unit"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.TotalPackages = p.TotalPackages.V
		rec.TotalNetWeight = p.TotalNetWeight.V
		rec.TotalGrossWeight = p.TotalGrossWeight.V
		rec.WeightUnit = p.WeightUnit.V

	default:
		return fmt.Errorf("unknown packing list field group %q", group)
	}
	return nil
}

// derivePackingList fills the totals from package rows when the totals group
// found none.
func derivePackingList(rec *trade.PackingList) {
	if len(rec.Packages) == 0 {
		return
	}
	if rec.TotalPackages == nil || *rec.TotalPackages == 0 {
		n := float64(len(rec.Packages))
		rec.TotalPackages = &n
	}
	if rec.TotalNetWeight == nil || *rec.TotalNetWeight == 0 {
		if sum, ok := sumWeights(rec.Packages, func(p trade.PackageEntry) *float64 { return p.NetWeight }); ok {
			rec.TotalNetWeight = &sum
		}
	}
	if rec.TotalGrossWeight == nil || *rec.TotalGrossWeight == 0 {
		if sum, ok := sumWeights(rec.Packages, func(p trade.PackageEntry) *float64 { return p.GrossWeight }); ok {
			rec.TotalGrossWeight = &sum
		}
	}
}

func sumWeights(packages []trade.PackageEntry, pick func(trade.PackageEntry) *float64) (float64, bool) {
	sum := 0.0
	counted := 0
	for _, p := range packages {
		if w := pick(p); w != nil {
			sum += *w
			counted++
		}
	}
	if counted == 0 {
		return 0, false
	}
	return round2(sum), true
}
