package extract

import (
	"fmt"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/llm"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

func applyExportDeclarationGroup(rec *trade.ExportDeclaration, group, raw string) error {
	switch group {
	case "basic_info":
		var p struct {
			DeclarationNumber FlexString `json:"declaration_number"`
			DeclarationDate   FlexString `json:"declaration_date"`
			ExporterName      FlexString `json:"exporter_name"`
			ExporterIEC       FlexString `json:"exporter_iec"`
			ConsigneeName     FlexString `json:"consignee_name"`
			InvoiceNumber     FlexString `json:"invoice_number"`
			Currency          FlexString `json:"currency"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.DeclarationNumber = p.DeclarationNumber.V
		rec.DeclarationDate = p.DeclarationDate.V
		rec.ExporterName = p.ExporterName.V
		rec.ExporterIEC = p.ExporterIEC.V
		rec.ConsigneeName = p.ConsigneeName.V
		rec.InvoiceNumber = p.InvoiceNumber.V
		rec.Currency = p.Currency.V

	case "shipment":
		var p struct {
			PortOfLoading        FlexString `json:"port_of_loading"`
			PortOfDischarge      FlexString `json:"port_of_discharge"`
			CountryOfDestination FlexString `json:"country_of_destination"`
			GoodsDescription     FlexString `json:"goods_description"`
			HSCode               FlexString `json:"hs_code"`
			NetWeight            FlexFloat  `json:"net_weight"`
			GrossWeight          FlexFloat  `json:"gross_weight"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.PortOfLoading = p.PortOfLoading.V
		rec.PortOfDischarge = p.PortOfDischarge.V
		rec.CountryOfDestination = p.CountryOfDestination.V
		rec.GoodsDescription = p.GoodsDescription.V
		rec.HSCode = p.HSCode.V
		rec.NetWeight = p.NetWeight.V
		rec.GrossWeight = p.GrossWeight.V

	case "customs":
		var p struct {
			FOBValue       FlexFloat `json:"fob_value"`
			FreightValue   FlexFloat `json:"freight_value"`
			InsuranceValue FlexFloat `json:"insurance_value"`
			TotalValue     FlexFloat `json:"total_value"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.FOBValue = p.FOBValue.V
		rec.FreightValue = p.FreightValue.V
		rec.InsuranceValue = p.InsuranceValue.V
		rec.TotalValue = p.TotalValue.V

	default:
		return fmt.Errorf("unknown export declaration field group %q", group)
	}
	return nil
}

// deriveExportDeclaration fills the total value from its components when the
// model found none.
func deriveExportDeclaration(rec *trade.ExportDeclaration) {
	if rec.TotalValue != nil && *rec.TotalValue != 0 {
		return
	}
	if rec.FOBValue == nil {
		return
	}
	sum := *rec.FOBValue
	if rec.FreightValue != nil {
		sum += *rec.FreightValue
	}
	if rec.InsuranceValue != nil {
		sum += *rec.InsuranceValue
	}
	total := round2(sum)
	rec.TotalValue = &total
}
