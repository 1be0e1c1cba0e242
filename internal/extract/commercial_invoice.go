package extract

import (
	"fmt"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/llm"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

type partyPayload struct {
	Name    FlexString `json:"name"`
	Address FlexString `json:"address"`
	Country FlexString `json:"country"`
	TaxID   FlexString `json:"tax_id"`
}

func (p *partyPayload) toParty() trade.Party {
	return trade.Party{
		Name:    p.Name.V,
		Address: p.Address.V,
		Country: p.Country.V,
		TaxID:   p.TaxID.V,
	}
}

type invoiceItemPayload struct {
	Description FlexString `json:"description"`
	Quantity    FlexFloat  `json:"quantity"`
	Unit        FlexString `json:"unit"`
	UnitPrice   FlexFloat  `json:"unit_price"`
	Total       FlexFloat  `json:"total"`
	HSCode      FlexString `json:"hs_code"`
}

// applyCommercialInvoiceGroup decodes one group's raw model output into the
// record. Each group writes a disjoint set of fields, so apply order does not
// matter.
func applyCommercialInvoiceGroup(rec *trade.CommercialInvoice, group, raw string) error {
	switch group {
	case "basic_info":
		var p struct {
			InvoiceNumber FlexString `json:"invoice_number"`
			InvoiceDate   FlexString `json:"invoice_date"`
			Currency      FlexString `json:"currency"`
			TotalAmount   FlexFloat  `json:"total_amount"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.InvoiceNumber = p.InvoiceNumber.V
		rec.InvoiceDate = p.InvoiceDate.V
		rec.Currency = p.Currency.V
		rec.TotalAmount = p.TotalAmount.V

	case "exporter":
		var p partyPayload
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.Exporter = p.toParty()

	case "consignee":
		var p partyPayload
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.Consignee = p.toParty()

	case "items":
		var p struct {
			Items []invoiceItemPayload `json:"items"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		items := make([]trade.LineItem, 0, len(p.Items))
		for _, it := range p.Items {
			items = append(items, trade.LineItem{
				Description: it.Description.V,
				Quantity:    it.Quantity.V,
				Unit:        it.Unit.V,
				UnitPrice:   it.UnitPrice.V,
				Total:       it.Total.V,
				HSCode:      it.HSCode.V,
			})
		}
		rec.Items = items

	case "bank":
		var p struct {
			BankName      FlexString `json:"bank_name"`
			AccountNumber FlexString `json:"account_number"`
			SwiftCode     FlexString `json:"swift_code"`
			IBAN          FlexString `json:"iban"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.Bank = trade.BankDetails{
			BankName:      p.BankName.V,
			AccountNumber: p.AccountNumber.V,
			SwiftCode:     p.SwiftCode.V,
			IBAN:          p.IBAN.V,
		}

	case "shipping":
		var p struct {
			PortOfLoading        FlexString `json:"port_of_loading"`
			PortOfDischarge      FlexString `json:"port_of_discharge"`
			CountryOfOrigin      FlexString `json:"country_of_origin"`
			CountryOfDestination FlexString `json:"country_of_destination"`
			VesselOrFlight       FlexString `json:"vessel_or_flight"`
			Incoterms            FlexString `json:"incoterms"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.Shipping = trade.Shipping{
			PortOfLoading:        p.PortOfLoading.V,
			PortOfDischarge:      p.PortOfDischarge.V,
			CountryOfOrigin:      p.CountryOfOrigin.V,
			CountryOfDestination: p.CountryOfDestination.V,
			VesselOrFlight:       p.VesselOrFlight.V,
			Incoterms:            p.Incoterms.V,
		}

	case "additional":
		var p struct {
			PaymentTerms  FlexString `json:"payment_terms"`
			DeliveryTerms FlexString `json:"delivery_terms"`
			Remarks       FlexString `json:"remarks"`
			ScometCovered FlexBool   `json:"scomet_covered"`
			Signed        FlexBool   `json:"signed"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.PaymentTerms = p.PaymentTerms.V
		rec.DeliveryTerms = p.DeliveryTerms.V
		rec.Remarks = p.Remarks.V
		rec.ScometCovered = p.ScometCovered.V
		rec.Signed = p.Signed.V

	default:
		return fmt.Errorf("unknown commercial invoice field group %q", group)
	}
	return nil
}

// deriveCommercialInvoice fills the total amount from line-item totals when
// the model found none.
func deriveCommercialInvoice(rec *trade.CommercialInvoice) {
	if rec.TotalAmount != nil && *rec.TotalAmount != 0 {
		return
	}
	sum := 0.0
	counted := 0
	for _, item := range rec.Items {
		if item.Total != nil {
			sum += *item.Total
			counted++
		}
	}
	if counted > 0 {
		total := round2(sum)
		rec.TotalAmount = &total
	}
}
