package validator

import (
	"fmt"
	"math"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

func validateCommercialInvoice(inv *trade.CommercialInvoice) *Result {
	required := []check{
		{hasStr(inv.InvoiceNumber), "Invoice number is missing"},
		{hasStr(inv.InvoiceDate), "Invoice date is missing"},
		{hasStr(inv.Exporter.Name), "Exporter name is missing"},
		{hasStr(inv.Consignee.Name), "Consignee name is missing"},
		{len(inv.Items) > 0, "Invoice has no line items"},
		{hasNum(inv.TotalAmount), "Total amount is missing"},
	}

	recommended := []check{
		{hasStr(inv.Currency), "Currency is missing"},
		{hasStr(inv.Bank.BankName), "Bank name is missing"},
		{hasStr(inv.Bank.AccountNumber), "Bank account number is missing"},
		{hasStr(inv.Bank.SwiftCode), "SWIFT code is missing"},
		{hasStr(inv.PaymentTerms), "Payment terms are missing"},
		{hasStr(inv.Shipping.PortOfLoading), "Port of loading is missing"},
		{hasStr(inv.Shipping.PortOfDischarge), "Port of discharge is missing"},
	}

	var crossWarnings []string
	if hasNum(inv.TotalAmount) && len(inv.Items) > 0 {
		sum := 0.0
		counted := 0
		for _, item := range inv.Items {
			if item.Total != nil {
				sum += *item.Total
				counted++
			}
		}
		if counted > 0 {
			sum = round2(sum)
			if math.Abs(sum-*inv.TotalAmount) > amountTolerance {
				crossWarnings = append(crossWarnings, fmt.Sprintf(
					"Line item totals (%.2f) do not match the declared total amount (%.2f)",
					sum, *inv.TotalAmount))
			}
		}
	}

	// Fixed completeness checklist; order and length must stay stable.
	checklist := []bool{
		hasStr(inv.InvoiceNumber),
		hasStr(inv.InvoiceDate),
		hasStr(inv.Currency),
		hasNum(inv.TotalAmount),
		hasStr(inv.Exporter.Name),
		hasStr(inv.Exporter.Address),
		hasStr(inv.Exporter.Country),
		hasStr(inv.Consignee.Name),
		hasStr(inv.Consignee.Address),
		hasStr(inv.Consignee.Country),
		len(inv.Items) > 0,
		hasStr(inv.Bank.BankName),
		hasStr(inv.Bank.AccountNumber),
		hasStr(inv.Bank.SwiftCode),
		hasStr(inv.PaymentTerms),
		hasStr(inv.Shipping.PortOfLoading),
		hasStr(inv.Shipping.PortOfDischarge),
		hasStr(inv.Shipping.Incoterms),
		hasBool(inv.Signed),
	}

	return assemble(inv, required, recommended, crossWarnings, checklist)
}
