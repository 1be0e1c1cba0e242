package validator

import (
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

func validateFumigationCertificate(fc *trade.FumigationCertificate) *Result {
	required := []check{
		{hasStr(fc.CertificateNumber), "Certificate number is missing"},
		{hasStr(fc.TreatmentDate), "Treatment date is missing"},
		{hasStr(fc.Fumigant), "Fumigant is missing"},
		{hasStr(fc.CargoDescription), "Cargo description is missing"},
	}

	recommended := []check{
		{hasStr(fc.IssueDate), "Issue date is missing"},
		{hasStr(fc.OperatorName), "Operator name is missing"},
		{hasStr(fc.Dosage), "Dosage is missing"},
		{hasNum(fc.DurationHours), "Exposure duration is missing"},
		{hasStr(fc.Destination), "Destination is missing"},
		{hasBool(fc.Signed), "Signature status is missing"},
	}

	checklist := []bool{
		hasStr(fc.CertificateNumber),
		hasStr(fc.IssueDate),
		hasStr(fc.OperatorName),
		hasStr(fc.TreatmentDate),
		hasStr(fc.Fumigant),
		hasStr(fc.Dosage),
		hasNum(fc.DurationHours),
		hasStr(fc.Temperature),
		hasStr(fc.ContainerNumber),
		hasStr(fc.CargoDescription),
		hasStr(fc.PortOfLoading),
		hasStr(fc.Destination),
		hasBool(fc.Signed),
	}

	return assemble(fc, required, recommended, nil, checklist)
}
