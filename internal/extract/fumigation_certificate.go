package extract

import (
	"fmt"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/llm"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

func applyFumigationCertificateGroup(rec *trade.FumigationCertificate, group, raw string) error {
	switch group {
	case "basic_info":
		var p struct {
			CertificateNumber FlexString `json:"certificate_number"`
			IssueDate         FlexString `json:"issue_date"`
			OperatorName      FlexString `json:"operator_name"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.CertificateNumber = p.CertificateNumber.V
		rec.IssueDate = p.IssueDate.V
		rec.OperatorName = p.OperatorName.V

	case "treatment":
		var p struct {
			TreatmentDate    FlexString `json:"treatment_date"`
			Fumigant         FlexString `json:"fumigant"`
			Dosage           FlexString `json:"dosage"`
			DurationHours    FlexFloat  `json:"duration_hours"`
			Temperature      FlexString `json:"temperature"`
			ContainerNumber  FlexString `json:"container_number"`
			CargoDescription FlexString `json:"cargo_description"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.TreatmentDate = p.TreatmentDate.V
		rec.Fumigant = p.Fumigant.V
		rec.Dosage = p.Dosage.V
		rec.DurationHours = p.DurationHours.V
		rec.Temperature = p.Temperature.V
		rec.ContainerNumber = p.ContainerNumber.V
		rec.CargoDescription = p.CargoDescription.V

	case "certification":
		var p struct {
			PortOfLoading FlexString `json:"port_of_loading"`
			Destination   FlexString `json:"destination"`
			Signed        FlexBool   `json:"signed"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.PortOfLoading = p.PortOfLoading.V
		rec.Destination = p.Destination.V
		rec.Signed = p.Signed.V

	default:
		return fmt.Errorf("unknown fumigation certificate field group %q", group)
	}
	return nil
}
