package extract

import (
	"fmt"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/llm"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
)

func applyScometDeclarationGroup(rec *trade.ScometDeclaration, group, raw string) error {
	switch group {
	case "basic_info":
		var p struct {
			DeclarationNumber FlexString `json:"declaration_number"`
			DeclarationDate   FlexString `json:"declaration_date"`
			ExporterName      FlexString `json:"exporter_name"`
			ConsigneeName     FlexString `json:"consignee_name"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.DeclarationNumber = p.DeclarationNumber.V
		rec.DeclarationDate = p.DeclarationDate.V
		rec.ExporterName = p.ExporterName.V
		rec.ConsigneeName = p.ConsigneeName.V

	case "coverage":
		var p struct {
			ItemDescription FlexString `json:"item_description"`
			ScometCategory  FlexString `json:"scomet_category"`
			ScometCovered   FlexBool   `json:"scomet_covered"`
			EndUse          FlexString `json:"end_use"`
			EndUserName     FlexString `json:"end_user_name"`
			EndUserCountry  FlexString `json:"end_user_country"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.ItemDescription = p.ItemDescription.V
		rec.ScometCategory = p.ScometCategory.V
		rec.ScometCovered = p.ScometCovered.V
		rec.EndUse = p.EndUse.V
		rec.EndUserName = p.EndUserName.V
		rec.EndUserCountry = p.EndUserCountry.V

	case "signature":
		var p struct {
			SignatoryName        FlexString `json:"signatory_name"`
			SignatoryDesignation FlexString `json:"signatory_designation"`
			Signed               FlexBool   `json:"signed"`
			PlaceOfSigning       FlexString `json:"place_of_signing"`
			SigningDate          FlexString `json:"signing_date"`
		}
		if err := llm.DecodeInto(raw, &p); err != nil {
			return err
		}
		rec.SignatoryName = p.SignatoryName.V
		rec.SignatoryDesignation = p.SignatoryDesignation.V
		rec.Signed = p.Signed.V
		rec.PlaceOfSigning = p.PlaceOfSigning.V
		rec.SigningDate = p.SigningDate.V

	default:
		return fmt.Errorf("unknown SCOMET declaration field group %q", group)
	}
	return nil
}
