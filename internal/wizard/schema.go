// internal/wizard/schema.go
package wizard

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// Each section declares the fields it owns. Page payloads are validated
// against their section's schema after date reconciliation and before the
// merge, so a stray or misdirected field can never land in the document.
var sectionSchemas = map[SectionID]string{
	SectionApplicantDetails: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"applicantName":           {"type": "string"},
			"emailAddress":            {"type": "string"},
			"phoneNumber":             {"type": "string"},
			"addressLine1":            {"type": "string"},
			"addressLine2":            {"type": "string"},
			"townOrCity":              {"type": "string"},
			"postcode":                {"type": "string"},
			"disqualified":            {"type": "string"},
			"disqualificationDetails": {"type": "string"},
			"applicationDate":         {"type": ["string", "null"]}
		}
	}`,
	SectionCondition1: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"hasVetAgreement":          {"type": "string"},
			"vetName":                  {"type": "string"},
			"vetPracticeName":          {"type": "string"},
			"anticipatedAgreementDate": {"type": ["string", "null"]},
			"vetOnRegister":            {"type": "string"},
			"registerDetails":          {"type": "string"},
			"anticipatedRegisterDate":  {"type": ["string", "null"]}
		}
	}`,
	SectionCondition2: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"hasFacilities":             {"type": "string"},
			"facilitiesDetails":         {"type": "string"},
			"anticipatedFacilitiesDate": {"type": ["string", "null"]}
		}
	}`,
	SectionCondition3: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"hasKennels":             {"type": "string"},
			"kennelCount":            {"type": "string"},
			"kennelDetails":          {"type": "string"},
			"anticipatedKennelsDate": {"type": ["string", "null"]}
		}
	}`,
	SectionCondition4: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"hasIdentification":             {"type": "string"},
			"identificationMethod":          {"type": "string"},
			"anticipatedIdentificationDate": {"type": ["string", "null"]}
		}
	}`,
	SectionCondition5: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"keepsRecords":           {"type": "string"},
			"recordsDetails":         {"type": "string"},
			"anticipatedRecordsDate": {"type": ["string", "null"]}
		}
	}`,
	SectionCondition6: `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"keepsInjuryRecords":           {"type": "string"},
			"injuryRecordsDetails":         {"type": "string"},
			"anticipatedInjuryRecordsDate": {"type": ["string", "null"]}
		}
	}`,
}

var (
	compiledSchemas   = map[SectionID]*gojsonschema.Schema{}
	sectionFieldNames = map[SectionID][]string{}
)

func init() {
	for section, raw := range sectionSchemas {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("invalid schema for section %s: %v", section, err))
		}
		compiledSchemas[section] = schema

		var doc struct {
			Properties map[string]json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			panic(fmt.Sprintf("unreadable schema for section %s: %v", section, err))
		}
		names := make([]string, 0, len(doc.Properties))
		for name := range doc.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		sectionFieldNames[section] = names
	}
}

// SectionFieldNames lists the declared fields of a section, used by the
// controller to prefill view data so templates never see missing keys.
func SectionFieldNames(section SectionID) []string {
	return sectionFieldNames[section]
}

// ValidateSectionPayload checks a reconciled page payload against the
// section's schema. It returns one message per violation; an empty slice
// means the payload is safe to merge.
func ValidateSectionPayload(section SectionID, fields map[string]any) ([]string, error) {
	schema, ok := compiledSchemas[section]
	if !ok {
		return nil, fmt.Errorf("no schema registered for section %s", section)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(fields))
	if err != nil {
		return nil, fmt.Errorf("schema validation failed for section %s: %w", section, err)
	}

	if result.Valid() {
		return nil, nil
	}

	var messages []string
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return messages, nil
}
