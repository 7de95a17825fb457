// internal/wizard/pages.go
package wizard

import "strings"

// SectionID identifies a section of the application document. Pages address
// sections through this enumeration rather than raw dotted strings so the
// controller never branches on string prefixes.
type SectionID string

const (
	SectionApplicantDetails SectionID = "applicantDetails"
	SectionCondition1       SectionID = "licensingConditions.condition1"
	SectionCondition2       SectionID = "licensingConditions.condition2"
	SectionCondition3       SectionID = "licensingConditions.condition3"
	SectionCondition4       SectionID = "licensingConditions.condition4"
	SectionCondition5       SectionID = "licensingConditions.condition5"
	SectionCondition6       SectionID = "licensingConditions.condition6"
)

// Path returns the dotted address of the section within the document.
func (s SectionID) Path() string {
	return string(s)
}

// IsLicensingCondition reports whether the section is one of the six
// licensing-condition sub-sections.
func (s SectionID) IsLicensingCondition() bool {
	return strings.HasPrefix(string(s), "licensingConditions.")
}

// ConditionKey returns the sub-section key ("condition3") for a
// licensing-condition section, or "" for top-level sections.
func (s SectionID) ConditionKey() string {
	if !s.IsLicensingCondition() {
		return ""
	}
	return strings.TrimPrefix(string(s), "licensingConditions.")
}

// Page describes one step of the wizard. The slice returned by Pages is
// ordered: index defines the navigation sequence and the last page advances
// to the review step.
type Page struct {
	ID       string
	Title    string
	Template string
	Section  SectionID

	// DateGroups lists the prefixes of day/month/year field groups collected
	// on this page. Reconciliation only ever runs for the groups of the page
	// being posted, so a condition page cannot clobber another condition's
	// dates.
	DateGroups []string
}

var formPages = []Page{
	{
		ID:       "applicant-details",
		Title:    "Applicant Details",
		Template: "applicant-details.html",
		Section:  SectionApplicantDetails,
	},
	{
		ID:         "disqualification",
		Title:      "Disqualification",
		Template:   "disqualification.html",
		Section:    SectionApplicantDetails,
		DateGroups: []string{"applicationDate"},
	},
	{
		ID:         "condition-1-vet-agreement",
		Title:      "Condition 1: Veterinary Surgeon Agreement",
		Template:   "condition-1-vet-agreement.html",
		Section:    SectionCondition1,
		DateGroups: []string{"anticipatedAgreementDate"},
	},
	{
		ID:         "condition-1-vet-register",
		Title:      "Condition 1: Veterinary Register",
		Template:   "condition-1-vet-register.html",
		Section:    SectionCondition1,
		DateGroups: []string{"anticipatedRegisterDate"},
	},
	{
		ID:         "condition-2-facilities",
		Title:      "Condition 2: Facilities for the Veterinary Surgeon",
		Template:   "condition-2-facilities.html",
		Section:    SectionCondition2,
		DateGroups: []string{"anticipatedFacilitiesDate"},
	},
	{
		ID:         "condition-3-kennels",
		Title:      "Condition 3: Kennel Availability",
		Template:   "condition-3-kennels.html",
		Section:    SectionCondition3,
		DateGroups: []string{"anticipatedKennelsDate"},
	},
	{
		ID:         "condition-4-identification",
		Title:      "Condition 4: Greyhound Identification",
		Template:   "condition-4-identification.html",
		Section:    SectionCondition4,
		DateGroups: []string{"anticipatedIdentificationDate"},
	},
	{
		ID:         "condition-5-records",
		Title:      "Condition 5: Record Keeping",
		Template:   "condition-5-records.html",
		Section:    SectionCondition5,
		DateGroups: []string{"anticipatedRecordsDate"},
	},
	{
		ID:         "condition-6-injury-records",
		Title:      "Condition 6: Injury Records",
		Template:   "condition-6-injury-records.html",
		Section:    SectionCondition6,
		DateGroups: []string{"anticipatedInjuryRecordsDate"},
	},
}

// Pages returns the ordered wizard page descriptors.
func Pages() []Page {
	pages := make([]Page, len(formPages))
	copy(pages, formPages)
	return pages
}

// PageCount returns the number of wizard pages.
func PageCount() int {
	return len(formPages)
}

// PageAt returns the page for a 1-based page number.
func PageAt(number int) (Page, bool) {
	if number < 1 || number > len(formPages) {
		return Page{}, false
	}
	return formPages[number-1], true
}

// AllDateGroups returns every date-group prefix across the wizard, used when
// splitting stored ISO dates into display components.
func AllDateGroups() []string {
	var groups []string
	for _, p := range formPages {
		groups = append(groups, p.DateGroups...)
	}
	return groups
}
