package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOrdering(t *testing.T) {
	pages := Pages()

	assert.Len(t, pages, 9)
	assert.Equal(t, 9, PageCount())

	assert.Equal(t, "applicant-details", pages[0].ID)
	assert.Equal(t, "disqualification", pages[1].ID)
	assert.Equal(t, "condition-6-injury-records", pages[8].ID)

	// The first two pages both write into applicantDetails.
	assert.Equal(t, SectionApplicantDetails, pages[0].Section)
	assert.Equal(t, SectionApplicantDetails, pages[1].Section)
	assert.Equal(t, SectionCondition6, pages[8].Section)
}

func TestPageAtBounds(t *testing.T) {
	_, ok := PageAt(0)
	assert.False(t, ok)

	_, ok = PageAt(10)
	assert.False(t, ok)

	page, ok := PageAt(1)
	assert.True(t, ok)
	assert.Equal(t, "applicant-details", page.ID)

	page, ok = PageAt(9)
	assert.True(t, ok)
	assert.Equal(t, "condition-6-injury-records", page.ID)
}

func TestDateGroupsPerPage(t *testing.T) {
	byID := map[string][]string{}
	for _, page := range Pages() {
		byID[page.ID] = page.DateGroups
	}

	assert.Equal(t, []string{"applicationDate"}, byID["disqualification"])
	assert.Equal(t, []string{"anticipatedAgreementDate"}, byID["condition-1-vet-agreement"])
	assert.Equal(t, []string{"anticipatedRegisterDate"}, byID["condition-1-vet-register"])
	assert.Equal(t, []string{"anticipatedFacilitiesDate"}, byID["condition-2-facilities"])
	assert.Equal(t, []string{"anticipatedKennelsDate"}, byID["condition-3-kennels"])
	assert.Equal(t, []string{"anticipatedIdentificationDate"}, byID["condition-4-identification"])
	assert.Equal(t, []string{"anticipatedRecordsDate"}, byID["condition-5-records"])
	assert.Equal(t, []string{"anticipatedInjuryRecordsDate"}, byID["condition-6-injury-records"])
	assert.Empty(t, byID["applicant-details"])
}

func TestSectionID(t *testing.T) {
	assert.False(t, SectionApplicantDetails.IsLicensingCondition())
	assert.Empty(t, SectionApplicantDetails.ConditionKey())

	assert.True(t, SectionCondition3.IsLicensingCondition())
	assert.Equal(t, "condition3", SectionCondition3.ConditionKey())
	assert.Equal(t, "licensingConditions.condition3", SectionCondition3.Path())
}
