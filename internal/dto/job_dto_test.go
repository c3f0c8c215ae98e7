package dto_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohanvishvajith/sintravels-sub000/internal/dto"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

const validCreateBody = `{
	"title": "Welder",
	"company": "Acme",
	"salaryMin": 500,
	"salaryMax": 900,
	"currency": "QAR",
	"type": "Full-time",
	"description": "Structural welding",
	"closingDate": "2026-12-31",
	"requirements": ["2 years experience", "own tools"],
	"benefits": "Food, Accommodation"
}`

func TestParseJobInput_Valid(t *testing.T) {
	in, err := dto.ParseJobInput([]byte(validCreateBody), false)
	require.NoError(t, err)
	assert.Equal(t, "Welder", in.Title)
	assert.Equal(t, 500, in.SalaryMin)
	require.NotNil(t, in.SalaryMax)
	assert.Equal(t, 900, *in.SalaryMax)
	assert.Equal(t, []string{"2 years experience", "own tools"}, in.Requirements)
	assert.Equal(t, []string{"Food", "Accommodation"}, in.Benefits)
	assert.Equal(t, 2026, in.ClosingDate.Year())
}

func TestParseJobInput_MissingFieldNamesFirst(t *testing.T) {
	body := `{"title":"Welder","salaryMin":500,"salaryMax":900,"currency":"QAR","type":"Full-time","description":"x","closingDate":"2026-12-31"}`
	_, err := dto.ParseJobInput([]byte(body), false)
	require.Error(t, err)
	ve, ok := err.(*util.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "company", ve.Field)
	assert.Equal(t, "company is required", ve.Message)
}

func TestParseJobInput_BlankAfterTrimIsMissing(t *testing.T) {
	body := `{"title":"   ","company":"Acme","salaryMin":500,"salaryMax":900,"currency":"QAR","type":"Full-time","description":"x","closingDate":"2026-12-31"}`
	_, err := dto.ParseJobInput([]byte(body), false)
	require.Error(t, err)
	ve := err.(*util.ValidationError)
	assert.Equal(t, "title", ve.Field)
}

func TestParseJobInput_NonNumericSalary(t *testing.T) {
	body := `{"title":"Welder","company":"Acme","salaryMin":"abc","salaryMax":900,"currency":"QAR","type":"Full-time","description":"x","closingDate":"2026-12-31"}`
	_, err := dto.ParseJobInput([]byte(body), false)
	require.Error(t, err)
	assert.Equal(t, "salaryMin and salaryMax must be numbers", err.Error())
}

func TestParseJobInput_ZeroSalaryMaxBecomesNil(t *testing.T) {
	body := `{"title":"Welder","company":"Acme","salaryMin":500,"salaryMax":0,"currency":"QAR","type":"Full-time","description":"x","closingDate":"2026-12-31"}`
	in, err := dto.ParseJobInput([]byte(body), false)
	require.NoError(t, err)
	assert.Nil(t, in.SalaryMax, "salaryMax of exactly 0 means no maximum")
}

func TestParseJobInput_NumericStringSalariesAccepted(t *testing.T) {
	body := `{"title":"Welder","company":"Acme","salaryMin":"500","salaryMax":"900","currency":"QAR","type":"Full-time","description":"x","closingDate":"2026-12-31"}`
	in, err := dto.ParseJobInput([]byte(body), false)
	require.NoError(t, err)
	assert.Equal(t, 500, in.SalaryMin)
	assert.Equal(t, 900, *in.SalaryMax)
}

func TestParseJobInput_UpdateRequiresID(t *testing.T) {
	_, err := dto.ParseJobInput([]byte(validCreateBody), true)
	require.Error(t, err)
	assert.Equal(t, "id is required", err.Error())
}

func TestParseJobInput_BadClosingDate(t *testing.T) {
	body := `{"title":"Welder","company":"Acme","salaryMin":500,"salaryMax":900,"currency":"QAR","type":"Full-time","description":"x","closingDate":"soon"}`
	_, err := dto.ParseJobInput([]byte(body), false)
	require.Error(t, err)
	ve := err.(*util.ValidationError)
	assert.Equal(t, "closingDate", ve.Field)
}

func TestParseJobInput_Vacancies(t *testing.T) {
	base := `{"title":"Welder","company":"Acme","salaryMin":500,"salaryMax":900,"currency":"QAR","type":"Full-time","description":"x","closingDate":"2026-12-31","vacancies":%s}`

	in, err := dto.ParseJobInput([]byte(fmt.Sprintf(base, "3")), false)
	require.NoError(t, err)
	assert.Equal(t, 3, in.Vacancies)

	in, err = dto.ParseJobInput([]byte(fmt.Sprintf(base, "0")), false)
	require.NoError(t, err)
	assert.Equal(t, 0, in.Vacancies)

	for _, bad := range []string{"-1", `"several"`} {
		_, err = dto.ParseJobInput([]byte(fmt.Sprintf(base, bad)), false)
		require.Error(t, err, "vacancies %s must be rejected", bad)
		ve := err.(*util.ValidationError)
		assert.Equal(t, "vacancies", ve.Field)
	}
}

func TestParseJobInput_SelectedBenefitIDs(t *testing.T) {
	body := `{"title":"Welder","company":"Acme","salaryMin":500,"salaryMax":900,"currency":"QAR","type":"Full-time","description":"x","closingDate":"2026-12-31",
		"selectedBenefits":["6ba7b810-9dad-11d1-80b4-00c04fd430c8"]}`
	in, err := dto.ParseJobInput([]byte(body), false)
	require.NoError(t, err)
	require.Len(t, in.SelectedBenefits, 1)

	bad := `{"title":"Welder","company":"Acme","salaryMin":500,"salaryMax":900,"currency":"QAR","type":"Full-time","description":"x","closingDate":"2026-12-31",
		"selectedBenefits":["not-a-uuid"]}`
	_, err = dto.ParseJobInput([]byte(bad), false)
	require.Error(t, err)
}
