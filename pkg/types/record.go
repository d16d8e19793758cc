// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is one decision transcript. It is read, never mutated.
type Document struct {
	// Name identifies the document, normally its file name.
	Name string

	// Text is the raw transcript.
	Text string
}

// ExtractionContext holds the document-level flags computed once by the
// classifier and consulted by several extractors.
type ExtractionContext struct {
	IsCriminal        bool
	IsSexOffenderCase bool
}

// FieldKey names one output column.
type FieldKey string

// Output fields. Declaration order in Fields is the column order and the
// evaluation order: dates resolve before Gap_days, ModeOfConviction before
// Crimes, DistrictAttorney before ADA.
const (
	FieldFile                    FieldKey = "File"
	FieldCasenumber              FieldKey = "Casenumber"
	FieldCivilCriminal           FieldKey = "CivilCriminal"
	FieldCourt                   FieldKey = "Court"
	FieldCounty                  FieldKey = "County"
	FieldJudge                   FieldKey = "Judge"
	FieldDistrictAttorney        FieldKey = "DistrictAttorney"
	FieldADA                     FieldKey = "ADA"
	FieldKeywords                FieldKey = "Keywords"
	FieldGroundsForAppeal        FieldKey = "GroundsForAppeal"
	FieldFirstDate               FieldKey = "FirstDate"
	FieldAppealDate              FieldKey = "AppealDate"
	FieldGapDays                 FieldKey = "Gap_days"
	FieldModeOfConviction        FieldKey = "ModeOfConviction"
	FieldCrimes                  FieldKey = "Crimes"
	FieldJudges                  FieldKey = "Judges"
	FieldDefense                 FieldKey = "Defense"
	FieldDefendantAppellant      FieldKey = "DefendantAppellant"
	FieldDefendantRespondent     FieldKey = "DefendantRespondent"
	FieldHarmlessError           FieldKey = "HarmlessError"
	FieldProsecutorialMisconduct FieldKey = "ProsecutorialMisconduct"
	FieldDocumentLength          FieldKey = "DocumentLength"
)

// Fields lists every FieldKey in canonical order.
var Fields = []FieldKey{
	FieldFile,
	FieldCasenumber,
	FieldCivilCriminal,
	FieldCourt,
	FieldCounty,
	FieldJudge,
	FieldDistrictAttorney,
	FieldADA,
	FieldKeywords,
	FieldGroundsForAppeal,
	FieldFirstDate,
	FieldAppealDate,
	FieldGapDays,
	FieldModeOfConviction,
	FieldCrimes,
	FieldJudges,
	FieldDefense,
	FieldDefendantAppellant,
	FieldDefendantRespondent,
	FieldHarmlessError,
	FieldProsecutorialMisconduct,
	FieldDocumentLength,
}

// FieldNames returns the column names in canonical order.
func FieldNames() []string {
	names := make([]string, len(Fields))
	for i, k := range Fields {
		names[i] = string(k)
	}
	return names
}

// Record maps every FieldKey to its sanitized value.
type Record map[FieldKey]string

// NewRecord returns a Record with an empty entry for every field.
func NewRecord() Record {
	r := make(Record, len(Fields))
	for _, k := range Fields {
		r[k] = ""
	}
	return r
}

// Values returns the record's values in canonical field order. Missing keys
// come back as empty strings.
func (r Record) Values() []string {
	values := make([]string, len(Fields))
	for i, k := range Fields {
		values[i] = r[k]
	}
	return values
}
