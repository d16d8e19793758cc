// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casedb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nyappeal/pkg/types"
)

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Formats lists the supported export formats.
var Formats = []string{FormatYAML, FormatJSON, FormatXLSX}

const (
	exportLimit = 1000000
	sheetName   = "Cases"
)

// ExportEntry is one case in a YAML or JSON export.
type ExportEntry struct {
	File                    string `json:"file" yaml:"file"`
	RunID                   string `json:"run_id" yaml:"run_id"`
	Casenumber              string `json:"casenumber,omitempty" yaml:"casenumber,omitempty"`
	CivilCriminal           string `json:"civil_criminal" yaml:"civil_criminal"`
	Court                   string `json:"court,omitempty" yaml:"court,omitempty"`
	County                  string `json:"county,omitempty" yaml:"county,omitempty"`
	Judge                   string `json:"judge,omitempty" yaml:"judge,omitempty"`
	DistrictAttorney        string `json:"district_attorney,omitempty" yaml:"district_attorney,omitempty"`
	ADA                     string `json:"ada,omitempty" yaml:"ada,omitempty"`
	Keywords                string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	GroundsForAppeal        string `json:"grounds_for_appeal,omitempty" yaml:"grounds_for_appeal,omitempty"`
	FirstDate               string `json:"first_date,omitempty" yaml:"first_date,omitempty"`
	AppealDate              string `json:"appeal_date,omitempty" yaml:"appeal_date,omitempty"`
	GapDays                 string `json:"gap_days,omitempty" yaml:"gap_days,omitempty"`
	ModeOfConviction        string `json:"mode_of_conviction,omitempty" yaml:"mode_of_conviction,omitempty"`
	Crimes                  string `json:"crimes,omitempty" yaml:"crimes,omitempty"`
	Judges                  string `json:"judges,omitempty" yaml:"judges,omitempty"`
	Defense                 string `json:"defense,omitempty" yaml:"defense,omitempty"`
	DefendantAppellant      string `json:"defendant_appellant,omitempty" yaml:"defendant_appellant,omitempty"`
	DefendantRespondent     string `json:"defendant_respondent,omitempty" yaml:"defendant_respondent,omitempty"`
	HarmlessError           string `json:"harmless_error,omitempty" yaml:"harmless_error,omitempty"`
	ProsecutorialMisconduct string `json:"prosecutorial_misconduct,omitempty" yaml:"prosecutorial_misconduct,omitempty"`
	DocumentLength          string `json:"document_length" yaml:"document_length"`
}

func newExportEntry(c Case) ExportEntry {
	r := c.Record
	return ExportEntry{
		File:                    r[types.FieldFile],
		RunID:                   c.RunID,
		Casenumber:              r[types.FieldCasenumber],
		CivilCriminal:           r[types.FieldCivilCriminal],
		Court:                   r[types.FieldCourt],
		County:                  r[types.FieldCounty],
		Judge:                   r[types.FieldJudge],
		DistrictAttorney:        r[types.FieldDistrictAttorney],
		ADA:                     r[types.FieldADA],
		Keywords:                r[types.FieldKeywords],
		GroundsForAppeal:        r[types.FieldGroundsForAppeal],
		FirstDate:               r[types.FieldFirstDate],
		AppealDate:              r[types.FieldAppealDate],
		GapDays:                 r[types.FieldGapDays],
		ModeOfConviction:        r[types.FieldModeOfConviction],
		Crimes:                  r[types.FieldCrimes],
		Judges:                  r[types.FieldJudges],
		Defense:                 r[types.FieldDefense],
		DefendantAppellant:      r[types.FieldDefendantAppellant],
		DefendantRespondent:     r[types.FieldDefendantRespondent],
		HarmlessError:           r[types.FieldHarmlessError],
		ProsecutorialMisconduct: r[types.FieldProsecutorialMisconduct],
		DocumentLength:          r[types.FieldDocumentLength],
	}
}

// Export writes the cases matching opts to w in the given format. It
// returns the number of cases written.
func (s *Store) Export(ctx context.Context, format string, opts QueryOptions, w io.Writer) (int, error) {
	switch format {
	case FormatYAML:
		return s.ExportYAML(ctx, opts, w)
	case FormatJSON:
		return s.ExportJSON(ctx, opts, w)
	case FormatXLSX:
		return s.ExportXLSX(ctx, opts, w)
	default:
		return 0, fmt.Errorf("unknown export format %q (want one of %v)", format, Formats)
	}
}

// ExportYAML writes matching cases as a YAML sequence.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions, w io.Writer) (int, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return 0, err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return 0, fmt.Errorf("marshaling YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return 0, fmt.Errorf("writing YAML: %w", err)
	}
	return len(entries), nil
}

// ExportJSON writes matching cases as an indented JSON array.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions, w io.Writer) (int, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return 0, err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return 0, fmt.Errorf("writing JSON: %w", err)
	}
	return len(entries), nil
}

// ExportXLSX writes matching cases as a workbook with one sheet. The
// header row holds the field names followed by RunID.
func (s *Store) ExportXLSX(ctx context.Context, opts QueryOptions, w io.Writer) (int, error) {
	cases, err := s.exportCases(ctx, opts)
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return 0, fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, 0, len(types.Fields)+1)
	for _, name := range types.FieldNames() {
		header = append(header, name)
	}
	header = append(header, "RunID")
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return 0, fmt.Errorf("writing header row: %w", err)
	}

	for i, c := range cases {
		row := make([]any, 0, len(header))
		for _, v := range c.Record.Values() {
			row = append(row, v)
		}
		row = append(row, c.RunID)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return 0, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return 0, fmt.Errorf("freezing header row: %w", err)
	}

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("xlsx write: %w", err)
	}
	return len(cases), nil
}

func (s *Store) exportCases(ctx context.Context, opts QueryOptions) ([]Case, error) {
	opts.MaxResults = exportLimit
	cases, err := s.Query(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return cases, nil
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	cases, err := s.exportCases(ctx, opts)
	if err != nil {
		return nil, err
	}
	entries := make([]ExportEntry, len(cases))
	for i, c := range cases {
		entries[i] = newExportEntry(c)
	}
	return entries, nil
}
