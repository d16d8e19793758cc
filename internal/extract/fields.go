// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/nyappeal/internal/textutil"
	"github.com/pdiddy/nyappeal/pkg/types"
)

// Strategy extracts one field. flat is doc.Text with line breaks replaced
// by spaces. An empty return means the field was not found.
type Strategy interface {
	Extract(doc types.Document, flat string, ctx types.ExtractionContext) string
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(doc types.Document, flat string, ctx types.ExtractionContext) string

// Extract calls f.
func (f StrategyFunc) Extract(doc types.Document, flat string, ctx types.ExtractionContext) string {
	return f(doc, flat, ctx)
}

// tagJoiner separates multiple hits in tag fields.
const tagJoiner = ";"

func extractFile(doc types.Document, _ string, _ types.ExtractionContext) string {
	return doc.Name
}

func extractDocumentLength(doc types.Document, _ string, _ types.ExtractionContext) string {
	return strconv.Itoa(utf8.RuneCountInString(doc.Text))
}

func extractCivilCriminal(_ types.Document, _ string, ctx types.ExtractionContext) string {
	if ctx.IsCriminal {
		return "K"
	}
	return "C"
}

// extractCaseNumber prefers the bracketed AD citation and falls back to the
// slip opinion number.
func extractCaseNumber(doc types.Document, _ string, _ types.ExtractionContext) string {
	if m := citationRe.FindStringSubmatch(doc.Text); m != nil && validCitation(m[1]) {
		return m[1]
	}
	return slipOpRe.FindString(doc.Text)
}

func validCitation(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 3 && n <= 14 && strings.Contains(s, "AD")
}

func extractCourt(doc types.Document, flat string, _ types.ExtractionContext) string {
	if m := courtRe.FindString(doc.Text); m != "" {
		return m
	}
	return strings.TrimLeft(committeeRe.FindString(flat), " \t")
}

// extractCounty skips "the County" and rejects "v County", which comes from
// a quoted case name rather than the venue.
func extractCounty(doc types.Document, _ string, _ types.ExtractionContext) string {
	for _, m := range countyRe.FindAllString(doc.Text, -1) {
		switch strings.ToLower(strings.Join(strings.Fields(m), " ")) {
		case "the county":
			continue
		case "v county":
			return ""
		}
		return m
	}
	return ""
}

func extractJudge(_ types.Document, flat string, _ types.ExtractionContext) string {
	m := judgeRe.FindStringSubmatch(flat)
	if m == nil {
		return ""
	}
	return stripParens(m[1])
}

// stripParens removes one enclosing pair of parentheses. Text with nested
// groups is returned unchanged.
func stripParens(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	inner := s[1 : len(s)-1]
	if strings.ContainsAny(inner, "()") {
		return s
	}
	return inner
}

// findEach returns the first hit of every pattern, in pattern order, joined
// with tagJoiner.
func findEach(patterns []*regexp.Regexp, text string) string {
	var hits []string
	for _, re := range patterns {
		if m := re.FindString(text); m != "" {
			hits = append(hits, m)
		}
	}
	return strings.Join(hits, tagJoiner)
}

func extractKeywords(doc types.Document, _ string, _ types.ExtractionContext) string {
	return findEach(dispositionPatterns, doc.Text)
}

func extractGrounds(doc types.Document, _ string, _ types.ExtractionContext) string {
	return findEach(groundsPatterns, doc.Text)
}

func extractDefense(doc types.Document, _ string, _ types.ExtractionContext) string {
	return findEach(defensePatterns, doc.Text)
}

func extractFirstDate(_ types.Document, flat string, _ types.ExtractionContext) string {
	if m := firstDateRe.FindStringSubmatch(flat); m != nil {
		return m[1]
	}
	return ""
}

func extractAppealDate(doc types.Document, _ string, _ types.ExtractionContext) string {
	return dateRe.FindString(doc.Text)
}

func extractMode(doc types.Document, _ string, ctx types.ExtractionContext) string {
	if !ctx.IsCriminal {
		return ""
	}
	return modeRe.FindString(doc.Text)
}

// Literal markers for the panel fallbacks.
var (
	concurMarkers = []string{"concur.", "concur;"}
	concurDash    = "Concur—"
)

// extractJudges reads the panel from the "Present—" line, then from the
// line ending in "concur.", then from the "Concur—" line.
func extractJudges(doc types.Document, _ string, _ types.ExtractionContext) string {
	if m := presentRe.FindStringSubmatch(doc.Text); m != nil {
		return m[1]
	}
	if v := judgesBeforeConcur(doc.Text); v != "" {
		return v
	}
	if idx := strings.Index(doc.Text, concurDash); idx >= 0 {
		start := idx + len(concurDash)
		return doc.Text[start:textutil.LineEnd(doc.Text, start)]
	}
	return ""
}

// judgesBeforeConcur returns the names preceding "concur." on its line,
// after the last "). ", "without merit" or ". " on that line. "concur;" is
// used only when the text has no "concur.".
func judgesBeforeConcur(text string) string {
	idx := -1
	for _, marker := range concurMarkers {
		if idx = strings.Index(text, marker); idx >= 0 {
			break
		}
	}
	if idx < 0 {
		return ""
	}
	line := textutil.LineUpTo(text, idx)
	if i := strings.LastIndex(line, "). "); i >= 0 {
		return line[i+len("). "):]
	}
	if i := strings.LastIndex(line, "without merit"); i >= 0 {
		return strings.TrimLeft(line[i+len("without merit"):], ". ")
	}
	if i := strings.LastIndex(line, ". "); i >= 0 {
		return line[i+len(". "):]
	}
	return line
}

func extractAppellant(doc types.Document, _ string, _ types.ExtractionContext) string {
	return appellantRe.FindString(doc.Text)
}

func extractRespondent(doc types.Document, _ string, _ types.ExtractionContext) string {
	return respondentRe.FindString(doc.Text)
}

const daMarker = ", District Attorney"

// extractDistrictAttorney returns the name on the line before
// ", District Attorney", without the word "Acting".
func extractDistrictAttorney(doc types.Document, _ string, ctx types.ExtractionContext) string {
	if !ctx.IsCriminal {
		return ""
	}
	idx := strings.Index(doc.Text, daMarker)
	if idx < 0 {
		return ""
	}
	name := actingRe.ReplaceAllString(textutil.LineUpTo(doc.Text, idx), "")
	return strings.Join(strings.Fields(name), " ")
}

// extractADA reads "(... of counsel)" following the first mention of the
// district attorney. The engine only runs it when DistrictAttorney resolved.
func extractADA(_ types.Document, flat string, _ types.ExtractionContext) string {
	idx := textutil.IndexFold(flat, "district attorney")
	if idx < 0 {
		return ""
	}
	if m := adaRe.FindStringSubmatch(flat[idx:]); m != nil {
		return m[1]
	}
	return ""
}

// extractHarmless returns the sentence containing "harmless", without its
// bounding periods.
func extractHarmless(doc types.Document, _ string, _ types.ExtractionContext) string {
	text := doc.Text
	idx := strings.Index(text, "harmless")
	if idx < 0 {
		return ""
	}
	before, err := textutil.BackTo(text, ".", idx)
	if errors.Is(err, textutil.ErrNotFound) {
		before = text[:idx]
	}
	after, err := textutil.ForwardTo(text, ".", idx)
	if errors.Is(err, textutil.ErrNotFound) {
		after = text[idx:]
	}
	return before + after
}

func extractMisconduct(doc types.Document, _ string, _ types.ExtractionContext) string {
	return misconductRe.FindString(doc.Text)
}
