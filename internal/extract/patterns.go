// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "regexp"

const monthAlt = `(?:January|February|March|April|May|June|July|August|September|October|November|December)`

// Date patterns.
var (
	// dateRe matches "March 4, 2001".
	dateRe = regexp.MustCompile(monthAlt + `\s+\d{1,2},\s*\d{4}`)

	// firstDateRe matches the lower-court date; group 1 is the date without
	// the verb phrase. "entered on or about" must precede "entered".
	firstDateRe = regexp.MustCompile(`(?:rendered|entered on or about|entered|dated|filed|imposed)\s+(` +
		monthAlt + `\s+\d{1,2},\s*\d{4})`)
)

// Case number patterns.
var (
	// citationRe matches a bracketed official citation like "[116 AD3d 1234]".
	citationRe = regexp.MustCompile(`\[(\d+ AD[^\]\r\n]*)\]`)

	// slipOpRe matches a slip opinion number like "2014 NY Slip Op 01234".
	slipOpRe = regexp.MustCompile(`\d{4}\s*NY\s*Slip\s*Op\s*\d+`)
)

// Court and county patterns.
var (
	courtRe = regexp.MustCompile(`Supreme Court|County Court|Court of Claims|Family Court|` +
		`Workers' Compensation Board|Division of Human Rights|` +
		`Unemployment Insurance Appeal Board|Department of Motor Vehicles`)

	// committeeRe is the court fallback for disciplinary matters, e.g.
	// " Grievance Committee for the Fourth Judicial District".
	committeeRe = regexp.MustCompile(`\s[A-Za-z]+ Committee(?: (?:[A-Z][A-Za-z]*|on|of|for|the|and))*`)

	countyRe = regexp.MustCompile(`[A-Za-z]+\sCounty`)

	// judgeRe captures the parenthetical naming the lower-court judge:
	// "Erie County (Penny M. Wolfgang, J.)".
	judgeRe = regexp.MustCompile(`(?:Court of Claims|Court|County) (\(.+?\))`)
)

// dispositionPatterns are tested independently; every hit is kept.
var dispositionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:unanimously\s+)?affirmed`),
	regexp.MustCompile(`(?:unanimously\s+)?modified`),
	regexp.MustCompile(`(?:unanimously\s+)?reversed`),
	regexp.MustCompile(`(?:unanimously\s+)?dismissed`),
	regexp.MustCompile(`(?:unanimously\s+)?held`),
	regexp.MustCompile(`(?:unanimously\s+)?reserved`),
	regexp.MustCompile(`(?:unanimously\s+)?remitted`),
}

// groundsPatterns are the appeal topics, in report order.
var groundsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)legal(?:ly)?\s+(?:in)?sufficien(?:t|cy)`),
	regexp.MustCompile(`(?i)speedy\s+trial`),
	regexp.MustCompile(`(?i)suppress(?:ion)?`),
	regexp.MustCompile(`(?i)sex\s+offender\s+registration`),
	regexp.MustCompile(`(?i)double\s+jeopardy`),
	regexp.MustCompile(`(?i)(?:in)?effective\s+assistance\s+of\s+counsel`),
	regexp.MustCompile(`(?i)coerc(?:ed|ion|ive)`),
	regexp.MustCompile(`(?i)incapacit(?:y|ated)`),
	regexp.MustCompile(`(?i)mental(?:ly)?\s+(?:ill(?:ness)?|disease|defect|capacity|health|retard(?:ed|ation))`),
	regexp.MustCompile(`(?i)resentenc(?:e|ed|ing)`),
	regexp.MustCompile(`(?i)sever(?:ance|ed)`),
	regexp.MustCompile(`(?i)youthful\s+offender`),
	regexp.MustCompile(`(?i)jurors?`),
	regexp.MustCompile(`(?i)(?:jury\s+)?instructions?|jury\s+charge`),
}

// defensePatterns identify the type of defense counsel.
var defensePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)public\s+defender`),
	regexp.MustCompile(`(?i)conflict\s+defender`),
	regexp.MustCompile(`(?i)legal\s+aid\s+bureau`),
	regexp.MustCompile(`(?i)legal\s+aid\s+society`),
}

// Conviction, panel and party patterns.
var (
	modeRe = regexp.MustCompile(`plea\s+of\s+guilty|jury\s+verdict|nonjury\s+trial`)

	// presentRe captures the panel after "Present—" up to the end of the line.
	presentRe = regexp.MustCompile(`Present[–—:]\s*([^\r\n]*)`)

	appellantRe  = regexp.MustCompile(`(?i)defendant-appellants?`)
	respondentRe = regexp.MustCompile(`(?i)defendant-respondents?`)

	actingRe = regexp.MustCompile(`\bActing\b`)

	// adaRe captures "Ashley R. Small of counsel" from "(Ashley R. Small of counsel)".
	adaRe = regexp.MustCompile(`\(([^()]*? of counsel)[);]`)

	misconductRe = regexp.MustCompile(`(?i)prosecut[a-z ]*misconduct`)
)
