// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract is the field-extraction engine. Each output field has a
// Strategy; the Engine runs them in canonical field order, resolves the
// derived fields and assembles one Record per document.
package extract

import (
	"go.uber.org/zap"

	"github.com/pdiddy/nyappeal/internal/classify"
	"github.com/pdiddy/nyappeal/internal/sanitize"
	"github.com/pdiddy/nyappeal/internal/textutil"
	"github.com/pdiddy/nyappeal/pkg/types"
)

// Rule binds a field to its strategy.
type Rule struct {
	Key types.FieldKey

	// Summary describes the rule for the fields listing.
	Summary string

	// Strategy is nil for derived fields, which the resolver fills.
	Strategy Strategy

	// Requires names a field that must be non-empty before Strategy runs.
	Requires types.FieldKey

	// WarnOnMiss reports whether an empty result deserves a diagnostic.
	WarnOnMiss func(ctx types.ExtractionContext) bool
}

func always(types.ExtractionContext) bool { return true }

func criminalOnly(ctx types.ExtractionContext) bool { return ctx.IsCriminal }

// DefaultRules returns the rule table in canonical field order.
func DefaultRules() []Rule {
	return []Rule{
		{Key: types.FieldFile, Summary: "document name", Strategy: StrategyFunc(extractFile)},
		{Key: types.FieldCasenumber, Summary: `[N AD...] citation, else "YYYY NY Slip Op N"`, Strategy: StrategyFunc(extractCaseNumber)},
		{Key: types.FieldCivilCriminal, Summary: `"K" for criminal cases, else "C"`, Strategy: StrategyFunc(extractCivilCriminal)},
		{Key: types.FieldCourt, Summary: "known court names, else \"<word> Committee ...\"", Strategy: StrategyFunc(extractCourt), WarnOnMiss: always},
		{Key: types.FieldCounty, Summary: `"<word> County", skipping "the County"`, Strategy: StrategyFunc(extractCounty)},
		{Key: types.FieldJudge, Summary: "parenthetical after Court/County", Strategy: StrategyFunc(extractJudge)},
		{Key: types.FieldDistrictAttorney, Summary: `line before ", District Attorney" (criminal only)`, Strategy: StrategyFunc(extractDistrictAttorney)},
		{Key: types.FieldADA, Summary: `"(... of counsel)" after the district attorney`, Strategy: StrategyFunc(extractADA), Requires: types.FieldDistrictAttorney},
		{Key: types.FieldKeywords, Summary: "disposition words", Strategy: StrategyFunc(extractKeywords)},
		{Key: types.FieldGroundsForAppeal, Summary: "appeal topics", Strategy: StrategyFunc(extractGrounds)},
		{Key: types.FieldFirstDate, Summary: `"rendered|entered|dated|filed|imposed <date>"`, Strategy: StrategyFunc(extractFirstDate), WarnOnMiss: always},
		{Key: types.FieldAppealDate, Summary: "first <Month day, year>", Strategy: StrategyFunc(extractAppealDate)},
		{Key: types.FieldGapDays, Summary: "days from FirstDate to AppealDate (derived)"},
		{Key: types.FieldModeOfConviction, Summary: "plea of guilty | jury verdict | nonjury trial (criminal only)", Strategy: StrategyFunc(extractMode), WarnOnMiss: criminalOnly},
		{Key: types.FieldCrimes, Summary: "text after the mode of conviction (derived)"},
		{Key: types.FieldJudges, Summary: `"Present—" line, else names before "concur."`, Strategy: StrategyFunc(extractJudges)},
		{Key: types.FieldDefense, Summary: "public defender | conflict defender | legal aid", Strategy: StrategyFunc(extractDefense)},
		{Key: types.FieldDefendantAppellant, Summary: `line before "defendant-appellant"`, Strategy: StrategyFunc(extractAppellant)},
		{Key: types.FieldDefendantRespondent, Summary: `line before "defendant-respondent"`, Strategy: StrategyFunc(extractRespondent)},
		{Key: types.FieldHarmlessError, Summary: `sentence containing "harmless"`, Strategy: StrategyFunc(extractHarmless)},
		{Key: types.FieldProsecutorialMisconduct, Summary: "prosecut... misconduct", Strategy: StrategyFunc(extractMisconduct)},
		{Key: types.FieldDocumentLength, Summary: "character count", Strategy: StrategyFunc(extractDocumentLength)},
	}
}

// Engine assembles records from documents.
type Engine struct {
	rules     []Rule
	sanitizer *sanitize.Sanitizer
	logger    *zap.Logger
}

// New returns an Engine using the default rules. A nil logger discards
// diagnostics.
func New(s *sanitize.Sanitizer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		rules:     DefaultRules(),
		sanitizer: s,
		logger:    logger,
	}
}

// Rules returns the engine's rule table.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Assemble extracts every field of doc and updates stats. The returned
// record has an entry for every FieldKey.
func (e *Engine) Assemble(doc types.Document, stats *Statistics) types.Record {
	stats.Documents++

	ctx := classify.Classify(doc)
	flat := textutil.Flatten(doc.Text)
	rec := types.NewRecord()
	log := e.logger.With(zap.String("document", doc.Name))

	for _, rule := range e.rules {
		if rule.Strategy == nil {
			continue
		}
		if rule.Requires != "" && rec[rule.Requires] == "" {
			continue
		}
		value := e.sanitizer.Clean(rule.Strategy.Extract(doc, flat, ctx))
		rec[rule.Key] = value
		if value == "" && rule.WarnOnMiss != nil && rule.WarnOnMiss(ctx) {
			log.Warn("field not found", zap.String("field", string(rule.Key)))
		}
	}

	e.resolve(doc, ctx, rec, stats, log)
	stats.countHits(rec)
	return rec
}
