// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides the document-level context (criminal case,
// sex-offender proceeding) that gates several field extractors.
package classify

import (
	"unicode/utf8"

	"github.com/pdiddy/nyappeal/internal/textutil"
	"github.com/pdiddy/nyappeal/pkg/types"
)

const (
	criminalMarker    = "people v"
	sexOffenderMarker = "sex offender registration act"

	// criminalWindow is how many characters into the text the caption
	// marker may start.
	// The marker also appears in citations inside civil decisions.
	criminalWindow = 100
)

// Classify computes the ExtractionContext for doc. A sex-offender
// proceeding is always treated as criminal.
func Classify(doc types.Document) types.ExtractionContext {
	var ctx types.ExtractionContext

	if idx := textutil.IndexFold(doc.Text, criminalMarker); idx >= 0 && utf8.RuneCountInString(doc.Text[:idx]) < criminalWindow {
		ctx.IsCriminal = true
	}
	if textutil.IndexFold(doc.Text, sexOffenderMarker) >= 0 {
		ctx.IsSexOffenderCase = true
		ctx.IsCriminal = true
	}
	return ctx
}
