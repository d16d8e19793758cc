// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/nyappeal/internal/textutil"
	"github.com/pdiddy/nyappeal/pkg/types"
)

const (
	dateLayout    = "January 2, 2006"
	secondsPerDay = 24 * 60 * 60
)

// sexOffenderCrime stands in for Crimes in risk-level proceedings, which
// have no mode of conviction.
const sexOffenderCrime = "risk pursuant to Sex Offender Registration Act"

// crimeWrapWindow is how close a line break must follow the conviction
// phrase for the crime text to be read from the next line.
const crimeWrapWindow = 5

// resolve fills the fields that depend on other fields. It runs after all
// base strategies.
func (e *Engine) resolve(doc types.Document, ctx types.ExtractionContext, rec types.Record, stats *Statistics, log *zap.Logger) {
	rec[types.FieldGapDays] = ""
	if rec[types.FieldFirstDate] != "" && rec[types.FieldAppealDate] != "" {
		gap, err := GapDays(rec[types.FieldFirstDate], rec[types.FieldAppealDate])
		if err != nil {
			stats.DateProblems++
			log.Warn("date parse failed",
				zap.String("first_date", rec[types.FieldFirstDate]),
				zap.String("appeal_date", rec[types.FieldAppealDate]),
				zap.Error(err))
		} else if gap > 0 {
			rec[types.FieldGapDays] = strconv.Itoa(gap)
		}
	}

	rec[types.FieldCrimes] = e.sanitizer.Clean(crimes(doc.Text, ctx, rec[types.FieldModeOfConviction]))

	for _, p := range []struct {
		key types.FieldKey
		re  *regexp.Regexp
	}{
		{types.FieldDefendantAppellant, appellantRe},
		{types.FieldDefendantRespondent, respondentRe},
	} {
		if rec[p.key] == "" {
			continue
		}
		if line, ok := partyLine(doc.Text, p.re); ok {
			rec[p.key] = e.sanitizer.Line(line)
		}
	}
}

// ParseDate reads a "Month day, year" date out of s. Surrounding text such
// as a leading verb is ignored.
func ParseDate(s string) (time.Time, error) {
	m := dateRe.FindString(s)
	if m == "" {
		return time.Time{}, fmt.Errorf("no date in %q", s)
	}
	t, err := time.Parse(dateLayout, strings.Join(strings.Fields(m), " "))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", m, err)
	}
	return t, nil
}

// GapDays returns the number of whole days from first to appeal. The
// result may be zero or negative.
func GapDays(first, appeal string) (int, error) {
	f, err := ParseDate(first)
	if err != nil {
		return 0, err
	}
	a, err := ParseDate(appeal)
	if err != nil {
		return 0, err
	}
	return int((a.Unix() - f.Unix()) / secondsPerDay), nil
}

// crimes returns the text between the conviction phrase and the next
// period. A line break within crimeWrapWindow characters of the phrase is
// skipped.
func crimes(text string, ctx types.ExtractionContext, mode string) string {
	if !ctx.IsCriminal {
		return ""
	}
	if mode == "" {
		if ctx.IsSexOffenderCase {
			return sexOffenderCrime
		}
		return ""
	}
	loc := modeRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	start := loc[1]
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 && nl < crimeWrapWindow {
		start += nl + 1
	}
	crime, err := textutil.ForwardTo(text, ".", start)
	if err != nil {
		return ""
	}
	return crime
}

// partyLine returns the line above the first match of re; party names sit
// one line above their procedural label.
func partyLine(text string, re *regexp.Regexp) (string, bool) {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	line, err := textutil.PreviousLine(text, loc[0])
	if err != nil {
		return "", false
	}
	return line, true
}
