// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/nyappeal/pkg/types"
)

func TestClassify(t *testing.T) {
	padding := strings.Repeat("x", 500)

	tests := []struct {
		name        string
		text        string
		criminal    bool
		sexOffender bool
	}{
		{
			name:     "caption at offset zero",
			text:     "People v Smith\n2010 NY Slip Op 01234",
			criminal: true,
		},
		{
			name:     "caption case-insensitive",
			text:     "THE PEOPLE V JONES",
			criminal: true,
		},
		{
			name: "caption at offset 500",
			text: padding + "People v Smith",
		},
		{
			name: "caption just outside window",
			text: strings.Repeat("y", 100) + "People v Smith",
		},
		{
			name:     "caption just inside window",
			text:     strings.Repeat("y", 99) + "People v Smith",
			criminal: true,
		},
		{
			name:     "multibyte text before caption counts as characters",
			text:     strings.Repeat("—", 60) + "People v Doe\n",
			criminal: true,
		},
		{
			name: "multibyte text pushes caption outside window",
			text: strings.Repeat("§", 100) + "People v Doe\n",
		},
		{
			name:        "sex offender forces criminal",
			text:        "Matter of Doe\nrisk level under the Sex Offender Registration Act",
			criminal:    true,
			sexOffender: true,
		},
		{
			name: "no markers",
			text: "Matter of Roe v Town of Greece",
		},
		{
			name: "empty",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(types.Document{Name: "doc.txt", Text: tt.text})
			assert.Equal(t, tt.criminal, got.IsCriminal, "IsCriminal")
			assert.Equal(t, tt.sexOffender, got.IsSexOffenderCase, "IsSexOffenderCase")
		})
	}
}
