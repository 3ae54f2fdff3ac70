package scim

import (
	"testing"
)

func TestParseFilter(t *testing.T) {
	testCases := []struct {
		input    string
		expected Filter
	}{
		{`userName eq "a@b.com"`, Filter{Field: FieldEmail, Op: OpEq, Value: "a@b.com"}},
		{`emails.value eq "a@b.com"`, Filter{Field: FieldEmail, Op: OpEq, Value: "a@b.com"}},
		{`userName co "a@"`, Filter{Field: FieldEmail, Op: OpContains, Value: "a@"}},
		{`userName sw "jane"`, Filter{Field: FieldEmail, Op: OpStartsWith, Value: "jane"}},
		{`userName ew ".org"`, Filter{Field: FieldEmail, Op: OpEndsWith, Value: ".org"}},
		{`name.givenName sw "Ja"`, Filter{Field: FieldName, Op: OpStartsWith, Value: "Ja"}},
		{`name.familyName ew "oe"`, Filter{Field: FieldName, Op: OpEndsWith, Value: "oe"}},
		{`active eq "true"`, Filter{Field: FieldActive, Op: OpEq, Value: "true"}},
		{`name.givenName co "John Ronald"`, Filter{Field: FieldName, Op: OpContains, Value: "John Ronald"}},
		{`userName eq ""`, Filter{Field: FieldEmail, Op: OpEq, Value: ""}},
		// Unknown attributes map to the email field.
		{`department eq "IT"`, Filter{Field: FieldEmail, Op: OpEq, Value: "IT"}},
		// "ne" parses but is not honored.
		{`userName ne "a@b.com"`, Filter{}},
		// Malformed expressions degrade to match-all.
		{`userName eq a@b.com`, Filter{}},
		{`userName eq`, Filter{}},
		{`userName`, Filter{}},
		{`userName gt "a"`, Filter{}},
		{`userName eq "`, Filter{}},
		{``, Filter{}},
		{`   `, Filter{}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual := ParseFilter(tc.input)
			if actual != tc.expected {
				t.Errorf("ParseFilter(%q) = %+v; want %+v", tc.input, actual, tc.expected)
			}
		})
	}
}
