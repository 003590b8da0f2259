// Package person maps person search requests onto the configured person
// query template and runs queued batches of them.
package person

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
)

// birthDateLayouts are tried in order; the index stores yyyyMMdd.
var birthDateLayouts = []string{"20060102", "2006-01-02", time.RFC3339}

// Request describes one person to look for. The weights, tolerances and
// MinimumFieldMatches fill the template's placeholders; zero leaves the
// placeholder unset so the template default applies.
type Request struct {
	WiseID         *int64 `json:"wiseId,omitempty"`
	LocalPersonID  string `json:"localPersonId,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	MiddleName     string `json:"middleName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	BirthDate      string `json:"birthDate,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Suffix         string `json:"suffix,omitempty"`
	EducatorNumber *int64 `json:"educatorNumber,omitempty"`

	Explain        bool `json:"explain"`
	TopResultCount int  `json:"topResultCount"`

	WiseIDExactMatchWeight            float64 `json:"wiseIdExactMatchWeight,omitempty"`
	WiseIDPartialMatchWeight          float64 `json:"wiseIdPartialMatchWeight,omitempty"`
	LocalRowKeyExactMatchWeight       float64 `json:"localRowKeyExactMatchWeight,omitempty"`
	MinimumFieldMatches               int     `json:"minimumFieldMatches,omitempty"`
	FirstNameWithSynonymsMatchWeight  float64 `json:"firstNameWithSynonymsMatchWeight,omitempty"`
	FirstNameTolerance                float64 `json:"firstNameTolerance,omitempty"`
	FirstNamePhoneticWeight           float64 `json:"firstNamePhoneticWeight,omitempty"`
	MiddleNameWithSynonymsMatchWeight float64 `json:"middleNameWithSynonymsMatchWeight,omitempty"`
	MiddleNameTolerance               float64 `json:"middleNameTolerance,omitempty"`
	MiddleNamePhoneticWeight          float64 `json:"middleNamePhoneticWeight,omitempty"`
	LastNameWithSynonymsMatchWeight   float64 `json:"lastNameWithSynonymsMatchWeight,omitempty"`
	LastNameTolerance                 float64 `json:"lastNameTolerance,omitempty"`
	LastNamePhoneticWeight            float64 `json:"lastNamePhoneticWeight,omitempty"`
	BirthDateExactMatchWeight         float64 `json:"birthDateExactMatchWeight,omitempty"`
	BirthDatePartialMatchWeight       float64 `json:"birthDatePartialMatchWeight,omitempty"`
	GenderExactMatchWeight            float64 `json:"genderExactMatchWeight,omitempty"`
	SuffixExactMatchWeight            float64 `json:"suffixExactMatchWeight,omitempty"`
	EducatorNumberExactMatchWeight    float64 `json:"educatorNumberExactMatchWeight,omitempty"`
}

// Fields returns the search field values read by the person template.
// Absent values are empty strings, which field queries skip.
func (r Request) Fields() (map[string]string, error) {
	birthDate, err := normalizeBirthDate(r.BirthDate)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"WiseId":         optionalInt(r.WiseID),
		"LocalPersonId":  r.LocalPersonID,
		"FirstName":      r.FirstName,
		"MiddleName":     r.MiddleName,
		"LastName":       r.LastName,
		"BirthDate":      birthDate,
		"Gender":         r.Gender,
		"Suffix":         r.Suffix,
		"EducatorNumber": optionalInt(r.EducatorNumber),
	}, nil
}

// Tokens returns the placeholder values of the person template.
func (r Request) Tokens() map[string]string {
	tokens := make(map[string]string)
	set := func(name string, v float64) {
		if v != 0 {
			tokens[name] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	set("WiseIdExactMatchWeight", r.WiseIDExactMatchWeight)
	set("WiseIdPartialMatchWeight", r.WiseIDPartialMatchWeight)
	set("LocalRowKeyExactMatchWeight", r.LocalRowKeyExactMatchWeight)
	set("MinimumFieldMatches", float64(r.MinimumFieldMatches))
	set("FirstNameWithSynonymsMatchWeight", r.FirstNameWithSynonymsMatchWeight)
	set("FirstNameTolerance", r.FirstNameTolerance)
	set("FirstNamePhoneticWeight", r.FirstNamePhoneticWeight)
	set("MiddleNameWithSynonymsMatchWeight", r.MiddleNameWithSynonymsMatchWeight)
	set("MiddleNameTolerance", r.MiddleNameTolerance)
	set("MiddleNamePhoneticWeight", r.MiddleNamePhoneticWeight)
	set("LastNameWithSynonymsMatchWeight", r.LastNameWithSynonymsMatchWeight)
	set("LastNameTolerance", r.LastNameTolerance)
	set("LastNamePhoneticWeight", r.LastNamePhoneticWeight)
	set("BirthDateExactMatchWeight", r.BirthDateExactMatchWeight)
	set("BirthDatePartialMatchWeight", r.BirthDatePartialMatchWeight)
	set("GenderExactMatchWeight", r.GenderExactMatchWeight)
	set("SuffixExactMatchWeight", r.SuffixExactMatchWeight)
	set("EducatorNumberExactMatchWeight", r.EducatorNumberExactMatchWeight)
	return tokens
}

func optionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func normalizeBirthDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("20060102"), nil
		}
	}
	return "", apperrors.Newf(apperrors.ErrInvalidInput, http.StatusBadRequest,
		"birthDate %q is not a date (expected yyyyMMdd or yyyy-MM-dd)", s)
}
