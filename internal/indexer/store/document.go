package store

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/blevesearch/bleve/v2/document"
	index "github.com/blevesearch/bleve_index_api"
)

// DataType is the declared type of a field value.
type DataType string

const (
	String   DataType = "String"
	Long     DataType = "Long"
	Date     DataType = "Date"
	DateTime DataType = "DateTime"
)

// ParseDataType accepts the type names case-insensitively; empty means
// String.
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string":
		return String, nil
	case "long":
		return Long, nil
	case "date":
		return Date, nil
	case "datetime":
		return DateTime, nil
	default:
		return "", apperrors.Newf(apperrors.ErrInvalidInput, http.StatusBadRequest, "unknown data type %q", s)
	}
}

// Field is one named value of a document.
type Field struct {
	Name       string
	Value      string
	Analyzed   bool
	Stored     bool
	TermVector bool
	DataType   DataType
	// Analyzer selects the analyzer of an analyzed string field; see
	// analysis.Analyzers.For.
	Analyzer string
}

// Document is an ordered set of fields.
type Document struct {
	Fields []Field
}

// Value returns the value of the first field called name.
func (d Document) Value(name string) (string, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// build converts d into a bleve document whose identity is the value of
// idField.
func build(idField string, d Document, analyzers *analysis.Analyzers) (*document.Document, error) {
	id, ok := d.Value(idField)
	if !ok || strings.TrimSpace(id) == "" {
		return nil, apperrors.Newf(apperrors.ErrInvalidInput, http.StatusBadRequest,
			"document has no value for id field %s", idField)
	}

	doc := document.NewDocument(id)
	for _, f := range d.Fields {
		if f.Name == idField {
			doc.AddField(identityField(f, analyzers))
			continue
		}
		fields, err := buildField(f, analyzers)
		if err != nil {
			return nil, err
		}
		for _, bf := range fields {
			doc.AddField(bf)
		}
	}
	return doc, nil
}

// identityField indexes the id value as a single case-preserved term so it
// matches the document's identity exactly.
func identityField(f Field, analyzers *analysis.Analyzers) document.Field {
	opts := index.IndexField
	if f.Stored {
		opts |= index.StoreField
	}
	return document.NewTextFieldCustom(f.Name, nil, []byte(f.Value), opts, analyzers.Exact)
}

// buildField returns the bleve fields for f. Numeric types are indexed twice
// under the same name: a keyword term holding the canonical decimal (stored
// when requested, so the exact value round-trips) and a numeric term for
// range matching.
func buildField(f Field, analyzers *analysis.Analyzers) ([]document.Field, error) {
	opts := index.IndexField
	if f.Stored {
		opts |= index.StoreField
	}
	if f.TermVector {
		opts |= index.IncludeTermVectors
	}

	dataType := f.DataType
	if dataType == "" {
		dataType = String
	}

	switch dataType {
	case String:
		an, err := analyzers.For(f.Analyzer, f.Analyzed)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrInvalidInput, http.StatusBadRequest, "field %s: %v", f.Name, err)
		}
		return []document.Field{
			document.NewTextFieldCustom(f.Name, nil, []byte(f.Value), opts, an),
		}, nil
	case Long, DateTime:
		n, err := strconv.ParseInt(strings.TrimSpace(f.Value), 10, 64)
		if err != nil {
			if dataType == Long {
				return nil, fieldConversionError("Unable to convert string '%s' to Numeric Field", f.Value)
			}
			return nil, fieldConversionError("Unable to convert date string '%s' to numeric", f.Value)
		}
		return numericFields(f.Name, n, opts, analyzers), nil
	case Date:
		n, err := strconv.ParseInt(strings.TrimSpace(f.Value), 10, 32)
		if err != nil {
			return nil, fieldConversionError("Unable to convert date string '%s' to numeric", f.Value)
		}
		return numericFields(f.Name, n, opts, analyzers), nil
	default:
		return nil, apperrors.New(apperrors.ErrInvalidInput, http.StatusBadRequest, fmt.Sprintf("unknown data type %q", dataType))
	}
}

func numericFields(name string, n int64, opts index.FieldIndexingOptions, analyzers *analysis.Analyzers) []document.Field {
	canonical := strconv.FormatInt(n, 10)
	return []document.Field{
		document.NewTextFieldCustom(name, nil, []byte(canonical), opts&^index.IncludeTermVectors, analyzers.Keyword),
		document.NewNumericFieldWithIndexingOptions(name, nil, float64(n), index.IndexField),
	}
}
