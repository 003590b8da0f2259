// Package validator checks index requests before they are applied or
// queued, reporting every problem per field.
package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion"
)

const (
	maxIndexNameLength = 255
	maxRecords         = 10000
)

// ValidationError holds per-field validation failure messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(parts, "; ")
}

// Messages returns the failures as sorted "field: message" strings.
func (e *ValidationError) Messages() []string {
	return strings.Split(e.Error(), "; ")
}

// ValidateIndexRequest checks the index name, the id field name, and that
// every record carries a value for the id field and known data types.
func ValidateIndexRequest(req *ingestion.IndexRequest) error {
	errs := make(map[string]string)

	name := strings.TrimSpace(req.IndexName)
	switch {
	case name == "":
		errs["indexName"] = "indexName is required"
	case len(name) > maxIndexNameLength:
		errs["indexName"] = fmt.Sprintf("indexName must be at most %d characters", maxIndexNameLength)
	}
	if strings.TrimSpace(req.IDFieldName) == "" {
		errs["idFieldName"] = "idFieldName is required"
	}
	switch {
	case len(req.IndexRecords) == 0:
		errs["indexRecords"] = "at least one index record is required"
	case len(req.IndexRecords) > maxRecords:
		errs["indexRecords"] = fmt.Sprintf("at most %d index records are allowed per request", maxRecords)
	}

	for i, rec := range req.IndexRecords {
		key := fmt.Sprintf("indexRecords[%d]", i)
		if req.IDFieldName != "" && !hasValue(rec, req.IDFieldName) {
			errs[key] = fmt.Sprintf("record has no value for id field %s", req.IDFieldName)
			continue
		}
		for _, f := range rec.Fields {
			if strings.TrimSpace(f.Name) == "" {
				errs[key] = "field name is required"
				break
			}
			if _, err := store.ParseDataType(f.DataType); err != nil {
				errs[key] = fmt.Sprintf("field %s has unknown data type %q", f.Name, f.DataType)
				break
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func hasValue(rec ingestion.IndexRecord, field string) bool {
	for _, f := range rec.Fields {
		if f.Name == field && strings.TrimSpace(f.Value) != "" {
			return true
		}
	}
	return false
}
