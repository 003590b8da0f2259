package validator

import (
	"errors"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ingestion.IndexRequest {
	return ingestion.IndexRequest{
		IndexName:   "People",
		IDFieldName: "Id",
		IndexRecords: []ingestion.IndexRecord{{Fields: []ingestion.IndexField{
			{Name: "Id", Value: "1"},
			{Name: "BirthDate", Value: "19700101", DataType: "Date"},
		}}},
	}
}

func TestValidRequestPasses(t *testing.T) {
	req := validRequest()
	assert.NoError(t, ValidateIndexRequest(&req))
}

func TestMissingNamesAndRecords(t *testing.T) {
	err := ValidateIndexRequest(&ingestion.IndexRequest{})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "indexName")
	assert.Contains(t, ve.Fields, "idFieldName")
	assert.Contains(t, ve.Fields, "indexRecords")
	assert.Equal(t, []string{
		"idFieldName: idFieldName is required",
		"indexName: indexName is required",
		"indexRecords: at least one index record is required",
	}, ve.Messages())
}

func TestRecordWithoutIDValue(t *testing.T) {
	req := validRequest()
	req.IndexRecords = append(req.IndexRecords, ingestion.IndexRecord{Fields: []ingestion.IndexField{{Name: "Id", Value: "  "}}})

	err := ValidateIndexRequest(&req)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "record has no value for id field Id", ve.Fields["indexRecords[1]"])
	assert.NotContains(t, ve.Fields, "indexRecords[0]")
}

func TestUnknownDataType(t *testing.T) {
	req := validRequest()
	req.IndexRecords[0].Fields[1].DataType = "Decimal"

	err := ValidateIndexRequest(&req)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields["indexRecords[0]"], "unknown data type")
}
