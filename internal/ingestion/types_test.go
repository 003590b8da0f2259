package ingestion

import (
	"errors"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentsConvertsFields(t *testing.T) {
	req := IndexRequest{
		IndexName:   "People",
		IDFieldName: "Id",
		IndexRecords: []IndexRecord{{Fields: []IndexField{
			{Name: "Id", Value: "7", IsStored: true},
			{Name: "LastName", Value: "Rubble", IsAnalyzed: true, IsStored: true, Analyzer: "synonym"},
			{Name: "BirthDate", Value: "19700101", DataType: "date", IsStored: true},
		}}},
	}
	docs, err := req.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 1)

	fields := docs[0].Fields
	require.Len(t, fields, 3)
	assert.Equal(t, store.String, fields[0].DataType)
	assert.True(t, fields[1].Analyzed)
	assert.Equal(t, "synonym", fields[1].Analyzer)
	assert.Equal(t, store.Date, fields[2].DataType)
	id, ok := docs[0].Value("Id")
	assert.True(t, ok)
	assert.Equal(t, "7", id)
}

func TestDocumentsRejectsUnknownType(t *testing.T) {
	req := IndexRequest{IndexRecords: []IndexRecord{{Fields: []IndexField{{Name: "X", Value: "1", DataType: "Float"}}}}}
	_, err := req.Documents()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
