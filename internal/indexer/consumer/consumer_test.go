package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndexer struct {
	err       error
	calls     int
	index     string
	idField   string
	docs      []store.Document
	source    string
	requestID string
}

func (f *fakeIndexer) Index(ctx context.Context, index, idField string, docs []store.Document, source string) error {
	f.calls++
	f.index, f.idField, f.docs, f.source = index, idField, docs, source
	f.requestID = logger.RequestID(ctx)
	return f.err
}

func message(t *testing.T, req ingestion.IndexRequest) []byte {
	t.Helper()
	data, err := json.Marshal(ingestion.IndexMessage{RequestID: "req-9", Request: req, EnqueuedAt: time.Now()})
	require.NoError(t, err)
	return data
}

func validRequest() ingestion.IndexRequest {
	return ingestion.IndexRequest{
		IndexName:   "People",
		IDFieldName: "Id",
		IndexRecords: []ingestion.IndexRecord{
			{Fields: []ingestion.IndexField{{Name: "Id", Value: "1", IsStored: true}, {Name: "LastName", Value: "Rubble", IsAnalyzed: true}}},
		},
	}
}

func TestHandleMessageIndexes(t *testing.T) {
	idx := &fakeIndexer{}
	err := HandleMessage(idx)(context.Background(), []byte("people"), message(t, validRequest()))
	require.NoError(t, err)

	assert.Equal(t, 1, idx.calls)
	assert.Equal(t, "People", idx.index)
	assert.Equal(t, "Id", idx.idField)
	assert.Equal(t, "kafka", idx.source)
	assert.Equal(t, "req-9", idx.requestID)
	require.Len(t, idx.docs, 1)
	assert.Len(t, idx.docs[0].Fields, 2)
}

func TestPoisonMessagesSkipped(t *testing.T) {
	idx := &fakeIndexer{}
	h := HandleMessage(idx)

	assert.NoError(t, h(context.Background(), nil, []byte("{not json")))

	invalid := validRequest()
	invalid.IDFieldName = ""
	assert.NoError(t, h(context.Background(), nil, message(t, invalid)))
	assert.Zero(t, idx.calls)

	idx.err = apperrors.New(apperrors.ErrFieldConversion, http.StatusBadRequest, "Unable to convert string 'x' to Numeric Field")
	assert.NoError(t, h(context.Background(), nil, message(t, validRequest())))
	assert.Equal(t, 1, idx.calls)
}

func TestStoreFailureIsReturned(t *testing.T) {
	idx := &fakeIndexer{err: apperrors.Wrap(apperrors.ErrStoreIO, http.StatusInternalServerError, errors.New("disk full"), "commit failed")}
	err := HandleMessage(idx)(context.Background(), nil, message(t, validRequest()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStoreIO))
}
