// Package ingestion defines the index request wire format shared by the
// synchronous put endpoint and the Kafka index-request pipeline.
package ingestion

import (
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
)

// IndexField is one field of an index record as sent by clients.
type IndexField struct {
	Name          string `json:"name"`
	Value         string `json:"value"`
	IsStored      bool   `json:"isStored"`
	UseTermVector bool   `json:"useTermVector"`
	DataType      string `json:"dataType"`
	IsAnalyzed    bool   `json:"isAnalyzed"`
	Analyzer      string `json:"analyzer,omitempty"`
}

type IndexRecord struct {
	Fields []IndexField `json:"fields"`
}

// IndexRequest upserts IndexRecords into IndexName. IDFieldName names the
// field whose value identifies each record.
type IndexRequest struct {
	IndexName    string        `json:"indexName"`
	IDFieldName  string        `json:"idFieldName"`
	IndexRecords []IndexRecord `json:"indexRecords"`
}

// Documents converts the records into store documents. Data types are
// checked here; values are converted when the documents are indexed.
func (r IndexRequest) Documents() ([]store.Document, error) {
	docs := make([]store.Document, 0, len(r.IndexRecords))
	for _, rec := range r.IndexRecords {
		doc := store.Document{Fields: make([]store.Field, 0, len(rec.Fields))}
		for _, f := range rec.Fields {
			dt, err := store.ParseDataType(f.DataType)
			if err != nil {
				return nil, err
			}
			doc.Fields = append(doc.Fields, store.Field{
				Name:       f.Name,
				Value:      f.Value,
				Analyzed:   f.IsAnalyzed,
				Stored:     f.IsStored,
				TermVector: f.UseTermVector,
				DataType:   dt,
				Analyzer:   f.Analyzer,
			})
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// IndexMessage is the Kafka payload of an enqueued index request.
type IndexMessage struct {
	RequestID  string       `json:"request_id"`
	Request    IndexRequest `json:"request"`
	EnqueuedAt time.Time    `json:"enqueued_at"`
}
