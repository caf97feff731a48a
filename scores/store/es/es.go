/*
	es provides a scores.Store implementation backed by an elasticsearch
	cluster, so computed centrality scores can be queried alongside other
	per-vertex data.
*/

package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/mycok/uCentral/scores"
)

// Static and compile-time check to ensure ElasticsearchStore implements
// the Store interface.
var _ scores.Store = (*ElasticsearchStore)(nil)

// The name of the elasticsearch index to use.
const indexName = "centrality"

// JSON data structure that defines the properties of an elasticsearch
// document.
var esMappings = `
{
  "mappings" : {
    "properties": {
      "Vertex": {"type": "unsigned_long"},
      "Centrality": {"type": "double"}
    }
  }
}`

type esDoc struct {
	Vertex     uint64  `json:"Vertex"`
	Centrality float64 `json:"Centrality"`
}

type esUpdateRes struct {
	Result string `json:"result"`
}

type esSearchRes struct {
	Hits esSearchResHits `json:"hits"`
}

type esSearchResHits struct {
	HitList []esHitWrapper `json:"hits"`
}

type esHitWrapper struct {
	DocSource esDoc `json:"_source"`
}

type esErrorRes struct {
	Error esError `json:"error"`
}

type esError struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func (e esError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Reason)
}

// ElasticsearchStore is a score sink that persists centrality scores into
// an elasticsearch index keyed by vertex ID.
type ElasticsearchStore struct {
	client      *elasticsearch.Client
	refreshOpts func(*esapi.UpdateRequest)
}

// NewElasticsearchStore instantiates and returns a score store backed by
// the provided elasticsearch nodes.
func NewElasticsearchStore(
	esNodes []string, shouldSyncUpdates bool,
) (*ElasticsearchStore, error) {

	cfg := elasticsearch.Config{
		Addresses: esNodes,
	}

	c, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	if err = initIndex(c); err != nil {
		return nil, err
	}

	refreshOpts := c.Update.WithRefresh("false")

	if shouldSyncUpdates {
		refreshOpts = c.Update.WithRefresh("true")
	}

	return &ElasticsearchStore{
		client:      c,
		refreshOpts: refreshOpts,
	}, nil
}

// UpsertScore creates or overwrites the score of a vertex.
func (s *ElasticsearchStore) UpsertScore(vertex uint64, score float64) error {
	var buf bytes.Buffer

	updateQuery := map[string]interface{}{
		"doc": esDoc{
			Vertex:     vertex,
			Centrality: score,
		},
		"doc_as_upsert": true,
	}

	if err := json.NewEncoder(&buf).Encode(updateQuery); err != nil {
		return fmt.Errorf("upsert score: %w", err)
	}

	res, err := s.client.Update(
		indexName, strconv.FormatUint(vertex, 10), &buf, s.refreshOpts,
	)
	if err != nil {
		return fmt.Errorf("upsert score: %w", err)
	}

	var updateRes esUpdateRes
	if err = unmarshalResponse(res, &updateRes); err != nil {
		return fmt.Errorf("upsert score: %w", err)
	}

	return nil
}

// Score looks up the stored score of a vertex.
func (s *ElasticsearchStore) Score(vertex uint64) (float64, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"Vertex": vertex,
			},
		},
		"from": 0,
		"size": 1,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("score: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(context.Background()),
		s.client.Search.WithIndex(indexName),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, fmt.Errorf("score: %w", err)
	}

	var searchRes esSearchRes
	if err = unmarshalResponse(res, &searchRes); err != nil {
		return 0, fmt.Errorf("score: %w", err)
	}

	if len(searchRes.Hits.HitList) == 0 {
		return 0, fmt.Errorf("score: vertex %d: %w", vertex, scores.ErrNotFound)
	}

	return searchRes.Hits.HitList[0].DocSource.Centrality, nil
}

func initIndex(client *elasticsearch.Client) error {
	mappingsReader := strings.NewReader(esMappings)

	res, err := client.Indices.Create(
		indexName,
		client.Indices.Create.WithBody(mappingsReader),
	)
	// For cases where index creation fails due to client issues,
	// ie network connection issues.
	if err != nil {
		return fmt.Errorf("failed to create ES index: %w", err)
	}

	// For cases where index creation fails due to other issues, ie invalid
	// params.
	if res.IsError() {
		err = unmarshalResponse(res, nil)

		esErr, isEsErr := err.(esError)
		if isEsErr && esErr.Type == "resource_already_exists_exception" {
			return nil
		}

		return fmt.Errorf("failed to create ES index: %w", err)
	}

	return nil
}

func unmarshalResponse(res *esapi.Response, into interface{}) error {
	defer func() {
		res.Body.Close()
	}()

	if res.IsError() {
		var errRes esErrorRes
		if err := json.NewDecoder(res.Body).Decode(&errRes); err != nil {
			return err
		}

		return errRes.Error
	}

	return json.NewDecoder(res.Body).Decode(into)
}
