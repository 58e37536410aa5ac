package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"talent-match/internal/logger"
)

// CandidateHit is one semantic-search result from the vector index.
type CandidateHit struct {
	CandidateID string
	Name        string
	Email       string
	Score       float32
}

// VectorIndex keeps one embedding per candidate CV for semantic search.
// The persistence store stays the source of truth; the index is rebuildable.
type VectorIndex interface {
	InitCollection() error
	UpsertCandidate(ctx context.Context, candidateID uuid.UUID, name, email string, embedding []float32) error
	SearchCandidates(ctx context.Context, queryEmbedding []float32, limit int) ([]CandidateHit, error)
}

type qdrantIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQdrantIndex(urlStr, apiKey, collectionName string) (VectorIndex, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantIndex{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 dimension
	}, nil
}

// InitCollection implements VectorIndex.
func (q *qdrantIndex) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		logger.Info().Str("collection", q.collectionName).Msg("✅ Qdrant collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	logger.Info().Str("collection", q.collectionName).Msg("✅ Qdrant collection created")
	return nil
}

// UpsertCandidate implements VectorIndex. The candidate's own UUID is the
// point ID, so re-ingestion overwrites the previous vector.
func (q *qdrantIndex) UpsertCandidate(ctx context.Context, candidateID uuid.UUID, name, email string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(candidateID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"candidate_id": candidateID.String(),
			"name":         name,
			"email":        email,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}
	return nil
}

// SearchCandidates implements VectorIndex.
func (q *qdrantIndex) SearchCandidates(ctx context.Context, queryEmbedding []float32, limit int) ([]CandidateHit, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var hits []CandidateHit
	for _, point := range searchResult {
		hit := CandidateHit{Score: point.Score}
		if v, ok := point.Payload["candidate_id"]; ok {
			hit.CandidateID = v.GetStringValue()
		}
		if v, ok := point.Payload["name"]; ok {
			hit.Name = v.GetStringValue()
		}
		if v, ok := point.Payload["email"]; ok {
			hit.Email = v.GetStringValue()
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
