package main

import (
	"context"
	"log"
	"strings"

	"talent-match/internal/config"
	"talent-match/internal/repositories"
	"talent-match/internal/services"
)

// Rebuilds the Qdrant candidate index from the embeddings stored in Postgres.
// Useful after wiping the vector store; no Gemini calls are made.
func main() {
	log.Println("🚀 Starting candidate reindex...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	candidateRepo := repositories.NewCandidateRepository(db)

	vectorIndex, err := services.NewQdrantIndex(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	docs, err := candidateRepo.FindAllCVs()
	if err != nil {
		log.Fatalf("❌ Failed to load CV documents: %v", err)
	}

	ctx := context.Background()

	successCount := 0
	skipCount := 0
	failCount := 0

	for _, doc := range docs {
		if len(doc.Embedding) == 0 {
			log.Printf("   ⚠️  Candidate %s has no stored embedding, skipping...", doc.CandidateID)
			skipCount++
			continue
		}

		err := vectorIndex.UpsertCandidate(
			ctx,
			doc.CandidateID,
			doc.Candidate.Name,
			doc.Candidate.Email,
			doc.Embedding,
		)
		if err != nil {
			log.Printf("   ❌ Failed to index candidate %s: %v", doc.CandidateID, err)
			failCount++
			continue
		}

		successCount++
		if successCount%25 == 0 {
			log.Printf("   📊 Progress: %d/%d candidates indexed", successCount, len(docs))
		}
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Reindex Summary:")
	log.Printf("   ✅ Indexed: %d candidates", successCount)
	log.Printf("   ⚠️  Skipped: %d candidates", skipCount)
	log.Printf("   ❌ Failed: %d candidates", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some candidates failed to index. Please check the logs above.")
		return
	}

	log.Println("✅ Reindex complete!")
}
