package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// MinScore is the similarity floor below which a document is never spliced
// into a prompt.
const MinScore = 0.3

const defaultTopK = 3

// ScoredDocument pairs a document with its similarity to a query.
type ScoredDocument struct {
	Document Document
	Score    float64
}

// Index is a flat in-memory list of pre-embedded policy documents, searched
// with a linear cosine-similarity scan. Appropriate at tens of documents.
type Index struct {
	documents []Document
	embedder  Embedder
	logger    zerolog.Logger
}

func NewIndex(embedder Embedder, logger zerolog.Logger) *Index {
	return &Index{
		documents: PolicyDocuments(),
		embedder:  embedder,
		logger:    logger,
	}
}

// Embedded reports whether the corpus carries embeddings.
func (idx *Index) Embedded() bool {
	return len(idx.documents) > 0 && len(idx.documents[0].Embedding) > 0
}

func (idx *Index) Len() int {
	return len(idx.documents)
}

// EmbedAll computes an embedding for every document, title and content
// together, the way the query side embeds free text.
func (idx *Index) EmbedAll(ctx context.Context) error {
	for i := range idx.documents {
		doc := &idx.documents[i]
		vec, err := idx.embedder.Embed(ctx, doc.Title+"\n"+doc.Content)
		if err != nil {
			return fmt.Errorf("failed to embed %s: %w", doc.ID, err)
		}
		doc.Embedding = vec

		idx.logger.Debug().
			Str("id", doc.ID).
			Int("done", i+1).
			Int("total", len(idx.documents)).
			Msg("embedded document")
	}
	return nil
}

// Search ranks the whole corpus against the query and returns the topK
// closest documents in descending similarity order.
func (idx *Index) Search(ctx context.Context, query string, topK int) ([]ScoredDocument, error) {
	if !idx.Embedded() {
		return nil, fmt.Errorf("knowledge base not embedded yet")
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	queryVec, err := idx.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results := make([]ScoredDocument, 0, len(idx.documents))
	for _, doc := range idx.documents {
		score, err := cosineSimilarity(queryVec, doc.Embedding)
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", doc.ID, err)
		}
		results = append(results, ScoredDocument{Document: doc, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// SearchPolicies is the tool-facing entry point: it searches the corpus and
// renders the matches as prompt-ready text. Matches below MinScore are
// dropped; an empty result points the customer at the support line.
func (idx *Index) SearchPolicies(ctx context.Context, query string) (string, error) {
	results, err := idx.Search(ctx, query, defaultTopK)
	if err != nil {
		return "", err
	}

	if len(results) == 0 || results[0].Score < MinScore {
		return "No relevant policy information found for this query. Please contact ERWIQ Airlines customer care at 1800-ERWIQ-AIR for assistance.", nil
	}

	var sb strings.Builder
	sb.WriteString("Here's the relevant policy information:\n\n")
	for _, result := range results {
		if result.Score < MinScore {
			continue
		}
		sb.WriteString(fmt.Sprintf("**%s**\n%s\n\n", result.Document.Title, result.Document.Content))
	}

	return sb.String(), nil
}

// Save writes the embedded corpus to disk so embeddings are computed once.
func (idx *Index) Save(path string) error {
	data, err := json.MarshalIndent(idx.documents, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal knowledge base: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write knowledge base: %w", err)
	}

	idx.logger.Info().Str("path", path).Int("documents", len(idx.documents)).Msg("knowledge base saved")
	return nil
}

// Load replaces the corpus with a previously saved embedded copy. A missing
// file is not an error; it reports false so the caller can embed fresh.
func (idx *Index) Load(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var docs []Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return false, fmt.Errorf("failed to parse knowledge base: %w", err)
	}

	if len(docs) == 0 || len(docs[0].Embedding) == 0 {
		return false, nil
	}

	idx.documents = docs
	idx.logger.Info().Str("path", path).Int("documents", len(docs)).Msg("knowledge base loaded")
	return true, nil
}

func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("cosine similarity dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("cosine similarity on empty vectors")
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, fmt.Errorf("cosine similarity with zero-magnitude vector")
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}
