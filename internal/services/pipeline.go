package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"talent-match/internal/logger"
	"talent-match/internal/models"
	"talent-match/internal/repositories"
)

// BatchItem is one CV to ingest against a job.
type BatchItem struct {
	FilePath       string
	CandidateName  string
	CandidateEmail string
}

// itemOutcome says what happened to a single batch item, so the pipeline can
// tell "skip and move on" apart from "this item failed" without blanket
// error swallowing.
type itemOutcome int

const (
	itemProcessed itemOutcome = iota
	itemSkipped
	itemFailed
)

// IngestionPipeline turns uploaded CVs into persisted candidates, documents,
// skills and rankings. Each batch runs detached; the returned task handle is
// the only way the caller observes it.
type IngestionPipeline interface {
	Run(jobID uuid.UUID, items []BatchItem) *BatchTask
}

type ingestionPipeline struct {
	jobs      repositories.JobRepository
	store     repositories.IngestionRepository
	extractor DocumentTextExtractor
	segmenter SectionSegmenter
	estimator ExperienceEstimator
	skills    SkillExtractor
	scorer    SimilarityScorer
	embedder  EmbeddingService
	vectors   VectorIndex
	registry  *TaskRegistry
}

func NewIngestionPipeline(
	jobs repositories.JobRepository,
	store repositories.IngestionRepository,
	extractor DocumentTextExtractor,
	segmenter SectionSegmenter,
	estimator ExperienceEstimator,
	skills SkillExtractor,
	scorer SimilarityScorer,
	embedder EmbeddingService,
	vectors VectorIndex,
	registry *TaskRegistry,
) IngestionPipeline {
	return &ingestionPipeline{
		jobs:      jobs,
		store:     store,
		extractor: extractor,
		segmenter: segmenter,
		estimator: estimator,
		skills:    skills,
		scorer:    scorer,
		embedder:  embedder,
		vectors:   vectors,
		registry:  registry,
	}
}

// Run implements IngestionPipeline. It registers a task and returns it
// immediately; the batch itself runs on its own goroutine.
func (p *ingestionPipeline) Run(jobID uuid.UUID, items []BatchItem) *BatchTask {
	task := newBatchTask(jobID, len(items))
	p.registry.Add(task)

	go p.process(task, items)

	return task
}

func (p *ingestionPipeline) process(task *BatchTask, items []BatchItem) {
	task.setStatus(BatchRunning)
	log := logger.Logger.With().
		Str("batch_id", task.ID.String()).
		Str("job_id", task.JobID.String()).
		Logger()
	log.Info().Int("items", len(items)).Msg("batch ingestion started")

	job, err := p.jobs.FindByID(task.JobID)
	if err != nil {
		log.Error().Err(err).Msg("batch aborted: job lookup failed")
		task.fail(err.Error())
		return
	}

	jobSkills := make([]string, 0, len(job.Skills))
	for _, s := range job.Skills {
		jobSkills = append(jobSkills, strings.ToLower(s.Name))
	}

	ctx := context.Background()
	for i, item := range items {
		// Cancellation is cooperative and only takes effect between items.
		if task.cancelled() {
			log.Warn().Int("remaining", len(items)-i).Msg("batch cancelled")
			task.setStatus(BatchCancelled)
			return
		}

		// Items are processed strictly in order; every item commits (or
		// discards) on its own, so an interrupted batch keeps its prefix.
		switch p.processItem(ctx, job, jobSkills, item) {
		case itemProcessed:
			task.recordProcessed()
		case itemSkipped:
			task.recordSkipped()
		case itemFailed:
			// A failed item is recorded and the batch moves on; its partial
			// work was rolled back with the item's transaction.
			task.recordFailed()
		}
	}

	snap := task.Snapshot()
	log.Info().
		Int("processed", snap.ItemsProcessed).
		Int("skipped", snap.ItemsSkipped).
		Int("failed", snap.ItemsFailed).
		Msg("batch ingestion finished")
	task.setStatus(BatchDone)
}

func (p *ingestionPipeline) processItem(ctx context.Context, job *models.Job, jobSkills []string, item BatchItem) itemOutcome {
	log := logger.Logger.With().Str("email", item.CandidateEmail).Str("file", item.FilePath).Logger()

	text := p.extractor.ExtractText(item.FilePath)
	if strings.TrimSpace(text) == "" {
		log.Warn().Msg("no text extracted, skipping item")
		return itemSkipped
	}

	sections := p.segmenter.Segment(text)
	experienceText := sections[SectionExperience]
	if strings.TrimSpace(experienceText) == "" {
		experienceText = text
	}

	cvSkills, err := p.skills.ExtractSkills(ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("skill extraction failed")
		return itemFailed
	}

	years := p.estimator.EstimateYears(experienceText)

	embedding, err := p.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("cv embedding failed")
		return itemFailed
	}

	bundle, err := p.scorer.Score(ctx, ScoreInput{
		JobEmbedding:       job.Embedding,
		CVEmbedding:        embedding,
		ExperienceYears:    years,
		RequiredExperience: job.RequiredExperience,
		SemanticWeight:     job.SemanticWeight,
		ExperienceSection:  sections[SectionExperience],
	})
	if err != nil {
		log.Error().Err(err).Msg("scoring failed")
		return itemFailed
	}

	matched, missing := matchSkillSets(jobSkills, cvSkills)

	candidate, err := p.store.PersistItem(ctx, &repositories.IngestionRecord{
		JobID:           job.ID,
		Name:            item.CandidateName,
		Email:           item.CandidateEmail,
		FilePath:        item.FilePath,
		RawText:         text,
		Embedding:       embedding,
		ExperienceYears: years,
		SkillNames:      cvSkills,
		SemanticScore:   bundle.SemanticScore,
		ExperienceScore: bundle.ExperienceScore,
		FinalScore:      bundle.FinalScore,
		RiskFlag:        bundle.RiskFlag,
		MatchedSkills:   matched,
		MissingSkills:   missing,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to persist item")
		return itemFailed
	}

	// The vector index is a rebuildable secondary; its failure must not
	// undo an already-committed item.
	if p.vectors != nil {
		if err := p.vectors.UpsertCandidate(ctx, candidate.ID, candidate.Name, candidate.Email, embedding); err != nil {
			log.Warn().Err(err).Msg("vector index upsert failed")
		}
	}

	log.Info().
		Float64("final_score", bundle.FinalScore).
		Float64("experience_years", years).
		Int("skills", len(cvSkills)).
		Msg("candidate ingested")
	return itemProcessed
}

// matchSkillSets computes job∩cv and job−cv over skill names. Both inputs
// and outputs are lowercase; outputs are sorted and disjoint by construction.
func matchSkillSets(jobSkills, cvSkills []string) (matched, missing []string) {
	cvSet := make(map[string]bool, len(cvSkills))
	for _, s := range cvSkills {
		cvSet[s] = true
	}

	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if cvSet[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}
