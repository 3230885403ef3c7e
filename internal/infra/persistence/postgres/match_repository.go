package postgres

import (
	"context"
	"time"

	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"
	"jobmatch/internal/domain/repository"
	"jobmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// UpsertMatches stores the results for a job keyed by (job_id, candidate_id).
// Replaying the same event overwrites scores instead of duplicating rows.
func (repo *matchRepository) UpsertMatches(ctx context.Context, jobID uuid.UUID, results []*entity.MatchResult) error {
	if len(results) == 0 {
		return nil
	}

	matchModels := make([]*model.JobMatchModel, 0, len(results))
	for _, result := range results {
		matchModels = append(matchModels, fromMatchDomain(jobID, result))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "job_id"}, {Name: "candidate_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"score", "distance_km",
				"skill_score", "location_score", "salary_score", "availability_score", "experience_score",
				"verified", "computed_at", "updated_at",
			}),
		}).
		Create(&matchModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "match references a missing job or candidate")
		}

		return errors.Wrap(err, "failed to upsert job matches")
	}

	return nil
}

// FindMatchesByJob retrieves persisted results for a job ordered by rank with
// offset pagination, along with the total row count.
func (repo *matchRepository) FindMatchesByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]*entity.MatchResult, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.JobMatchModel{}).
		Where("job_id = ?", jobID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count job matches")
	}

	var matchModels []*model.JobMatchModel
	if err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("score DESC, distance_km ASC, verified DESC, candidate_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&matchModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find job matches")
	}

	results := make([]*entity.MatchResult, 0, len(matchModels))
	for _, matchM := range matchModels {
		results = append(results, toMatchDomain(matchM))
	}

	return results, total, nil
}

// DeleteMatchesByJob removes all persisted results for a job.
func (repo *matchRepository) DeleteMatchesByJob(ctx context.Context, jobID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Delete(&model.JobMatchModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete job matches")
	}

	return nil
}

// --- Mapper Functions ---

// toMatchDomain converts a GORM JobMatchModel to a domain MatchResult entity.
func toMatchDomain(data *model.JobMatchModel) *entity.MatchResult {
	if data == nil {
		return nil
	}

	return &entity.MatchResult{
		SubjectID:     data.JobID,
		CounterpartID: data.CandidateID,
		DistanceKm:    data.DistanceKm,
		Score:         data.Score,
		Breakdown: entity.ScoreBreakdown{
			Skill:        data.SkillScore,
			Location:     data.LocationScore,
			Salary:       data.SalaryScore,
			Availability: data.AvailabilityScore,
			Experience:   data.ExperienceScore,
		},
		Verified:   data.Verified,
		ComputedAt: data.ComputedAt,
	}
}

// fromMatchDomain converts a domain MatchResult entity to a GORM JobMatchModel.
func fromMatchDomain(jobID uuid.UUID, data *entity.MatchResult) *model.JobMatchModel {
	if data == nil {
		return nil
	}

	computedAt := data.ComputedAt
	if computedAt.IsZero() {
		computedAt = time.Now()
	}

	return &model.JobMatchModel{
		JobID:             jobID,
		CandidateID:       data.CounterpartID,
		Score:             data.Score,
		DistanceKm:        data.DistanceKm,
		SkillScore:        data.Breakdown.Skill,
		LocationScore:     data.Breakdown.Location,
		SalaryScore:       data.Breakdown.Salary,
		AvailabilityScore: data.Breakdown.Availability,
		ExperienceScore:   data.Breakdown.Experience,
		Verified:          data.Verified,
		ComputedAt:        computedAt,
	}
}
