// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"jobmatch/internal/domain/entity"
	"jobmatch/internal/domain/repository"
	"jobmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// candidateRepository implements the repository.CandidateRepository interface.
type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository is the constructor for candidateRepository.
func NewCandidateRepository(db *gorm.DB) repository.CandidateRepository {
	return &candidateRepository{
		db: db,
	}
}

// FindByID retrieves a single candidate with their skills and subscription tier.
func (repo *candidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error) {
	var candidateM model.CandidateModel

	if err := repo.db.WithContext(ctx).
		Preload("Skills").
		Where("id = ?", id).
		First(&candidateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCandidateNotFound
		}

		return nil, errors.Wrap(err, "failed to find candidate by ID")
	}

	tier, err := lookupTier(ctx, repo.db, id)
	if err != nil {
		return nil, err
	}

	return toCandidateDomain(&candidateM, tier), nil
}

// candidateRow carries one radius query result with the distance computed in SQL.
type candidateRow struct {
	ID             uuid.UUID
	Role           string
	Latitude       *float64
	Longitude      *float64
	Availability   string
	ExpectedSalary *float64
	ExamVerified   bool
	IsActive       bool
	IsBanned       bool
	UpdatedAt      time.Time
	DistanceKm     float64
}

// FindWithinRadius retrieves job seekers within radiusKm of the center with the
// hard filters pushed down to SQL. A bounding box on the indexed lat/lng pair
// prunes rows before the haversine expression runs, and the exact distance
// check happens on the computed column.
func (repo *candidateRepository) FindWithinRadius(ctx context.Context, center entity.GeoPoint, radiusKm float64, filters repository.CandidateFilters) ([]*repository.CandidateRecord, error) {
	bound := geo.NewBoundAroundPoint(orb.Point{center.Longitude, center.Latitude}, radiusKm*1000)

	var query strings.Builder
	query.WriteString(`SELECT q.* FROM (
		SELECT c.id, c.role, c.latitude, c.longitude, c.availability,
		       c.expected_salary, c.exam_verified, c.is_active, c.is_banned, c.updated_at,
		       ` + candidateDistanceSQL + ` AS distance_km
		FROM matching_candidates c
		WHERE c.role = ?
		  AND c.is_active = true
		  AND c.is_banned = false
		  AND c.latitude IS NOT NULL
		  AND c.longitude IS NOT NULL
		  AND c.latitude BETWEEN ? AND ?
		  AND c.longitude BETWEEN ? AND ?`)

	args := []any{
		center.Latitude, center.Longitude, center.Latitude,
		entity.RoleJobSeeker.String(),
		bound.Bottom(), bound.Top(),
		bound.Left(), bound.Right(),
	}

	if len(filters.SkillIDs) > 0 {
		query.WriteString(`
		  AND EXISTS (SELECT 1 FROM candidate_skills cs WHERE cs.candidate_id = c.id AND cs.skill_id IN ?)`)
		args = append(args, filters.SkillIDs)
	}
	if filters.Availability != nil {
		query.WriteString(`
		  AND c.availability = ?`)
		args = append(args, filters.Availability.String())
	}
	if filters.VerifiedOnly {
		query.WriteString(`
		  AND c.exam_verified = true`)
	}
	if filters.MaxSalary != nil {
		query.WriteString(`
		  AND (c.expected_salary IS NULL OR c.expected_salary <= ?)`)
		args = append(args, *filters.MaxSalary)
	}

	query.WriteString(`
	) q WHERE q.distance_km <= ?
	ORDER BY q.distance_km ASC`)
	args = append(args, radiusKm)

	var rows []candidateRow
	if err := repo.db.WithContext(ctx).
		Raw(query.String(), args...).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find candidates within radius")
	}

	skillsByCandidate, err := repo.loadSkills(ctx, candidateIDs(rows))
	if err != nil {
		return nil, err
	}

	records := make([]*repository.CandidateRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &repository.CandidateRecord{
			Candidate:  rowToCandidateDomain(&row, skillsByCandidate[row.ID]),
			DistanceKm: row.DistanceKm,
		})
	}

	return records, nil
}

// loadSkills fetches the skill rows for the given candidates in one query and
// groups them by candidate, avoiding an N+1 per result row.
func (repo *candidateRepository) loadSkills(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]model.CandidateSkillModel, error) {
	grouped := make(map[uuid.UUID][]model.CandidateSkillModel, len(ids))
	if len(ids) == 0 {
		return grouped, nil
	}

	var skillModels []model.CandidateSkillModel
	if err := repo.db.WithContext(ctx).
		Where("candidate_id IN ?", ids).
		Find(&skillModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load candidate skills")
	}

	for _, skillM := range skillModels {
		grouped[skillM.CandidateID] = append(grouped[skillM.CandidateID], skillM)
	}

	return grouped, nil
}

func candidateIDs(rows []candidateRow) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	return ids
}

// --- Mapper Functions ---

// toCandidateDomain converts a GORM CandidateModel to a domain Candidate entity.
func toCandidateDomain(data *model.CandidateModel, tier entity.SubscriptionTier) *entity.Candidate {
	if data == nil {
		return nil
	}

	return &entity.Candidate{
		ID:             data.ID,
		Role:           entity.Role(data.Role),
		Skills:         toSkillsDomain(data.Skills),
		Location:       toGeoPoint(data.Latitude, data.Longitude),
		Availability:   entity.Availability(data.Availability),
		ExpectedSalary: data.ExpectedSalary,
		ExamVerified:   data.ExamVerified,
		IsActive:       data.IsActive,
		IsBanned:       data.IsBanned,
		Tier:           tier,
		UpdatedAt:      data.UpdatedAt,
	}
}

// rowToCandidateDomain converts a radius query row to a domain Candidate entity.
// Radius results always resolve to the free tier; the tier only matters for the
// caller's own radius cap, never for records being ranked.
func rowToCandidateDomain(row *candidateRow, skills []model.CandidateSkillModel) *entity.Candidate {
	return &entity.Candidate{
		ID:             row.ID,
		Role:           entity.Role(row.Role),
		Skills:         toSkillsDomain(skills),
		Location:       toGeoPoint(row.Latitude, row.Longitude),
		Availability:   entity.Availability(row.Availability),
		ExpectedSalary: row.ExpectedSalary,
		ExamVerified:   row.ExamVerified,
		IsActive:       row.IsActive,
		IsBanned:       row.IsBanned,
		Tier:           entity.TierFree,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toSkillsDomain(skillModels []model.CandidateSkillModel) []entity.CandidateSkill {
	skills := make([]entity.CandidateSkill, 0, len(skillModels))
	for _, skillM := range skillModels {
		skills = append(skills, entity.CandidateSkill{
			SkillID:           skillM.SkillID,
			ProficiencyLevel:  skillM.ProficiencyLevel,
			YearsOfExperience: skillM.YearsOfExperience,
		})
	}

	return skills
}

func toGeoPoint(latitude, longitude *float64) *entity.GeoPoint {
	if latitude == nil || longitude == nil {
		return nil
	}

	return &entity.GeoPoint{Latitude: *latitude, Longitude: *longitude}
}
