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

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{
		db: db,
	}
}

// FindByID retrieves a single job posting with its required skills.
func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JobPosting, error) {
	var jobM model.JobPostingModel

	if err := repo.db.WithContext(ctx).
		Preload("RequiredSkills").
		Where("id = ?", id).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job posting by ID")
	}

	return toJobDomain(&jobM), nil
}

// jobRow carries one radius query result with the distance computed in SQL.
type jobRow struct {
	ID                  uuid.UUID
	EmployerID          uuid.UUID
	Title               string
	Description         string
	RequiredYears       *float64
	Latitude            *float64
	Longitude           *float64
	SalaryMin           *float64
	SalaryMax           *float64
	JobType             string
	Status              string
	ApplicationDeadline *time.Time
	UpdatedAt           time.Time
	DistanceKm          float64
}

// FindWithinRadius retrieves active postings within radiusKm of the center with
// the hard filters pushed down to SQL, using the same bounding box prefilter as
// the candidate query.
func (repo *jobRepository) FindWithinRadius(ctx context.Context, center entity.GeoPoint, radiusKm float64, filters repository.JobFilters) ([]*repository.JobRecord, error) {
	bound := geo.NewBoundAroundPoint(orb.Point{center.Longitude, center.Latitude}, radiusKm*1000)

	var query strings.Builder
	query.WriteString(`SELECT q.* FROM (
		SELECT j.id, j.employer_id, j.title, j.description, j.required_years, j.latitude, j.longitude,
		       j.salary_min, j.salary_max, j.job_type, j.status, j.application_deadline, j.updated_at,
		       ` + jobDistanceSQL + ` AS distance_km
		FROM job_postings j
		WHERE j.status = ?
		  AND j.latitude IS NOT NULL
		  AND j.longitude IS NOT NULL
		  AND j.latitude BETWEEN ? AND ?
		  AND j.longitude BETWEEN ? AND ?`)

	args := []any{
		center.Latitude, center.Longitude, center.Latitude,
		entity.JobStatusActive.String(),
		bound.Bottom(), bound.Top(),
		bound.Left(), bound.Right(),
	}

	if filters.JobType != nil {
		query.WriteString(`
		  AND j.job_type = ?`)
		args = append(args, filters.JobType.String())
	}
	if filters.MinSalary != nil {
		// Postings that state no salary at all pass the floor.
		query.WriteString(`
		  AND (COALESCE(j.salary_max, j.salary_min) IS NULL OR COALESCE(j.salary_max, j.salary_min) >= ?)`)
		args = append(args, *filters.MinSalary)
	}
	if filters.Keyword != "" {
		query.WriteString(`
		  AND (j.title ILIKE ? OR j.description ILIKE ?)`)
		pattern := "%" + filters.Keyword + "%"
		args = append(args, pattern, pattern)
	}
	if len(filters.SkillIDs) > 0 {
		query.WriteString(`
		  AND EXISTS (SELECT 1 FROM job_required_skills js WHERE js.job_id = j.id AND js.skill_id IN ?)`)
		args = append(args, filters.SkillIDs)
	}

	query.WriteString(`
	) q WHERE q.distance_km <= ?
	ORDER BY q.distance_km ASC`)
	args = append(args, radiusKm)

	var rows []jobRow
	if err := repo.db.WithContext(ctx).
		Raw(query.String(), args...).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find job postings within radius")
	}

	skillsByJob, err := repo.loadRequiredSkills(ctx, jobIDs(rows))
	if err != nil {
		return nil, err
	}

	records := make([]*repository.JobRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &repository.JobRecord{
			Job:        rowToJobDomain(&row, skillsByJob[row.ID]),
			DistanceKm: row.DistanceKm,
		})
	}

	return records, nil
}

// ExpirePastDeadline marks active postings whose deadline is before the cutoff
// as expired and returns the IDs touched, so the caller can clean up derived
// match data per posting.
func (repo *jobRepository) ExpirePastDeadline(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE job_postings
		SET status = ?, updated_at = NOW()
		WHERE status = ?
		  AND application_deadline IS NOT NULL
		  AND application_deadline < ?
		RETURNING id
	`

	var expired []struct {
		ID uuid.UUID
	}
	if err := repo.db.WithContext(ctx).
		Raw(query, entity.JobStatusExpired.String(), entity.JobStatusActive.String(), cutoff).
		Scan(&expired).Error; err != nil {
		return nil, errors.Wrap(err, "failed to expire job postings past deadline")
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, row := range expired {
		ids = append(ids, row.ID)
	}

	return ids, nil
}

// loadRequiredSkills fetches the required skill rows for the given postings in
// one query and groups them by posting.
func (repo *jobRepository) loadRequiredSkills(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]model.JobRequiredSkillModel, error) {
	grouped := make(map[uuid.UUID][]model.JobRequiredSkillModel, len(ids))
	if len(ids) == 0 {
		return grouped, nil
	}

	var skillModels []model.JobRequiredSkillModel
	if err := repo.db.WithContext(ctx).
		Where("job_id IN ?", ids).
		Find(&skillModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load job required skills")
	}

	for _, skillM := range skillModels {
		grouped[skillM.JobID] = append(grouped[skillM.JobID], skillM)
	}

	return grouped, nil
}

func jobIDs(rows []jobRow) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	return ids
}

// --- Mapper Functions ---

// toJobDomain converts a GORM JobPostingModel to a domain JobPosting entity.
func toJobDomain(data *model.JobPostingModel) *entity.JobPosting {
	if data == nil {
		return nil
	}

	return &entity.JobPosting{
		ID:                  data.ID,
		EmployerID:          data.EmployerID,
		Title:               data.Title,
		Description:         data.Description,
		RequiredSkillIDs:    toRequiredSkillIDs(data.RequiredSkills),
		RequiredYears:       data.RequiredYears,
		Location:            toGeoPoint(data.Latitude, data.Longitude),
		SalaryMin:           data.SalaryMin,
		SalaryMax:           data.SalaryMax,
		JobType:             entity.JobType(data.JobType),
		Status:              entity.JobStatus(data.Status),
		ApplicationDeadline: data.ApplicationDeadline,
		UpdatedAt:           data.UpdatedAt,
	}
}

// rowToJobDomain converts a radius query row to a domain JobPosting entity.
func rowToJobDomain(row *jobRow, skills []model.JobRequiredSkillModel) *entity.JobPosting {
	return &entity.JobPosting{
		ID:                  row.ID,
		EmployerID:          row.EmployerID,
		Title:               row.Title,
		Description:         row.Description,
		RequiredSkillIDs:    toRequiredSkillIDs(skills),
		RequiredYears:       row.RequiredYears,
		Location:            toGeoPoint(row.Latitude, row.Longitude),
		SalaryMin:           row.SalaryMin,
		SalaryMax:           row.SalaryMax,
		JobType:             entity.JobType(row.JobType),
		Status:              entity.JobStatus(row.Status),
		ApplicationDeadline: row.ApplicationDeadline,
		UpdatedAt:           row.UpdatedAt,
	}
}

func toRequiredSkillIDs(skillModels []model.JobRequiredSkillModel) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(skillModels))
	for _, skillM := range skillModels {
		ids = append(ids, skillM.SkillID)
	}

	return ids
}
