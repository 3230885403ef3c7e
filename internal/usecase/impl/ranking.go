package impl

import (
	"bytes"
	"sort"

	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"
)

// sortMatches orders results by score descending, then distance ascending,
// then verified before unverified, then counterpart ID ascending. The chain
// ends on a unique key, so the order is total and repeat runs over the same
// input produce identical pages.
func sortMatches(results []*entity.MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		left, right := results[i], results[j]

		if left.Score != right.Score {
			return left.Score > right.Score
		}
		if left.DistanceKm != right.DistanceKm {
			return left.DistanceKm < right.DistanceKm
		}
		if left.Verified != right.Verified {
			return left.Verified
		}

		return bytes.Compare(left.CounterpartID[:], right.CounterpartID[:]) < 0
	})
}

// normalizePageSize validates the requested page size and clamps it to the
// configured maximum.
func normalizePageSize(pageSize, maxPageSize int) (int, error) {
	if pageSize <= 0 {
		return 0, domainerrors.ErrInvalidPagination
	}

	if pageSize > maxPageSize {
		return maxPageSize, nil
	}

	return pageSize, nil
}

// paginate slices one page out of a fully sorted result set using offset
// pagination. A page beyond the data returns an empty slice with the totals
// intact, so clients can page past the end without errors. Distances on the
// returned page are rounded to display precision here; everything upstream of
// this point works on full-precision values.
func paginate(results []*entity.MatchResult, page, pageSize int) ([]*entity.MatchResult, int64, int64, error) {
	if page < 1 {
		return nil, 0, 0, domainerrors.ErrInvalidPagination
	}

	total := int64(len(results))
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	offset := (page - 1) * pageSize
	if offset >= len(results) {
		return []*entity.MatchResult{}, total, totalPages, nil
	}

	end := offset + pageSize
	if end > len(results) {
		end = len(results)
	}

	pageResults := results[offset:end]
	for _, result := range pageResults {
		result.DistanceKm = entity.RoundKm(result.DistanceKm)
	}

	return pageResults, total, totalPages, nil
}
