package recommend

import "sort"

// Recommend scores every catalog item for the learner and returns the result
// sorted by descending score. Nothing is filtered out; completed and
// low-scoring items are the caller's concern. Ties keep catalog order.
func Recommend(p LearnerProfile, catalog []ContentItem) []ScoredRecommendation {
	recs := make([]ScoredRecommendation, 0, len(catalog))
	for _, item := range catalog {
		recs = append(recs, ScoredRecommendation{
			ContentItem:  item,
			Score:        Score(item, p),
			Reasons:      Explain(item, p),
			LearningGain: EstimateGain(item, p),
			Adaptations:  adaptations(item, p),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}
