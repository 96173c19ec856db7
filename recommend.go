package meristem

// Recommendations projects a comparison into presentation-ready advice,
// one entry per verdict. The overall verdict keeps its "overall" category;
// feature verdicts use the feature's display label.
func Recommendations(comparison *Comparison) []Recommendation {
	if comparison == nil {
		return nil
	}

	recs := make([]Recommendation, 0, len(comparison.Verdicts))

	for _, verdict := range comparison.Verdicts {
		category := verdict.Feature
		if pol, ok := policies[verdict.Feature]; ok {
			category = pol.label
		}

		recs = append(recs, Recommendation{
			Category:   category,
			Suggestion: verdict.Message,
			Status:     verdict.Status,
		})
	}

	return recs
}
