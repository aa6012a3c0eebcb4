package paginator

// ClampLimit normalizes a requested listing limit into [MinLimit, MaxLimit].
// Values below MinLimit (including zero and negatives) become MinLimit;
// values above MaxLimit become MaxLimit.
func ClampLimit(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
