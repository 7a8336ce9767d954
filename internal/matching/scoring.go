package matching

// Component weights of the composite compatibility score. They sum to 100,
// so a perfect overlap inside a tiny radius scores exactly 100.
const (
    genreWeight     = 40.0
    directorWeight  = 30.0
    movieWeight     = 20.0
    proximityWeight = 10.0
)

// intersectCount returns |a ∩ b| treating both slices as sets.
func intersectCount(a, b []int64) int {
    if len(a) == 0 || len(b) == 0 {
        return 0
    }
    set := make(map[int64]struct{}, len(a))
    for _, id := range a {
        set[id] = struct{}{}
    }
    count := 0
    for _, id := range b {
        if _, ok := set[id]; ok {
            count++
            delete(set, id) // count duplicates once
        }
    }
    return count
}

// overlapScore scores shared taste as |a∩b| / max(|a|,|b|) scaled by weight.
// Either side being empty scores zero. Returns the score and the raw
// intersection size.
func overlapScore(a, b []int64, weight float64) (float64, int) {
    common := intersectCount(a, b)
    if common == 0 {
        return 0, 0
    }
    denom := len(a)
    if len(b) > denom {
        denom = len(b)
    }
    return float64(common) / float64(denom) * weight, common
}

// proximityScore rewards closeness linearly inside the search radius:
// full weight at distance zero, nothing at the radius edge or beyond.
func proximityScore(distanceKm, radiusKm float64) float64 {
    if radiusKm <= 0 || distanceKm >= radiusKm {
        return 0
    }
    return (radiusKm - distanceKm) / radiusKm * proximityWeight
}
