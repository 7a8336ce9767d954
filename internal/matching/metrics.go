package matching

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    swipesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
        Name: "cinematch_swipes_total",
        Help: "Total swipe interactions processed, by kind",
    }, []string{"kind"})

    matchesTotal = promauto.NewCounter(prometheus.CounterOpts{
        Name: "cinematch_matches_total",
        Help: "Total mutual matches created",
    })

    candidateListSize = promauto.NewHistogram(prometheus.HistogramOpts{
        Name:    "cinematch_candidate_list_size",
        Help:    "Number of candidates returned per discovery request",
        Buckets: prometheus.LinearBuckets(0, 2, 11),
    })

    matchScores = promauto.NewHistogram(prometheus.HistogramOpts{
        Name:    "cinematch_match_scores",
        Help:    "Distribution of compatibility scores served",
        Buckets: prometheus.LinearBuckets(0, 10, 11),
    })
)

func RecordSwipe(kind string) {
    swipesTotal.WithLabelValues(kind).Inc()
}

func RecordMatch() {
    matchesTotal.Inc()
}

func RecordCandidateList(size int) {
    candidateListSize.Observe(float64(size))
}

func RecordScore(score int) {
    matchScores.Observe(float64(score))
}
