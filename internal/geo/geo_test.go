package geo_test

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/zekkencito/CineMatch-sub000/internal/geo"
)

func TestDistanceKmZero(t *testing.T) {
    points := [][2]float64{
        {0, 0},
        {30.4336, -107.9063},
        {-89.9, 179.9},
        {51.5074, -0.1278},
    }

    for _, p := range points {
        assert.Equal(t, 0.0, geo.DistanceKm(p[0], p[1], p[0], p[1]))
    }
}

func TestDistanceKmSymmetry(t *testing.T) {
    pairs := [][4]float64{
        {30.4336, -107.9063, 30.4436, -107.9063},
        {51.5074, -0.1278, 48.8566, 2.3522},
        {-33.8688, 151.2093, 35.6762, 139.6503},
        {0, 0, 0, 1},
    }

    for _, p := range pairs {
        ab := geo.DistanceKm(p[0], p[1], p[2], p[3])
        ba := geo.DistanceKm(p[2], p[3], p[0], p[1])
        assert.Equal(t, ab, ba)
        assert.GreaterOrEqual(t, ab, 0.0)
    }
}

func TestDistanceKmKnownValues(t *testing.T) {
    // one degree of latitude along the equator meridian
    assert.InDelta(t, 111.19, geo.DistanceKm(0, 0, 1, 0), 0.01)

    // London -> Paris
    assert.InDelta(t, 343.5, geo.DistanceKm(51.5074, -0.1278, 48.8566, 2.3522), 1.0)

    // two users ~1.1km apart on the same meridian
    assert.InDelta(t, 1.11, geo.DistanceKm(30.4336, -107.9063, 30.4436, -107.9063), 0.02)
}
