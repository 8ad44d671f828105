package services

import (
	"driver-allocation-service/internal/domain"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCandidatesCrossProduct(t *testing.T) {
	for _, size := range []struct{ d, r int }{{0, 0}, {0, 3}, {3, 0}, {1, 1}, {2, 5}, {4, 3}} {
		drivers := make([]domain.Driver, size.d)
		for i := range drivers {
			drivers[i] = driver(fmt.Sprintf("D%d", i), 8, i, domain.LicenseClass1)
		}
		routes := make([]domain.Route, size.r)
		for i := range routes {
			routes[i] = route(fmt.Sprintf("R%d", i), 8, 10*i, domain.LicenseClass2)
		}

		got := GenerateCandidates(drivers, routes)
		require.Len(t, got, size.d*size.r, "drivers=%d routes=%d", size.d, size.r)

		seen := make(map[string]struct{}, len(got))
		for _, c := range got {
			_, dup := seen[c.Key()]
			assert.False(t, dup, "duplicate candidate %s", c.Key())
			seen[c.Key()] = struct{}{}
		}
	}
}

func TestGenerateCandidatesDerivedFields(t *testing.T) {
	drivers := []domain.Driver{
		driver("A", 9, 0, domain.LicenseClass1),
		driver("B", 9, 10, domain.LicenseClass2),
	}
	routes := []domain.Route{
		route("R1", 9, 5, domain.LicenseClass1),
		route("R2", 11, 0, domain.LicenseClass2),
	}
	before := append([]domain.Driver(nil), drivers...)

	got := GenerateCandidates(drivers, routes)
	require.Len(t, got, 4)

	// Driver-major order.
	assert.Equal(t, "A|R1", got[0].Key())
	assert.Equal(t, "A|R2", got[1].Key())
	assert.Equal(t, "B|R1", got[2].Key())
	assert.Equal(t, "B|R2", got[3].Key())

	assert.Equal(t, 500, got[0].Score)
	assert.True(t, got[0].Legal)
	assert.Equal(t, -100, got[1].Score)
	assert.False(t, got[2].Legal, "class 2 driver on class 1 route")
	assert.True(t, got[3].Legal)

	assert.Equal(t, before, drivers)
}
