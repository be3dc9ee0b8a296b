package anygeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource replays values in a loop; IntN returns the low end unless a
// value is queued in ints.
type fixedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *fixedSource) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *fixedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return min(v, n-1)
}

func TestSamplePoint_InsideBBox(t *testing.T) {
	src := NewSeededSource(7)
	boxes := []BBox{
		{0, 0, 10, 10},
		{-180, -90, 180, 90},
		{53.127823, 7.047742, 106.125870, 35.488629},
		{-1e-9, -1e-9, 1e-9, 1e-9},
	}

	for _, b := range boxes {
		for i := 0; i < 1000; i++ {
			p := samplePoint(src, b)
			assert.True(t, b.Contains(p), "%v outside %v", p, b)
		}
	}
}

func TestSamplePoint_Extremes(t *testing.T) {
	b := BBox{-2, 3, 4, 5}

	p := samplePoint(&fixedSource{floats: []float64{0}}, b)
	assert.Equal(t, [2]float64{-2, 3}, [2]float64(p))

	p = samplePoint(&fixedSource{floats: []float64{0.5}}, b)
	assert.Equal(t, [2]float64{1, 4}, [2]float64(p))
}

func TestIntBetween_Inclusive(t *testing.T) {
	src := NewSeededSource(3)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := intBetween(src, 3, 6)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 6)
		seen[n] = true
	}
	assert.Len(t, seen, 4)
}

func TestSampleLine_VertexCount(t *testing.T) {
	src := NewSeededSource(11)
	b := BBox{0, 0, 1, 1}
	for i := 0; i < 100; i++ {
		ls := sampleLine(src, b, 2, 5)
		assert.GreaterOrEqual(t, len(ls), 2)
		assert.LessOrEqual(t, len(ls), 5)
		for _, p := range ls {
			assert.True(t, b.Contains(p))
		}
	}
}

func TestSeededSource_Reproducible(t *testing.T) {
	a, b := NewSeededSource(42), NewSeededSource(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}
}
