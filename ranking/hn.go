package ranking

import (
	"math"
	"sort"
	"time"
)

type Rankable interface {
	GetScore() int64
	Age() time.Time
}

// Params tunes how fast items sink as they get older.
type Params struct {
	Gravity         float64
	TimebaseInHours int64
}

// HackerNews are the usual values of the Hacker News formula.
var HackerNews = Params{Gravity: 1.8, TimebaseInHours: 2}

func Rank(item Rankable, gravity float64, timebaseInHours int64, referenceTime time.Time) float64 {
	hours := referenceTime.Sub(item.Age()).Hours()
	if hours < 0 {
		hours = 0
	}
	s := item.GetScore()

	return float64(s-1) / math.Pow((float64(timebaseInHours)+hours), gravity)
}

// Order returns the indexes of items, highest rank first. Items of equal rank
// keep their relative order.
func Order(items []Rankable, p Params, referenceTime time.Time) []int {
	ranks := make([]float64, len(items))
	idx := make([]int, len(items))
	for i, item := range items {
		ranks[i] = Rank(item, p.Gravity, p.TimebaseInHours, referenceTime)
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return ranks[idx[a]] > ranks[idx[b]]
	})

	return idx
}
