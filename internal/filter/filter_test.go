package filter

import (
	"reflect"
	"testing"

	"github.com/verte-zerg/docstat/internal/metrics"
	"github.com/verte-zerg/docstat/internal/model"
)

func TestByLengthInterval(t *testing.T) {
	m := metrics.Compute(model.Document{Name: "a.txt", Text: "beautiful sunshine is great"})
	got := ByLength(m.Frequencies, model.Interval{Min: 9, Max: 11})
	want := []model.WordCount{{Word: "beautiful", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected length view: %v", got)
	}
}

func TestByLengthCountsRunes(t *testing.T) {
	freq := map[string]int{"naïve": 1, "née": 2}
	got := ByLength(freq, model.Interval{Min: 5, Max: 5})
	want := []model.WordCount{{Word: "naïve", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected length view: %v", got)
	}
}

func TestByLengthIdempotent(t *testing.T) {
	freq := map[string]int{"a": 3, "bb": 2, "ccc": 1, "dddd": 4}
	iv := model.Interval{Min: 2, Max: 3}
	once := ByLength(freq, iv)
	twice := ByLength(Frequencies(once), iv)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("re-filtering changed the view: %v vs %v", once, twice)
	}
}

func TestByLengthDoesNotMutateSource(t *testing.T) {
	freq := map[string]int{"one": 1, "seven": 7}
	ByLength(freq, model.Interval{Min: 5, Max: 5})
	if len(freq) != 2 || freq["one"] != 1 || freq["seven"] != 7 {
		t.Fatalf("source map was mutated: %v", freq)
	}
}

func TestTopN(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []model.WordCount
	}{
		{name: "zero yields empty", n: 0, want: nil},
		{name: "limits to n", n: 2, want: []model.WordCount{{Word: "fig", Count: 5}, {Word: "apple", Count: 2}}},
		{name: "n beyond distinct returns all", n: 10, want: []model.WordCount{
			{Word: "fig", Count: 5}, {Word: "apple", Count: 2}, {Word: "pear", Count: 2},
		}},
	}
	freq := map[string]int{"pear": 2, "apple": 2, "fig": 5}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TopN(freq, tc.n)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected view: %v", got)
			}
		})
	}
}
