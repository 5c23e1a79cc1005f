package survey

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected []string
	}{
		{
			name:     "multiple tags",
			answer:   "Machine Learning;Security;Web Development",
			expected: []string{"Machine Learning", "Security", "Web Development"},
		},
		{
			name:     "single tag",
			answer:   "Security",
			expected: []string{"Security"},
		},
		{
			name:     "empty answer yields empty set",
			answer:   "",
			expected: nil,
		},
		{
			name:     "whitespace-only answer yields empty set",
			answer:   "   ",
			expected: nil,
		},
		{
			name:     "tags are trimmed",
			answer:   " Security ; Machine Learning ",
			expected: []string{"Machine Learning", "Security"},
		},
		{
			name:     "duplicate tags collapse",
			answer:   "Security;Security",
			expected: []string{"Security"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ParseTags(tt.answer, ";")

			if len(set) != len(tt.expected) {
				t.Fatalf("got %d tags, want %d", len(set), len(tt.expected))
			}
			if tt.expected != nil && !reflect.DeepEqual(set.Sorted(), tt.expected) {
				t.Errorf("Sorted() = %v, want %v", set.Sorted(), tt.expected)
			}
		})
	}
}

func TestOverlapCount(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"partial overlap", "ML;Security", "ML;Databases", 1},
		{"full overlap", "ML;Security", "ML;Security", 2},
		{"no overlap", "ML", "Databases", 0},
		{"empty left", "", "ML", 0},
		{"empty right", "ML", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ParseTags(tt.a, ";")
			b := ParseTags(tt.b, ";")

			if got := a.OverlapCount(b); got != tt.expected {
				t.Errorf("OverlapCount = %d, want %d", got, tt.expected)
			}
			// overlap is symmetric
			if got := b.OverlapCount(a); got != tt.expected {
				t.Errorf("reverse OverlapCount = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	set := ParseTags("Security;Machine Learning", ";")
	if got := set.Join(";"); got != "Machine Learning;Security" {
		t.Errorf("Join = %q, want %q", got, "Machine Learning;Security")
	}
}
