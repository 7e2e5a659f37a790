package constant

import "testing"

func TestIsValidTaskStatus(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"Pending", true},
		{"In Progress", true},
		{"Completed", true},
		{"pending", false},
		{"Done", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidTaskStatus(c.status); got != c.want {
			t.Errorf("IsValidTaskStatus(%q) = %v, want %v", c.status, got, c.want)
		}
	}
}
