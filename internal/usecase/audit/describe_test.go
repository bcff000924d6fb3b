package audit

import "testing"

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "(empty)"},
		{"", "(empty)"},
		{"  ", "(empty)"},
		{"Professor", "Professor"},
		{true, "Yes"},
		{false, "No"},
		{[]string{"a", "b"}, "a, b"},
		{[]int{1, 2, 3}, "1, 2, 3"},
		{42, "42"},
	}
	for _, tc := range tests {
		if got := FormatDisplay(tc.in); got != tc.want {
			t.Errorf("FormatDisplay(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHumanizeField(t *testing.T) {
	if got := HumanizeField("staff_grade_id"); got != "Staff Grade Id" {
		t.Errorf("got %q", got)
	}
	if got := HumanizeField("name"); got != "Name" {
		t.Errorf("got %q", got)
	}
}

func TestDescribeChanges_StableOrderAndArrows(t *testing.T) {
	old := map[string]any{"rank": 10, "name": "Lecturer"}
	new_ := map[string]any{"rank": 20, "name": "Senior Lecturer"}

	got := DescribeChanges(old, new_)
	want := "Name: Lecturer > Senior Lecturer; Rank: 10 > 20"
	if got != want {
		t.Errorf("DescribeChanges = %q, want %q", got, want)
	}
}

func TestDiffFields_DropsRepresentationOnlyChanges(t *testing.T) {
	before := map[string]any{
		"name":   "Lecturer",
		"code":   "",
		"active": false,
		"rank":   10,
	}
	after := map[string]any{
		"name":   "Lecturer",
		"code":   nil, // "" vs nil: not a change
		"active": 0,   // false vs 0: not a change
		"rank":   20,  // real change
	}

	oldVals, newVals := DiffFields(before, after)
	if len(newVals) != 1 {
		t.Fatalf("expected exactly one real change, got %+v", newVals)
	}
	if oldVals["rank"] != 10 || newVals["rank"] != 20 {
		t.Fatalf("diff should keep raw values: old=%+v new=%+v", oldVals, newVals)
	}
}

func TestDiffFields_AllCosmeticMeansEmpty(t *testing.T) {
	before := map[string]any{"code": "", "active": true}
	after := map[string]any{"code": nil, "active": "1"}

	_, newVals := DiffFields(before, after)
	if len(newVals) != 0 {
		t.Fatalf("representation-only update must produce an empty diff, got %+v", newVals)
	}
}
