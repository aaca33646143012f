package history

import "testing"

func TestDiffTags(t *testing.T) {
	ref := map[string]string{
		"amenity": "pub",
		"name":    "The Old Mill",
		"phone":   "+44 1234",
	}
	cur := map[string]string{
		"amenity":  "pub",
		"name":     "Old Mill Tavern",
		"real_ale": "yes",
	}

	rows := DiffTags(ref, cur)
	want := []TagRow{
		{Key: "amenity", RefValue: "pub", CurValue: "pub", State: Unchanged},
		{Key: "name", RefValue: "The Old Mill", CurValue: "Old Mill Tavern", State: Modified},
		{Key: "phone", RefValue: "+44 1234", CurValue: "", State: Deleted},
		{Key: "real_ale", RefValue: "", CurValue: "yes", State: Added},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %v", len(rows), len(want), rows)
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], w)
		}
	}
}

func TestDiffTagsEmpty(t *testing.T) {
	if rows := DiffTags(nil, nil); len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rows)
	}
}
