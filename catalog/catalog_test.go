package catalog

import "testing"

func sampleRecords() []CutoffRecord {
	return []CutoffRecord{
		{Year: "2023", Round: "Round 1", InstituteCode: "E002", InstituteName: "BMSCE", CourseCode: "EC", Category: "2AG", CutoffRank: 7000},
		{Year: "2024", Round: "Round 1", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "CS", Category: "GM", CutoffRank: 5000},
		{Year: "2024", Round: "Round 2", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "CS", Category: "GM", CutoffRank: 5400},
		{Year: "2024", Round: "Round 1", InstituteCode: "E002", InstituteName: "BMSCE", CourseCode: "CS", Category: "GM", CutoffRank: 4500},
	}
}

func TestCatalogDerivedSets(t *testing.T) {
	c := New(sampleRecords())

	wantYears := []string{"2024", "2023"}
	gotYears := c.Years()
	if len(gotYears) != len(wantYears) {
		t.Fatalf("Years = %v, want %v", gotYears, wantYears)
	}
	for i := range wantYears {
		if gotYears[i] != wantYears[i] {
			t.Errorf("Years[%d] = %q, want %q", i, gotYears[i], wantYears[i])
		}
	}

	if got := c.LatestYear(); got != "2024" {
		t.Errorf("LatestYear = %q, want 2024", got)
	}

	wantCategories := []string{"2AG", "GM"}
	gotCategories := c.Categories()
	for i := range wantCategories {
		if gotCategories[i] != wantCategories[i] {
			t.Errorf("Categories[%d] = %q, want %q", i, gotCategories[i], wantCategories[i])
		}
	}

	wantCourses := []string{"CS", "EC"}
	gotCourses := c.Courses()
	for i := range wantCourses {
		if gotCourses[i] != wantCourses[i] {
			t.Errorf("Courses[%d] = %q, want %q", i, gotCourses[i], wantCourses[i])
		}
	}

	if got := c.Len(); got != 4 {
		t.Errorf("Len = %d, want 4", got)
	}
}

func TestCatalogRoundsForYear(t *testing.T) {
	c := New(sampleRecords())

	rounds := c.RoundsForYear("2024")
	if len(rounds) != 2 || rounds[0] != "Round 1" || rounds[1] != "Round 2" {
		t.Errorf("RoundsForYear(2024) = %v, want [Round 1 Round 2]", rounds)
	}

	if got := c.RoundsForYear("1999"); len(got) != 0 {
		t.Errorf("RoundsForYear(1999) = %v, want empty", got)
	}
}

func TestCatalogInstitutes(t *testing.T) {
	c := New(sampleRecords())

	institutes := c.Institutes()
	if len(institutes) != 2 {
		t.Fatalf("got %d institutes, want 2", len(institutes))
	}
	// Sorted by name: BMSCE before UVCE.
	if institutes[0].Name != "BMSCE" || institutes[1].Name != "UVCE" {
		t.Errorf("institutes not sorted by name: %+v", institutes)
	}
	if institutes[0].Key != "E002_BMSCE" {
		t.Errorf("Key = %q, want E002_BMSCE", institutes[0].Key)
	}
}

func TestEmptyCatalog(t *testing.T) {
	c := New(nil)
	if c.LatestYear() != "" {
		t.Errorf("LatestYear on empty catalog = %q, want empty", c.LatestYear())
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestCourseFullName(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "known_code", code: "CSE", want: "Computer Science & Engineering"},
		{name: "ampersand_code", code: "AI & ML", want: "Artificial Intelligence & Machine Learning"},
		{name: "unknown_code_falls_back", code: "QQ", want: "QQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourseFullName(tt.code); got != tt.want {
				t.Errorf("CourseFullName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestCourseDetails(t *testing.T) {
	info := CourseDetails("CSE")
	if info.Name != "Computer Science & Engineering" {
		t.Errorf("Name = %q", info.Name)
	}
	if info.Group != "Computer Science & IT" {
		t.Errorf("Group = %q", info.Group)
	}
	if info.Description == "" {
		t.Error("Description empty for CSE")
	}

	unknown := CourseDetails("QQ")
	if unknown.Name != "QQ" || unknown.Group != "" {
		t.Errorf("unexpected details for unknown code: %+v", unknown)
	}
}
