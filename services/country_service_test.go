package services

import "testing"

var searchFixture = []Country{
	{Code: "DE", Name: "Germany"},
	{Code: "FR", Name: "France"},
	{Code: "GE", Name: "Georgia"},
	{Code: "US", Name: "United States"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "VN", Name: "Vietnam"},
	{Code: "CI", Name: "Côte d'Ivoire"},
}

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Germany ", "germany"},
		{"Côte d'Ivoire", "cote d'ivoire"},
		{"VIỆT NAM", "viet nam"},
	}

	for _, tt := range tests {
		if got := normalizeInput(tt.input); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("germany", "germany"); got != 1.0 {
		t.Errorf("identical strings = %v, want 1.0", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("empty strings = %v, want 1.0", got)
	}
	if close, far := calculateSimilarity("germany", "germny"), calculateSimilarity("germany", "france"); close <= far {
		t.Errorf("similarity ordering broken: %v <= %v", close, far)
	}
}

func TestSearchCountries(t *testing.T) {
	t.Run("query rỗng trả nguyên danh sách", func(t *testing.T) {
		got := SearchCountries(searchFixture, "", 5)
		if len(got) != len(searchFixture) {
			t.Errorf("len = %d, want %d", len(got), len(searchFixture))
		}
	})

	t.Run("khớp substring", func(t *testing.T) {
		got := SearchCountries(searchFixture, "united", 5)
		if len(got) < 2 {
			t.Fatalf("got %+v, want both United States and United Kingdom", got)
		}
		names := map[string]bool{}
		for _, c := range got {
			names[c.Name] = true
		}
		if !names["United States"] || !names["United Kingdom"] {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("khớp mã quốc gia", func(t *testing.T) {
		got := SearchCountries(searchFixture, "vn", 5)
		found := false
		for _, c := range got {
			if c.Code == "VN" {
				found = true
			}
		}
		if !found {
			t.Errorf("got %+v, want Vietnam by code", got)
		}
	})

	t.Run("khớp gần đúng khi gõ sai chính tả", func(t *testing.T) {
		got := SearchCountries(searchFixture, "germny", 3)
		if len(got) == 0 || got[0].Name != "Germany" {
			t.Errorf("got %+v, want Germany first", got)
		}
	})

	t.Run("không bỏ dấu vẫn tìm được", func(t *testing.T) {
		got := SearchCountries(searchFixture, "côte", 3)
		if len(got) == 0 || got[0].Name != "Côte d'Ivoire" {
			t.Errorf("got %+v, want Côte d'Ivoire first", got)
		}
	})

	t.Run("giới hạn số kết quả", func(t *testing.T) {
		got := SearchCountries(searchFixture, "e", 2)
		if len(got) > 2 {
			t.Errorf("len = %d, want <= 2", len(got))
		}
	})
}
