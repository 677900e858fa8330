package rumorph

import "testing"

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"книга", "книга"},
		{"книга,", "книга"},
		{"«книга»", "книга"},
		{"„книга“", "книга"},
		{"— книга…", "книга"},
		{"книга?!", "книга"},
		{"(книга)", "книга"},
		{"'книга'", "книга"},
		{"\"книга\"", "книга"},
		// internal hyphens and apostrophes are morphologically significant
		{"кто-то", "кто-то"},
		{"кто-то,", "кто-то"},
		{"д'Артаньян", "д'Артаньян"},
		{"", ""},
		{"...", ""},
		{"—", ""},
		{"  дом  ", "дом"},
	}
	for _, tt := range tests {
		if got := NormalizeToken(tt.in); got != tt.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTokenIdempotent(t *testing.T) {
	inputs := []string{
		"книга", "«книга»,", "кто-то", "...", "— дом…", "д'Артаньян", "", "Это",
	}
	for _, in := range inputs {
		once := NormalizeToken(in)
		if twice := NormalizeToken(once); twice != once {
			t.Errorf("NormalizeToken not idempotent on %q: %q != %q", in, twice, once)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Книга", "книга"},
		{"ДОМ", "дом"},
		{"Ёж", "ёж"},
		{"Mixed", "mixed"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
