package catalog

import "testing"

func TestOwnerEmail(t *testing.T) {
	cases := []struct {
		name string
		arn  string
		want string
	}{
		{"full session arn", "arn:aws:sts::123456789012:assumed-role/launcher/jane.doe@corp.io", "jane.doe@corp.io"},
		{"no slashes", "jane.doe@corp.io", "jane.doe@corp.io"},
		{"empty", "", ""},
		{"trailing slash", "arn:aws:sts::123456789012:assumed-role/launcher/", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OwnerEmail(Product{SessionARN: tc.arn})
			if got != tc.want {
				t.Errorf("OwnerEmail(%q) = %q, want %q", tc.arn, got, tc.want)
			}
		})
	}
}

func TestExtractOwnerInfo(t *testing.T) {
	p := Product{
		Name:       "Jane-Doe-vpc",
		SessionARN: "arn:aws:sts::1:assumed-role/launcher/jane@corp.io",
	}
	info, ok := ExtractOwnerInfo(p)
	if !ok {
		t.Fatal("expected owner info for conforming name")
	}
	if info.FirstName != "Jane" || info.LastName != "Doe" || info.Email != "jane@corp.io" {
		t.Errorf("unexpected owner info: %+v", info)
	}

	// Extra segments keep only the first two as the name pair.
	p.Name = "Jane-Doe-multi-az-vpc"
	info, ok = ExtractOwnerInfo(p)
	if !ok || info.FirstName != "Jane" || info.LastName != "Doe" {
		t.Errorf("unexpected owner info for long name: %+v ok=%v", info, ok)
	}

	// Too few segments is absence, not an error.
	p.Name = "wrong-name"
	if _, ok := ExtractOwnerInfo(p); ok {
		t.Error("expected no owner info for two-segment name")
	}
	p.Name = ""
	if _, ok := ExtractOwnerInfo(p); ok {
		t.Error("expected no owner info for empty name")
	}
}

func TestMatchRoster(t *testing.T) {
	roster := []User{
		{FirstName: "Jane", LastName: "Doe", Email: "jane@corp.io"},
		{FirstName: "Imposter", LastName: "Doe", Email: "jane@corp.io"},
		{FirstName: "Ato", LastName: "Essien", Email: "ato@corp.io"},
	}

	u, ok := MatchRoster("jane@corp.io", roster)
	if !ok || u.FirstName != "Jane" {
		t.Errorf("expected first roster match to win, got %+v ok=%v", u, ok)
	}

	if _, ok := MatchRoster("nobody@corp.io", roster); ok {
		t.Error("expected miss for unknown email")
	}
	if _, ok := MatchRoster("", roster); ok {
		t.Error("expected miss for empty email")
	}
}
