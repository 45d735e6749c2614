package fields

import (
	"strings"
	"testing"
)

func TestInferSeniority(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Senior Software Developer", "senior"},
		{"Junior QA Engineer", "junior"},
		{"Graduate Analyst", "junior"},
		{"Engineering Manager", "manager"},
		{"Director of Engineering", "director"},
		{"Chief Technology Officer", "executive"},
		{"Software Engineer", DefaultSeniority},
	}
	for _, c := range cases {
		if got := InferSeniority(c.title); got != c.want {
			t.Fatalf("InferSeniority(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestNormalizeTitle_VariantRewrite(t *testing.T) {
	got := NormalizeTitle("Senior Software Developer")
	if !strings.Contains(got, "software engineer") {
		t.Fatalf("normalized = %q, want software engineer family", got)
	}

	if got := NormalizeTitle("SDE"); got != "software engineer" {
		t.Fatalf("normalized = %q", got)
	}

	// Unknown titles pass through lower-cased.
	if got := NormalizeTitle("Zookeeper"); got != "zookeeper" {
		t.Fatalf("normalized = %q", got)
	}
}

func TestNormalizeTitle_CanonicalIdentity(t *testing.T) {
	// Every canonical form must survive normalization unchanged, alone and
	// with a seniority prefix. "software engineer" once came back as
	// "software engineerineer" via the "software eng" variant.
	for _, tv := range titleVariants {
		if got := NormalizeTitle(tv.canonical); got != tv.canonical {
			t.Fatalf("NormalizeTitle(%q) = %q", tv.canonical, got)
		}
		if got := NormalizeTitle(strings.ToUpper(tv.canonical)); got != tv.canonical {
			t.Fatalf("NormalizeTitle(upper %q) = %q", tv.canonical, got)
		}
		prefixed := "senior " + tv.canonical
		if got := NormalizeTitle(prefixed); got != prefixed {
			t.Fatalf("NormalizeTitle(%q) = %q", prefixed, got)
		}
	}
}

func TestNormalizeTitle_NoRewriteInsideLongerWord(t *testing.T) {
	if got := NormalizeTitle("Software Engineering Manager"); got != "software engineering manager" {
		t.Fatalf("normalized = %q", got)
	}
}

func TestTitleKeywords(t *testing.T) {
	kws := TitleKeywords("senior software engineer")
	if len(kws) != 3 {
		t.Fatalf("keywords = %v", kws)
	}
}

func TestInferEmploymentType(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"This is a 6 month contract role", "contract"},
		{"Part-time position, 20 hours per week", "part-time"},
		{"Permanent position with benefits", "full-time"},
		{"", DefaultEmploymentType},
	}
	for _, c := range cases {
		if got := InferEmploymentType(c.text); got != c.want {
			t.Fatalf("InferEmploymentType(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestInferLocationType(t *testing.T) {
	if got := InferLocationType("Fully remote, UK based"); got != "remote" {
		t.Fatalf("got %q", got)
	}
	if got := InferLocationType("Hybrid working, 2 days in office"); got != "hybrid" {
		t.Fatalf("got %q", got)
	}
	if got := InferLocationType("Leeds city centre"); got != DefaultLocationType {
		t.Fatalf("got %q", got)
	}
}

func TestInferDepartment(t *testing.T) {
	if got := InferDepartment("Backend Developer building APIs"); got != "engineering" {
		t.Fatalf("got %q", got)
	}
	if got := InferDepartment("Payroll Administrator"); got != "finance" {
		t.Fatalf("got %q", got)
	}
	if got := InferDepartment("Town Planner"); got != DefaultDepartment {
		t.Fatalf("got %q", got)
	}
}
