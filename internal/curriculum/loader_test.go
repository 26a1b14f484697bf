package curriculum

import (
	"os"
	"path/filepath"
	"testing"
)

const subjectYAML = `id: S1
name: Biology
topics:
  - id: T1
    name: Cell structure
    content: |
      Cells are the basic unit of life.
    competencies:
      - id: C1
        code: BIO-1.1
        name: Identify organelles
      - id: C2
        code: BIO-1.2
        name: Explain membrane transport
  - id: T2
    name: Placeholder topic
    competencies:
      - id: C3
        code: BIO-2.1
        name: Not yet written
`

func writeCurriculum(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "biology.yaml"), []byte(subjectYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad_Directory(t *testing.T) {
	tree, err := Load(writeCurriculum(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	subj, ok := tree.Subject("S1")
	if !ok {
		t.Fatal("subject S1 not loaded")
	}
	if len(subj.Topics) != 2 {
		t.Errorf("subject has %d topics, want 2", len(subj.Topics))
	}

	topic, ok := tree.TopicForCompetency("C2")
	if !ok {
		t.Fatal("no owning topic for C2")
	}
	if topic.ID != "T1" {
		t.Errorf("owning topic = %s, want T1", topic.ID)
	}
	if !topic.HasContent() {
		t.Error("T1 should have instructional content")
	}

	empty, ok := tree.TopicForCompetency("C3")
	if !ok {
		t.Fatal("no owning topic for C3")
	}
	if empty.HasContent() {
		t.Error("T2 has no content and should report so")
	}
}

func TestCompetencyCode(t *testing.T) {
	tree, err := Load(writeCurriculum(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := tree.CompetencyCode("C1"); got != "BIO-1.1" {
		t.Errorf("CompetencyCode(C1) = %q, want BIO-1.1", got)
	}
	if got := tree.CompetencyCode("unknown"); got != "unknown" {
		t.Errorf("CompetencyCode(unknown) = %q, want the id back", got)
	}
}

func TestLoad_MissingPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Load() on a missing path should fail")
	}
}
