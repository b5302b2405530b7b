package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSpeakerNames(t *testing.T) {
	got, err := parseSpeakerNames(" SPEAKER_00=Alice , SPEAKER_01 = Bob ,,")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got["SPEAKER_00"] != "Alice" || got["SPEAKER_01"] != "Bob" {
		t.Fatalf("unexpected names: %v", got)
	}

	if got, err := parseSpeakerNames(""); err != nil || len(got) != 0 {
		t.Fatalf("expected empty map, got %v, %v", got, err)
	}
	if _, err := parseSpeakerNames("SPEAKER_00"); err == nil {
		t.Fatalf("expected error for entry without '='")
	}
}

func TestExecute_Files(t *testing.T) {
	tmp := t.TempDir()
	in := filepath.Join(tmp, "in.json")
	out := filepath.Join(tmp, "out.csv")
	doc := `{"speakers": [{"speaker": "SPEAKER_00", "timestamp": [0, 1.5], "text": "Hello"}]}`
	if err := os.WriteFile(in, []byte(doc), 0o644); err != nil {
		t.Fatalf("write input fixture: %v", err)
	}
	t.Setenv("DIARCSV_SPEAKER_NAMES", "SPEAKER_00=Env")

	code := Execute([]string{"-i", in, "-o", out, "-n", "SPEAKER_00=Flag", "--number-final-turn"})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(b), "1,0,1.5,Flag,00:00:00.0,00:00:01.5,Hello,0") {
		t.Fatalf("unexpected output:\n%s", string(b))
	}
}

func TestExecute_Failures(t *testing.T) {
	tmp := t.TempDir()
	bad := filepath.Join(tmp, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write input fixture: %v", err)
	}
	out := filepath.Join(tmp, "out.csv")

	cases := map[string][]string{
		"invalid json":  {"-i", bad, "-o", out},
		"missing input": {"-i", filepath.Join(tmp, "nope.json"), "-o", out},
		"positional":    {"extra"},
		"bad log level": {"-i", bad, "--log-level", "loud"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if code := Execute(args); code != 1 {
				t.Fatalf("expected exit code 1, got %d", code)
			}
			if _, err := os.Stat(out); !os.IsNotExist(err) {
				t.Fatalf("expected no output file, stat err=%v", err)
			}
		})
	}
}
