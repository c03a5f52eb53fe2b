package patterns

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTableOrder(t *testing.T) {
	tables := Default()

	if tables.Name != DefaultName {
		t.Fatalf("Default().Name = %q, want %q", tables.Name, DefaultName)
	}

	counts := []struct {
		table string
		got   int
		want  int
	}{
		{"wordy_phrases", len(tables.WordyPhrases), 14},
		{"complex_words", len(tables.ComplexWords), 14},
		{"weak_words", len(tables.WeakWords), 9},
		{"hedging_phrases", len(tables.HedgingPhrases), 10},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("len(%s) = %d, want %d", c.table, c.got, c.want)
		}
	}

	if first := tables.WordyPhrases[0]; first.Phrase != "in order to" || first.Replacement != "to" {
		t.Errorf("first wordy phrase = %+v, want in order to -> to", first)
	}
	if last := tables.WordyPhrases[13]; last.Phrase != "make a decision" || last.Replacement != "decide" {
		t.Errorf("last wordy phrase = %+v, want make a decision -> decide", last)
	}
	if first := tables.ComplexWords[0]; first.Phrase != "utilize" || first.Replacement != "use" {
		t.Errorf("first complex word = %+v, want utilize -> use", first)
	}
	if got := tables.HedgingPhrases[8]; got != "I think" {
		t.Errorf("hedging_phrases[8] = %q, want %q", got, "I think")
	}
	if tables.WeakWordThreshold != 2 {
		t.Errorf("WeakWordThreshold = %d, want 2", tables.WeakWordThreshold)
	}
}

func TestIsWeakWord(t *testing.T) {
	tables := Default()

	for _, w := range []string{"very", "really", "just", "literally"} {
		if !tables.IsWeakWord(w) {
			t.Errorf("IsWeakWord(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"every", "adjust", "Very", ""} {
		if tables.IsWeakWord(w) {
			t.Errorf("IsWeakWord(%q) = true, want false", w)
		}
	}
}

func TestReplacementApply(t *testing.T) {
	tables := Default()

	wordy := tables.WordyPhrases[0]
	if got := wordy.Apply("In Order To win, train in order to last."); got != "to win, train to last." {
		t.Errorf("wordy Apply = %q", got)
	}

	complexWord := tables.ComplexWords[0]
	if got := complexWord.Apply("Utilize it; we utilize tools."); got != "use it; we use tools." {
		t.Errorf("complex Apply = %q", got)
	}
	if got := complexWord.Apply("It utilizes tools."); got != "It utilizes tools." {
		t.Errorf("complex Apply matched inside a longer word: %q", got)
	}
}

func TestLoad(t *testing.T) {
	if _, err := Load("english"); err != nil {
		t.Errorf("Load(english) error = %v", err)
	}
	if _, err := Load("klingon"); err == nil {
		t.Error("Load(klingon) error = nil, want error")
	}

	names := Available()
	if len(names) == 0 || names[0] != "english" {
		t.Errorf("Available() = %v, want to include english", names)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "valid",
			content: `name: house
weak_word_threshold: 1
wordy_phrases:
  - phrase: At The End Of The Day
    replacement: ultimately
weak_words: [Totally]
hedging_phrases: [arguably]
`,
		},
		{
			name:    "missing name",
			content: "weak_words: [very]\n",
			wantErr: "no name",
		},
		{
			name: "empty replacement",
			content: `name: broken
complex_words:
  - phrase: utilise
    replacement: ""
`,
			wantErr: "empty replacement",
		},
		{
			name:    "bad yaml",
			content: "name: [unterminated\n",
			wantErr: "invalid yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write table file: %v", err)
			}

			tables, err := LoadFile(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if tables.WordyPhrases[0].Phrase != "at the end of the day" {
				t.Errorf("phrase not lowercased: %q", tables.WordyPhrases[0].Phrase)
			}
			if !tables.IsWeakWord("totally") {
				t.Error("IsWeakWord(totally) = false, want true")
			}
		})
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) error = nil, want error")
	}
}
