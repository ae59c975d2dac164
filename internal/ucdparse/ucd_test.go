package ucdparse

import (
	"strings"
	"testing"
)

const sample = `# emoji-test.txt
# Version: 15.1

# group: Smileys & Emotion

# subgroup: face-smiling
1F600                                                  ; fully-qualified     # 😀 E1.0 grinning face
263A FE0F                                              ; fully-qualified     # ☺️ E0.6 smiling face
263A                                                   ; unqualified         # ☺ E0.6 smiling face

# group: Food & Drink
1F347 ; fully-qualified # 🍇 E0.6 grapes
`

func TestParseLine(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Fatal(sc.Err())
	}
	t.Logf("token = %v", sc.Token)
	if sc.Token.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", sc.Token.Field(1))
	}
	from, to := sc.Token.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if sc.Next() {
		t.Errorf("expected a single token, have another one: %v", sc.Token)
	}
}

func TestParseSequences(t *testing.T) {
	var tokens []*Token
	sc, err := New(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	for sc.Next() {
		tokens = append(tokens, sc.Token)
	}
	if sc.Err() != nil {
		t.Fatal(sc.Err())
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 data lines, have %d", len(tokens))
	}
	if sc.Header("version") != "15.1" {
		t.Errorf("expected header Version to be 15.1, is %q", sc.Header("version"))
	}
	smiling := tokens[1]
	if smiling.Text() != "☺️" {
		t.Errorf("expected code-point sequence 263A FE0F, have %q", smiling.Text())
	}
	if smiling.Field(1) != "fully-qualified" {
		t.Errorf("expected status to be fully-qualified, is %q", smiling.Field(1))
	}
	if smiling.Comment != "☺️ E0.6 smiling face" {
		t.Errorf("unexpected comment %q", smiling.Comment)
	}
	if smiling.Group != "Smileys & Emotion" || smiling.Subgroup != "face-smiling" {
		t.Errorf("unexpected group/subgroup %q/%q", smiling.Group, smiling.Subgroup)
	}
	if tokens[3].Group != "Food & Drink" || tokens[3].Subgroup != "" {
		t.Errorf("expected subgroup to be reset with new group, is %q", tokens[3].Subgroup)
	}
	if tokens[3].LineNo != 12 {
		t.Errorf("expected grapes on line 12, is on line %d", tokens[3].LineNo)
	}
}

func TestParseError(t *testing.T) {
	err := Parse(strings.NewReader("1F600 ; ok\nXYZ ; broken\n"), func(*Token) {})
	if err == nil {
		t.Fatalf("expected hex decoding error, got none")
	}
	t.Logf("error = %v", err)
}
