package tree

import (
	"errors"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	trees := []Node{
		g("Hornet"),
		q("¿A?", g("X"), g("Y")),
		Default(),
	}

	for _, want := range trees {
		data, err := Marshal(want)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if !Equal(got, want) {
			t.Errorf("round-trip changed the tree:\n%s", data)
		}
	}
}

func TestMarshalKeys(t *testing.T) {
	data, err := Marshal(q("¿A?", g("X"), g("Y")))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	for _, key := range []string{`"q"`, `"yes"`, `"no"`, `"guess"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("serialized tree missing key %s:\n%s", key, data)
		}
	}
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"neither variant", `{}`},
		{"both variants", `{"q": "¿A?", "guess": "X", "yes": {"guess": "X"}, "no": {"guess": "Y"}}`},
		{"missing no branch", `{"q": "¿A?", "yes": {"guess": "X"}}`},
		{"missing yes branch", `{"q": "¿A?", "no": {"guess": "Y"}}`},
		{"empty question", `{"q": "", "yes": {"guess": "X"}, "no": {"guess": "Y"}}`},
		{"empty guess", `{"guess": ""}`},
		{"leaf with children", `{"guess": "X", "yes": {"guess": "Y"}}`},
		{"malformed nested node", `{"q": "¿A?", "yes": {"guess": "X"}, "no": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error %v does not wrap ErrMalformed", err)
			}
		})
	}
}

func TestUnmarshalRejectsNonJSON(t *testing.T) {
	_, err := Unmarshal([]byte("not json"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
