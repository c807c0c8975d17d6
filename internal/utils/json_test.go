package utils

import (
	"strings"
	"testing"
)

func TestToJSON(t *testing.T) {
	got := ToJSON(map[string]string{"section": "242"})
	if got != `{"section":"242"}` {
		t.Fatalf("unexpected json: %s", got)
	}
}

func TestToJSONStruct(t *testing.T) {
	got := ToJSON(struct {
		Title string `json:"title"`
	}{Title: "Adaptive cache"})
	if !strings.Contains(got, `"title":"Adaptive cache"`) {
		t.Fatalf("unexpected json: %s", got)
	}
}

func TestToJSONUnmarshalable(t *testing.T) {
	if got := ToJSON(make(chan int)); got != "" {
		t.Fatalf("expected empty string for unmarshalable value, got %s", got)
	}
}
