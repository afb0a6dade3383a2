package gemini

import "testing"

func TestDuplicateKeys_NoDup(t *testing.T) {
	iss, err := DuplicateKeys([]byte(`{"type":"OBJECT","properties":{"a":{"type":"STRING"},"b":{"type":"STRING"}},"required":["a","a"]}`))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 0 {
		t.Fatalf("expected 0 issues, got %d: %v", len(iss), iss)
	}
}

func TestDuplicateKeys_WithDup(t *testing.T) {
	js := []byte(`{
  "type": "OBJECT",
  "properties": {
    "a": {"type": "STRING"},
    "list": {"type": "ARRAY", "items": {"type": "STRING", "type": "NUMBER"}},
    "a": {"type": "NUMBER"}
  },
  "type": "OBJECT"
}`)
	iss, err := DuplicateKeys(js)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []struct{ path, name string }{
		{"/properties/list/items", "type"},
		{"/properties", "a"},
		{"/", "type"},
	}
	if len(iss) != len(want) {
		t.Fatalf("expected %d issues, got %v", len(want), iss)
	}
	for i, w := range want {
		if iss[i].Code != CodeDuplicateKey || iss[i].Severity != Warn {
			t.Fatalf("issue %d: unexpected %+v", i, iss[i])
		}
		if iss[i].Path != w.path || iss[i].Params["name"] != w.name {
			t.Fatalf("issue %d: got %s %q, want %s %q", i, iss[i].Path, iss[i].Params["name"], w.path, w.name)
		}
	}
}

func TestDuplicateKeys_ArrayIndexInPath(t *testing.T) {
	iss, err := DuplicateKeys([]byte(`{"enum":["x"],"xs":[{"a":1},{"b":1,"b":2}]}`))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 || iss[0].Path != "/xs/1" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestDuplicateKeys_InvalidJSON(t *testing.T) {
	if _, err := DuplicateKeys([]byte(`{"a":`)); err == nil {
		t.Fatalf("expected error")
	}
}
