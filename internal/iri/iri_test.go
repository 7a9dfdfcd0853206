package iri

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name, base, ref, want string
		wantErr               bool
	}{
		{"already absolute", "http://x/", "http://y/z", "http://y/z", false},
		{"relative path", "http://x/a/b", "c", "http://x/a/c", false},
		{"fragment only", "http://x/a", "#frag", "http://x/a#frag", false},
		{"empty ref is base", "http://x/a", "", "http://x/a", false},
		{"absolute path", "http://x/a/b", "/c", "http://x/c", false},
		{"dot segments", "http://x/a/b/", "../c", "http://x/a/c", false},
		{"no base is error", "", "a", "", true},
		{"network path", "http://x/a", "//y/z", "http://y/z", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.base, tt.ref, 1)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
			}
		})
	}
}
