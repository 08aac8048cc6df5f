package services

import (
	"testing"
)

func strptr(s string) *string { return &s }

func TestNormalizePreview(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		storedMime  *string
		defaultMime string
		wantValue   string
		wantMime    string
	}{
		{
			name:        "bare base64 gets default mime",
			raw:         "aGVsbG8=",
			defaultMime: "image/jpeg",
			wantValue:   "data:image/jpeg;base64,aGVsbG8=",
			wantMime:    "image/jpeg",
		},
		{
			name:        "bare base64 prefers stored mime",
			raw:         "aGVsbG8=",
			storedMime:  strptr("image/png"),
			defaultMime: "image/jpeg",
			wantValue:   "data:image/png;base64,aGVsbG8=",
			wantMime:    "image/png",
		},
		{
			name:        "data url passes through",
			raw:         "data:application/pdf;base64,cGRm",
			defaultMime: "application/pdf",
			wantValue:   "data:application/pdf;base64,cGRm",
			wantMime:    "application/pdf",
		},
		{
			name:        "data url mime wins over stored mime",
			raw:         "data:video/webm;base64,AAAA",
			storedMime:  strptr("video/mp4"),
			defaultMime: "video/mp4",
			wantValue:   "data:video/webm;base64,AAAA",
			wantMime:    "video/webm",
		},
		{
			name:        "remote url passes through",
			raw:         "https://cdn.example.org/previews/abc.jpg",
			defaultMime: "image/jpeg",
			wantValue:   "https://cdn.example.org/previews/abc.jpg",
			wantMime:    "image/jpeg",
		},
		{
			name:        "surrounding whitespace is trimmed",
			raw:         "  aGVsbG8=\n",
			defaultMime: "audio/mpeg",
			wantValue:   "data:audio/mpeg;base64,aGVsbG8=",
			wantMime:    "audio/mpeg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotValue, gotMime := normalizePreview(tt.raw, tt.storedMime, tt.defaultMime)
			if gotValue != tt.wantValue {
				t.Errorf("value = %q, want %q", gotValue, tt.wantValue)
			}
			if gotMime != tt.wantMime {
				t.Errorf("mime = %q, want %q", gotMime, tt.wantMime)
			}
		})
	}
}

func TestDataURLMime(t *testing.T) {
	if got := dataURLMime("data:image/png;base64,AAAA", "image/jpeg"); got != "image/png" {
		t.Errorf("got %q, want image/png", got)
	}
	if got := dataURLMime("data:,plain", "image/jpeg"); got != "image/jpeg" {
		t.Errorf("malformed data url should fall back, got %q", got)
	}
}
