package media

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveBase64RoundTrip(t *testing.T) {
	storage := NewStorage(t.TempDir())
	payload := []byte("not really a png, but bytes all the same")
	data := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	ref, err := storage.SaveBase64("recipes", data)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(ref, "recipes/") || !strings.HasSuffix(ref, ".png") {
		t.Errorf("ref = %q, want recipes/<name>.png", ref)
	}

	stored, err := os.ReadFile(filepath.Join(storage.baseDir, filepath.FromSlash(ref)))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(stored) != string(payload) {
		t.Error("stored bytes differ from the decoded payload")
	}
}

func TestSaveBase64Invalid(t *testing.T) {
	storage := NewStorage(t.TempDir())

	tests := []struct {
		name string
		data string
	}{
		{name: "no data uri prefix", data: "hello"},
		{name: "missing base64 marker", data: "data:image/png,abcd"},
		{name: "unsupported type", data: "data:image/tiff;base64,aGVsbG8="},
		{name: "broken base64", data: "data:image/png;base64,!!!"},
		{name: "empty payload", data: "data:image/png;base64,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := storage.SaveBase64("users", tt.data); !errors.Is(err, ErrInvalidImage) {
				t.Errorf("error = %v, want ErrInvalidImage", err)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	storage := NewStorage(t.TempDir())
	data := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("img"))

	ref, err := storage.SaveBase64("users", data)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := storage.Remove(ref); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// Removing again, or removing an empty ref, is not an error.
	if err := storage.Remove(ref); err != nil {
		t.Errorf("second remove: %v", err)
	}
	if err := storage.Remove(""); err != nil {
		t.Errorf("remove empty ref: %v", err)
	}
}
