package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/gesturecap/internal/store"
)

func TestWriteReport(t *testing.T) {
	st, err := store.New(filepath.Join(t.TempDir(), "samples.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer st.Close()

	for _, name := range []string{"hola", "gracias"} {
		w, err := st.Words().GetOrCreate(name)
		if err != nil {
			t.Fatalf("GetOrCreate() error = %v", err)
		}
		if err := st.Samples().Create(&store.Sample{WordID: w.ID, Folder: "muestras_" + name, Frames: 6}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("all words", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteReport(&buf, st, ""); err != nil {
			t.Fatalf("WriteReport() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{"muestras_hola", "muestras_gracias", "12"} {
			if !strings.Contains(out, want) {
				t.Errorf("report missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("single word", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteReport(&buf, st, "hola"); err != nil {
			t.Fatalf("WriteReport() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "muestras_hola") {
			t.Errorf("report missing hola sample:\n%s", out)
		}
		if strings.Contains(out, "muestras_gracias") {
			t.Errorf("report should not include other words:\n%s", out)
		}
	})

	t.Run("unknown word", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteReport(&buf, st, "adios"); err == nil {
			t.Error("expected error for unknown word")
		}
	})
}
