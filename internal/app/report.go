package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ayusman/gesturecap/internal/store"
)

// WriteReport prints the indexed samples as a table. An empty word lists
// every word in the index.
func WriteReport(w io.Writer, st *store.Store, word string) error {
	var words []*store.Word
	if word != "" {
		found, err := st.Words().GetByName(word)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("word %q has no samples", word)
		}
		if err != nil {
			return err
		}
		words = append(words, found)
	} else {
		all, err := st.Words().List()
		if err != nil {
			return err
		}
		words = all
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Word", "Folder", "Frames", "Created"})

	var total, frames int
	for _, wd := range words {
		entries, err := st.Samples().ListByWord(wd.ID)
		if err != nil {
			return fmt.Errorf("list samples of %s: %w", wd.Name, err)
		}
		for _, e := range entries {
			t.AppendRow(table.Row{wd.Name, e.Folder, e.Frames, e.CreatedAt.Format("2006-01-02 15:04:05")})
			frames += e.Frames
		}
		total += len(entries)
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d samples", total), frames, ""})
	t.Render()

	return nil
}
