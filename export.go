package main

import (
	"bufio"
	"fmt"
	"os"
)

// exportVisualTXT writes the whole map as the text blocks shown on screen,
// without the cursor.
func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range textMap(m.grid()) {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func (m *model) exportPNG(filename string) error {
	return m.session.ExportPNG(m.ctx, filename)
}
