package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (m *model) copyTextMap() error {
	return writeClipboard(strings.Join(textMap(m.grid()), "\n") + "\n")
}

// mapDir is where map files are listed from and saved to.
func (m *model) mapDir() string {
	if m.config != nil && m.config.SaveDirectory != "" {
		return m.config.SaveDirectory
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func (m *model) scanMapFiles() {
	m.fileList = []string{}

	entries, err := os.ReadDir(m.mapDir())
	if err != nil {
		m.selectedFileIndex = -1
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() && hasExtension(entry.Name(), mapExtension) {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)

	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
		m.filename = stripExtension(m.fileList[0], mapExtension)
	} else {
		m.selectedFileIndex = -1
	}
}

// selectedFileMatches reports whether the typed name is still the list
// selection, i.e. the user has not started typing their own.
func (m *model) selectedFileMatches() bool {
	if m.selectedFileIndex < 0 || m.selectedFileIndex >= len(m.fileList) {
		return false
	}
	return m.filename == stripExtension(m.fileList[m.selectedFileIndex], mapExtension)
}

func (m *model) selectFile(delta int) {
	n := len(m.fileList)
	if n == 0 {
		return
	}
	if m.selectedFileIndex < 0 {
		if delta > 0 {
			m.selectedFileIndex = 0
		} else {
			m.selectedFileIndex = n - 1
		}
	} else {
		m.selectedFileIndex = (m.selectedFileIndex + delta + n) % n
	}
	m.filename = stripExtension(m.fileList[m.selectedFileIndex], mapExtension)
}

func hasExtension(name, ext string) bool {
	return strings.HasSuffix(strings.ToLower(name), ext)
}

func stripExtension(name, ext string) string {
	if hasExtension(name, ext) {
		return name[:len(name)-len(ext)]
	}
	return name
}

func withExtension(name, ext string) string {
	if hasExtension(name, ext) {
		return name
	}
	return name + ext
}

// resolvePath places bare file names in the save directory.
func (m *model) resolvePath(name string) string {
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) || m.config == nil {
		return name
	}
	return m.config.GetSavePath(name)
}
