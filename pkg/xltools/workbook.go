package xltools

import (
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// OpenWorkbook opens an xlsx document for reading or updating.
func OpenWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, newMergeError("open", path, ErrFileNotFound)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newMergeError("open", path, err)
	}
	return f, nil
}

// SaveWorkbook writes the document to path.
func SaveWorkbook(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return newMergeError("save", path, err)
	}
	return nil
}

// DerivedName inserts "_suffix" before the file extension:
// "report.xlsx" becomes "report_new.xlsx". A path without an extension
// gets the suffix appended.
func DerivedName(path, suffix string) string {
	lastDot := strings.LastIndex(path, ".")
	if lastDot == -1 {
		return path + "_" + suffix
	}
	return path[:lastDot] + "_" + suffix + path[lastDot:]
}

// BackupFile copies path to its "_old" sibling and returns the backup path.
func BackupFile(path string) (string, error) {
	backup := DerivedName(path, "old")

	src, err := os.Open(path)
	if err != nil {
		return "", newMergeError("backup", path, err)
	}
	defer src.Close()

	dst, err := os.Create(backup)
	if err != nil {
		return "", newMergeError("backup", backup, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", newMergeError("backup", backup, err)
	}
	return backup, nil
}

// styler creates and caches solid-fill cell styles for one document.
// Style creation is cheap but excelize allocates a new style id per call,
// so repeated fills of the same color reuse one id.
type styler struct {
	f     *excelize.File
	cache map[string]int
}

func newStyler(f *excelize.File) *styler {
	return &styler{f: f, cache: make(map[string]int)}
}

func (s *styler) fill(color string) (int, error) {
	if id, ok := s.cache[color]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
	if err != nil {
		return 0, err
	}
	s.cache[color] = id
	return id, nil
}
