package report

import (
	"io"
	"path/filepath"

	"github.com/temirov/logicost/internal/utils"
)

// Document is a named plain-text artifact.
type Document struct {
	FileName string
	Body     string
}

// WriteFile atomically writes the document into directory and returns the file path.
func (document Document) WriteFile(directory string) (string, error) {
	targetPath := filepath.Join(directory, document.FileName)
	writeError := utils.WriteFileAtomically(targetPath, func(writer io.Writer) error {
		_, copyError := io.WriteString(writer, document.Body)
		return copyError
	})
	if writeError != nil {
		return "", writeError
	}
	return targetPath, nil
}
