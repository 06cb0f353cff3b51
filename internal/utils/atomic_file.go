package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	atomicDirectoryPermissionsConstant   = 0o755
	atomicTemporaryPatternTemplate       = ".%s.*.tmp"
	atomicDirectoryErrorTemplateConstant = "unable to create directory %s: %w"
	atomicTemporaryErrorTemplateConstant = "unable to create temporary file for %s: %w"
	atomicRenameErrorTemplateConstant    = "unable to move %s into place: %w"
	atomicWriteErrorTemplateConstant     = "unable to write %s: %w"
)

// WriteFileAtomically streams content produced by writeContent into a temporary sibling of targetPath
// and renames it into place only when writeContent succeeds, so readers never observe a partial file.
func WriteFileAtomically(targetPath string, writeContent func(writer io.Writer) error) (resultError error) {
	targetDirectory := filepath.Dir(targetPath)
	if directoryError := os.MkdirAll(targetDirectory, atomicDirectoryPermissionsConstant); directoryError != nil {
		return fmt.Errorf(atomicDirectoryErrorTemplateConstant, targetDirectory, directoryError)
	}

	temporaryFile, createError := os.CreateTemp(targetDirectory, fmt.Sprintf(atomicTemporaryPatternTemplate, filepath.Base(targetPath)))
	if createError != nil {
		return fmt.Errorf(atomicTemporaryErrorTemplateConstant, targetPath, createError)
	}
	temporaryPath := temporaryFile.Name()

	defer func() {
		if resultError != nil {
			_ = temporaryFile.Close()
			_ = os.Remove(temporaryPath)
		}
	}()

	bufferedWriter := bufio.NewWriter(temporaryFile)
	if writeError := writeContent(bufferedWriter); writeError != nil {
		return fmt.Errorf(atomicWriteErrorTemplateConstant, targetPath, writeError)
	}
	if flushError := bufferedWriter.Flush(); flushError != nil {
		return fmt.Errorf(atomicWriteErrorTemplateConstant, targetPath, flushError)
	}
	if closeError := temporaryFile.Close(); closeError != nil {
		return fmt.Errorf(atomicWriteErrorTemplateConstant, targetPath, closeError)
	}
	if renameError := os.Rename(temporaryPath, targetPath); renameError != nil {
		return fmt.Errorf(atomicRenameErrorTemplateConstant, targetPath, renameError)
	}

	return nil
}
