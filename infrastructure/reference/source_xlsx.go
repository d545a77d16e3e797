package reference

import (
	"errors"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first worksheet of the workbook.
func readXLSX(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newMappingError(ErrSourceNotFound, path, "")
		}
		return nil, newMappingError(ErrUnreadable, path, err.Error())
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newMappingError(ErrUnreadable, path, err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, newMappingError(ErrUnreadable, path, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, newMappingError(ErrUnreadable, path, err.Error())
	}
	return rows, nil
}
