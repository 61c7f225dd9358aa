package ingest

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decode приводит содержимое файла к UTF-8 без BOM
// BOM (UTF-8, UTF-16 LE/BE) имеет приоритет; без BOM невалидный UTF-8
// считается GB18030 (выгрузки расписаний из Excel)
func decode(data []byte) (string, error) {
	var fallback transform.Transformer = unicode.UTF8.NewDecoder()
	if !utf8.Valid(data) {
		fallback = simplifiedchinese.GB18030.NewDecoder()
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(fallback), data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(out), nil
}
