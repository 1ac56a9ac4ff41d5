package utils

import (
	"io"
	"strings"
	"testing"

	"github.com/maxatome/go-testdeep/td"
)

func TestDetectUTF(t *testing.T) {
	td.Cmp(t, DetectUTF([]byte("\xEF\xBB\xBFabc")), EncUTF8)
	td.Cmp(t, DetectUTF([]byte("\xFE\xFF\x00a")), EncUTF16BigEndian)
	td.Cmp(t, DetectUTF([]byte("\xFF\xFEa\x00")), EncUTF16LittleEndian)
	td.Cmp(t, DetectUTF([]byte("abc")), EncUnknown)
	td.Cmp(t, DetectUTF(nil), EncUnknown)
	td.Cmp(t, EncUTF16LittleEndian.String(), "UTF-16LE")
}

func TestSelectReader(t *testing.T) {

	tests := []struct {
		src string
		res string
	}{
		{"\xEF\xBB\xBFfü1r", "fü1r"},
		{"\xFE\xFF\x00f\x00\xFC\x001\x00r", "fü1r"},
		{"\xFF\xFEf\x00\xFC\x001\x00r\x00", "fü1r"},
		{"fü1r", "fü1r"},
	}

	for i, tst := range tests {
		data, err := io.ReadAll(SelectReader(strings.NewReader(tst.src), DetectUTF([]byte(tst.src))))
		td.CmpNoError(t, err, "%d", i)
		td.Cmp(t, string(data), tst.res, "%d", i)

		data, err = io.ReadAll(NewBOMReader(strings.NewReader(tst.src)))
		td.CmpNoError(t, err, "%d", i)
		td.Cmp(t, string(data), tst.res, "%d: bom reader", i)
	}
}

func TestIsOneOfIgnoreCase(t *testing.T) {
	td.CmpTrue(t, IsOneOfIgnoreCase(".PAT", []string{".pat", ".txt"}))
	td.CmpFalse(t, IsOneOfIgnoreCase(".zip", []string{".pat", ".txt"}))
}

func TestSplitTrailing(t *testing.T) {

	word, tail := SplitTrailing("word,", ".,")
	td.Cmp(t, word, "word")
	td.Cmp(t, tail, ",")

	word, tail = SplitTrailing("...", ".")
	td.Cmp(t, word, "")
	td.Cmp(t, tail, "...")

	word, tail = SplitTrailing("d'hiver", ".,")
	td.Cmp(t, word, "d'hiver")
	td.Cmp(t, tail, "")
}
