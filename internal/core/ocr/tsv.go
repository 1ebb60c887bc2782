package ocr

import (
	"strconv"
	"strings"
)

// tesseract TSV columns, in order
const (
	colLevel = iota
	colPageNum
	colBlockNum
	colParNum
	colLineNum
	colWordNum
	colLeft
	colTop
	colWidth
	colHeight
	colConf
	colText
	colCount
)

const levelWord = 5

// ParseTSV converts tesseract TSV output into word tokens. Only word-level
// rows (level 5) with non-empty text are kept. The second return value is the
// mean word confidence normalized to 0-1.
func ParseTSV(tsv string) ([]Token, float64) {
	lines := strings.Split(tsv, "\n")
	tokens := make([]Token, 0, len(lines))

	var confSum float64
	var confCount int

	for i, line := range lines {
		if i == 0 { // header row
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < colCount {
			continue
		}

		level, err := strconv.Atoi(cols[colLevel])
		if err != nil || level != levelWord {
			continue
		}

		text := strings.TrimSpace(cols[colText])
		if text == "" {
			continue
		}

		conf, err := strconv.ParseFloat(cols[colConf], 64)
		if err != nil {
			conf = 0
		}

		tokens = append(tokens, Token{
			Text:       text,
			Left:       atoiOr(cols[colLeft]),
			Top:        atoiOr(cols[colTop]),
			Width:      atoiOr(cols[colWidth]),
			Height:     atoiOr(cols[colHeight]),
			LineNum:    atoiOr(cols[colLineNum]),
			BlockNum:   atoiOr(cols[colBlockNum]),
			Confidence: conf / 100,
		})

		if conf >= 0 {
			confSum += conf
			confCount++
		}
	}

	var confidence float64
	if confCount > 0 {
		confidence = confSum / float64(confCount) / 100
	}
	return tokens, confidence
}

func atoiOr(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
