package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTSV = `level	page_num	block_num	par_num	line_num	word_num	left	top	width	height	conf	text
1	1	0	0	0	0	0	0	600	800	-1
4	1	1	1	1	0	10	20	200	30	-1
5	1	1	1	1	1	10	20	80	30	96.5	TOTAL
5	1	1	1	1	2	100	20	110	30	91.5	1,250.00
5	1	1	1	2	1	10	60	60	30	88.0	ดีเซล
5	1	1	1	2	2	80	60	40	30	95.0	` + "\t" + `
3	1	1	0	0	0	0	0	600	100	-1
`

func TestParseTSV(t *testing.T) {
	tokens, conf := ParseTSV(sampleTSV)

	// only word-level rows with text survive
	require.Len(t, tokens, 3)

	assert.Equal(t, "TOTAL", tokens[0].Text)
	assert.Equal(t, 10, tokens[0].Left)
	assert.Equal(t, 20, tokens[0].Top)
	assert.Equal(t, 80, tokens[0].Width)
	assert.Equal(t, 30, tokens[0].Height)
	assert.Equal(t, 1, tokens[0].LineNum)
	assert.Equal(t, 1, tokens[0].BlockNum)
	assert.InDelta(t, 0.965, tokens[0].Confidence, 1e-9)

	assert.Equal(t, "1,250.00", tokens[1].Text)
	assert.Equal(t, "ดีเซล", tokens[2].Text)
	assert.Equal(t, 2, tokens[2].LineNum)

	// mean of the surviving word confidences, scaled to 0-1
	assert.InDelta(t, (96.5+91.5+88.0)/3/100, conf, 1e-9)
}

func TestParseTSV_Empty(t *testing.T) {
	tokens, conf := ParseTSV("")
	assert.Empty(t, tokens)
	assert.Zero(t, conf)

	tokens, conf = ParseTSV("level	page_num	block_num	par_num	line_num	word_num	left	top	width	height	conf	text\n")
	assert.Empty(t, tokens)
	assert.Zero(t, conf)
}

func TestParseTSV_MalformedRowsSkipped(t *testing.T) {
	tsv := "header\n5	1	1\nnot a row\n5	1	1	1	1	1	0	0	10	10	90.0	ok\n"
	tokens, _ := ParseTSV(tsv)
	require.Len(t, tokens, 1)
	assert.Equal(t, "ok", tokens[0].Text)
}
