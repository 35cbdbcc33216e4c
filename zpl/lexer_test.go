package zpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.labelcraft.dev/labelcraft/zpl"
)

func TestLexerBasicSequence(t *testing.T) {
	cmds := zpl.All([]byte("^XA^FO50,50^A0N,50,50^FDZPL Forge^FS^XZ"))
	require.Len(t, cmds, 6)

	assert.Equal(t, "XA", cmds[0].Op)
	assert.Equal(t, "FO", cmds[1].Op)
	assert.Equal(t, []string{"50", "50"}, cmds[1].Params)
	assert.Equal(t, "A", cmds[2].Op)
	assert.Equal(t, []string{"0N", "50", "50"}, cmds[2].Params)
	assert.Equal(t, "FD", cmds[3].Op)
	assert.Equal(t, "ZPL Forge", cmds[3].Data)
	assert.Equal(t, "FS", cmds[4].Op)
	assert.Equal(t, "XZ", cmds[5].Op)
}

func TestLexerWhitespaceIsIgnoredBetweenCommands(t *testing.T) {
	plain := zpl.All([]byte("^XA^FO10,10^FS^XZ"))
	spaced := zpl.All([]byte("^XA \n ^FO10,10 \t ^FS\n^XZ"))
	require.Equal(t, len(plain), len(spaced))
	for i := range plain {
		assert.Equal(t, plain[i].Op, spaced[i].Op)
		assert.Equal(t, plain[i].Params, spaced[i].Params)
	}
}

func TestLexerUnknownOpcodeIsPreservedNotDropped(t *testing.T) {
	cmds := zpl.All([]byte("^XA^ZZsomething^FS^XZ"))
	require.Len(t, cmds, 4)
	assert.Equal(t, "ZZ", cmds[1].Op)
	assert.Equal(t, "something", cmds[1].Data)
}

func TestLexerTruncatedControlAtEOF(t *testing.T) {
	cmds := zpl.All([]byte("^XA^"))
	require.Len(t, cmds, 2)
	assert.Equal(t, "XA", cmds[0].Op)
	assert.Equal(t, "", cmds[1].Op)
}

func TestLexerGFKeepsEmbeddedCommasInRawData(t *testing.T) {
	cmds := zpl.All([]byte("^XA^GFA,8,8,1,00FF,00FF^FS^XZ"))
	require.Len(t, cmds, 4)
	gf := cmds[1]
	assert.Equal(t, "GF", gf.Op)
	assert.Equal(t, []string{"A", "8", "8", "1"}, gf.Params)
	assert.Equal(t, "00FF,00FF", gf.Data)
}

func TestLexerFDDoesNotSplitOnCommas(t *testing.T) {
	cmds := zpl.All([]byte("^XA^FDa,b,c^FS^XZ"))
	fd := cmds[1]
	assert.Equal(t, "FD", fd.Op)
	assert.Nil(t, fd.Params)
	assert.Equal(t, "a,b,c", fd.Data)
}

func TestLexerControlCharacterReassignment(t *testing.T) {
	cmds := zpl.All([]byte("^XA^CC#XA#FO10,10#FS#XZ"))
	var ops []string
	for _, c := range cmds {
		ops = append(ops, c.Op)
	}
	assert.Equal(t, []string{"XA", "CC", "FO", "FS", "XZ"}, ops)
}

func TestLexerTildeControlReassignment(t *testing.T) {
	cmds := zpl.All([]byte("^XA^CT#~HS^FS^XZ"))
	// After ^CT#, the tilde control becomes '#'; the following literal '~HS'
	// is no longer special and is folded into FS's preceding trivia scan,
	// while a subsequent '#' would be read as a tilde command.
	require.True(t, len(cmds) >= 3)
	assert.Equal(t, "XA", cmds[0].Op)
	assert.Equal(t, "CT", cmds[1].Op)
}

func TestParseIntDefaultsAndClamps(t *testing.T) {
	assert.Equal(t, 5, zpl.ParseInt("", 5))
	assert.Equal(t, 0, zpl.ParseInt("-3", 5))
	assert.Equal(t, 7, zpl.ParseInt("7", 5))
	assert.Equal(t, 9, zpl.ParseInt("garbage", 9))
}

func TestParseFloatDefaultsAndClamps(t *testing.T) {
	assert.InDelta(t, 3.0, zpl.ParseFloat("", 3.0), 0.0001)
	assert.InDelta(t, 2.5, zpl.ParseFloat("2.5", 3.0), 0.0001)
	assert.InDelta(t, 0.0, zpl.ParseFloat("-1.0", 3.0), 0.0001)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2, zpl.Clamp(2, 0, 8))
	assert.Equal(t, 0, zpl.Clamp(-5, 0, 8))
	assert.Equal(t, 8, zpl.Clamp(50, 0, 8))
}
