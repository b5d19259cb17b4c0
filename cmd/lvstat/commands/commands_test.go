package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/cmd/lvstat/commands"
	"github.com/katalvlaran/lvstat/latex"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := commands.NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestLatexCommand(t *testing.T) {
	out, _, err := run(t, "", "latex", "3,4,5;6,7,9;4,5,122")
	require.NoError(t, err)
	assert.Equal(t, `\begin{bmatrix} 3 & 4 & 5 \\ 6 & 7 & 9 \\ 4 & 5 & 122 \end{bmatrix}`+"\n", out)
}

func TestLatexCommand_StdinAndFlags(t *testing.T) {
	out, _, err := run(t, "1 0.5\n2 3\n", "latex", "--env", "pmatrix", "--precision", "1")
	require.NoError(t, err)
	assert.Equal(t, `\begin{pmatrix} 1.0 & 0.5 \\ 2.0 & 3.0 \end{pmatrix}`+"\n", out)
}

func TestLatexCommand_FloatCells(t *testing.T) {
	out, _, err := run(t, "", "latex", "1.5,2;3,1234567.5")
	require.NoError(t, err)
	assert.Equal(t, `\begin{bmatrix} 1.5 & 2.0 \\ 3.0 & 1234567.5 \end{bmatrix}`+"\n", out)
}

func TestLatexCommand_Errors(t *testing.T) {
	_, _, err := run(t, "", "latex", "1,2;3")
	require.ErrorIs(t, err, latex.ErrInvalidInput)

	_, _, err = run(t, "", "latex", "")
	require.ErrorIs(t, err, latex.ErrInvalidInput)

	_, _, err = run(t, "", "latex", "1,x")
	require.Error(t, err)

	_, _, err = run(t, "", "latex", "--env", "tabular", "1")
	require.ErrorIs(t, err, latex.ErrUnknownEnvironment)
}

func TestHotellingCommand_DefaultIris(t *testing.T) {
	out, _, err := run(t, "", "hotelling")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Test statistic: 15.8266"), lines[0])
	assert.Equal(t, "Degrees of freedom: 2 and 97", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "p-value: 1.1259"), lines[2])
}

func TestHotellingCommand_TableAndYAML(t *testing.T) {
	out, _, err := run(t, "", "hotelling", "--format", "table", "--alpha", "0.01")
	require.NoError(t, err)
	lower := strings.ToLower(out)
	assert.Contains(t, lower, "2 and 97")
	assert.Contains(t, lower, "reject h0")
	assert.NotContains(t, lower, "fail to reject")

	out, _, err = run(t, "", "hotelling", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "df1: 2\n")
	assert.Contains(t, out, "df2: 97\n")
	assert.Contains(t, out, "reject: true\n")
	assert.Contains(t, out, "alpha: 0.05\n")
}

func TestHotellingCommand_CSVFiles(t *testing.T) {
	dir := t.TempDir()
	xPath := filepath.Join(dir, "x.csv")
	yPath := filepath.Join(dir, "y.csv")
	sample := "a,b\n1,2\n2,1\n3,5\n4,3\n"
	require.NoError(t, os.WriteFile(xPath, []byte(sample), 0o600))
	require.NoError(t, os.WriteFile(yPath, []byte(sample), 0o600))

	out, _, err := run(t, "", "hotelling", "--x", xPath, "--y", yPath)
	require.NoError(t, err)
	assert.Equal(t, "Test statistic: 0.0\nDegrees of freedom: 2 and 5\np-value: 1.0\n", out)

	_, _, err = run(t, "", "hotelling", "--x", xPath)
	require.ErrorIs(t, err, commands.ErrSampleFiles)
}

func TestHotellingCommand_VerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "", "hotelling", "-v", "--features", "0,1,2,3")
	require.NoError(t, err)
	assert.Contains(t, errOut, "df1=4")
	assert.Contains(t, errOut, "n1=50")
	assert.Contains(t, errOut, "p2=4")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lvstat "))
}
