package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudcmds/marmoset/bytecode"
	"github.com/cloudcmds/marmoset/errors"
	"github.com/cloudcmds/marmoset/object"
	"github.com/cloudcmds/marmoset/op"
	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestCompileText(t *testing.T) {
	stdout, _, err := execute(t, "compile", "testdata/add.json", "--output", "text")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "0000 LOAD_CONST 0\n0003 LOAD_CONST 1\n0006 BINARY_ADD\n0007 POP_TOP\n"))
	require.Contains(t, stdout, "4 instructions, 8 bytes, 2 constants")
}

func TestCompileJSON(t *testing.T) {
	stdout, _, err := execute(t, "compile", "testdata/if_else.yaml", "--output", "json")
	require.NoError(t, err)

	code, err := bytecode.Unmarshal([]byte(stdout))
	require.NoError(t, err)
	require.Equal(t, 20, code.InstructionCount())
	require.Equal(t, 4, code.ConstantCount())
}

func TestCompileCBORRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "add.mbc")
	_, _, err := execute(t, "compile", "testdata/add.json", "--output", "cbor", "--out", path)
	require.NoError(t, err)
	viper.Set("out", "")
	t.Cleanup(func() { viper.Set("out", "") })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	code, err := bytecode.UnmarshalBinary(data)
	require.NoError(t, err)
	require.Equal(t, "0000 LOAD_CONST 0\n0003 LOAD_CONST 1\n0006 BINARY_ADD\n0007 POP_TOP\n", code.String())

	stdout, _, err := execute(t, "dis", path, "--bytecode", "--constants")
	require.NoError(t, err)
	require.Contains(t, stdout, "BINARY_ADD")
	require.Contains(t, stdout, "| INDEX |")
	viper.Set("bytecode", false)
	viper.Set("constants", false)
}

func TestCompileUnimplemented(t *testing.T) {
	_, _, err := execute(t, "compile", "testdata/unsupported.yaml", "--output", "text")
	require.True(t, errors.Is(err, errors.ErrUnimplemented))
	require.Equal(t, "compile error: unimplemented: assignment statement\n\nlocation: unsupported.yaml:1:1 (line 1, column 1)", err.Error())
}

func TestDis(t *testing.T) {
	stdout, _, err := execute(t, "dis", "testdata/if_else.yaml")
	require.NoError(t, err)
	require.Contains(t, stdout, "|      7 | JUMP_IF_NOT_TRUTHY   |       16 | to 0016 |")
	require.Contains(t, stdout, "|     13 | JUMP                 |       19 | to 0019 |")
}

func TestCheck(t *testing.T) {
	_, stderr, err := execute(t, "check", "testdata/unsupported.yaml")
	require.EqualError(t, err, "2 unsupported constructs")
	require.Contains(t, stderr, "compile error[E2011]: unimplemented: assignment statement")
	require.Contains(t, stderr, "--> unsupported.yaml:1:1")
	require.Contains(t, stderr, "compile error[E2011]: unimplemented: identifier")
	require.Contains(t, stderr, "--> unsupported.yaml:2:5")

	stdout, _, err := execute(t, "check", "testdata/add.json")
	require.NoError(t, err)
	require.Equal(t, "ok\n", stdout)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "dev\n", stdout)
}

func TestReadInput(t *testing.T) {
	_, err := readInput(nil, strings.NewReader(""))
	require.EqualError(t, err, "no input specified (pass a file or --stdin)")

	viper.Set("stdin", true)
	t.Cleanup(func() { viper.Set("stdin", false) })

	in, err := readInput(nil, strings.NewReader(`{"type": "bool", "value": true}`))
	require.NoError(t, err)
	require.Equal(t, "<stdin>", in.name)

	code, err := compileInput(in)
	require.NoError(t, err)
	require.Equal(t, op.Make(op.True), code.Instructions())

	_, err = readInput([]string{"testdata/add.json"}, strings.NewReader(""))
	require.EqualError(t, err, "multiple input sources specified")
}

func TestWriteArtifactUnknownFormat(t *testing.T) {
	code := bytecode.NewCode(bytecode.CodeParams{
		Instructions: op.Make(op.LoadConst, 0),
		Constants:    []object.Object{object.NewInt(1)},
	})
	var buf bytes.Buffer
	err := writeArtifact(&buf, code, "xml", false)
	require.EqualError(t, err, "unknown output format: xml")
}

func TestLoadArtifact(t *testing.T) {
	code := bytecode.NewCode(bytecode.CodeParams{
		Instructions: op.Make(op.LoadConst, 0),
		Constants:    []object.Object{object.NewString("hi")},
	})
	data, err := bytecode.Marshal(code)
	require.NoError(t, err)
	loaded, err := loadArtifact(&input{name: "a.json", data: data})
	require.NoError(t, err)
	require.True(t, code.Equals(loaded))

	data, err = bytecode.MarshalBinary(code)
	require.NoError(t, err)
	loaded, err = loadArtifact(&input{name: "a.mbc", data: data})
	require.NoError(t, err)
	require.True(t, code.Equals(loaded))
}

func TestWriteArtifactFileJSONWithColor(t *testing.T) {
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = true })

	code := bytecode.NewCode(bytecode.CodeParams{
		Instructions: concatInstructions(op.Make(op.LoadConst, 0), op.Make(op.PopTop)),
		Constants:    []object.Object{object.NewInt(7)},
	})

	var buf bytes.Buffer
	require.NoError(t, writeArtifact(&buf, code, "json", true))
	require.Contains(t, buf.String(), "\x1b[")

	path := filepath.Join(t.TempDir(), "a.json")
	require.NoError(t, writeArtifactFile(path, code, "json"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "\x1b[")

	loaded, err := loadArtifact(&input{name: "a.json", data: data})
	require.NoError(t, err)
	require.True(t, code.Equals(loaded))
}

func TestWriteArtifactFileCreateError(t *testing.T) {
	code := bytecode.NewCode(bytecode.CodeParams{Instructions: op.Make(op.True)})
	err := writeArtifactFile(filepath.Join(t.TempDir(), "missing", "a.json"), code, "json")
	require.Error(t, err)
}

func concatInstructions(instructions ...[]byte) []byte {
	var out []byte
	for _, ins := range instructions {
		out = append(out, ins...)
	}
	return out
}
