package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/scenarigo/exprvar/cmd/exprvar/cmd/config"
	"github.com/scenarigo/exprvar/internal/testutil"
)

func setup(t *testing.T, configPath string, stdin string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("EXPRVAR_COLOR", "0")
	origPath, origVerbose, origVars := config.ConfigPath, verbose, setVars
	config.ConfigPath = configPath
	t.Cleanup(func() {
		config.ConfigPath, verbose, setVars = origPath, origVerbose, origVars
	})
	if configPath == "" {
		chdir(t, t.TempDir())
	}
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return cmd, &stdout, &stderr
}

func assertOutput(t *testing.T, expect, got string) {
	t.Helper()
	if diff := testutil.Diff(expect, got); diff != "" {
		t.Errorf("stdout differs:\n%s", diff)
	}
}

func TestEncode(t *testing.T) {
	tests := map[string]struct {
		args   []string
		stdin  string
		expect string
	}{
		"args": {
			args:   []string{"hello world", "a+b=c", "safe-_.!~*'()"},
			expect: "hello%20world\na%2Bb%3Dc\nsafe-_.!~*'()\n",
		},
		"stdin": {
			stdin:  "A & B\n",
			expect: "A%20%26%20B\n",
		},
		"empty stdin": {
			expect: "\n",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, stdout, _ := setup(t, "", test.stdin)
			if err := encode(cmd, test.args); err != nil {
				t.Fatal(err)
			}
			assertOutput(t, test.expect, stdout.String())
		})
	}
}

func TestEncode_Normalization(t *testing.T) {
	cmd, stdout, _ := setup(t, filepath.Join("testdata", "exprvar.yaml"), "")
	if err := encode(cmd, []string{"he\u0301llo"}); err != nil {
		t.Fatal(err)
	}
	assertOutput(t, "h%C3%A9llo\n", stdout.String())
}

func TestDecode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cmd, stdout, _ := setup(t, "", "")
		if err := decode(cmd, []string{"hello%20world", "h%C3%A9llo"}); err != nil {
			t.Fatal(err)
		}
		assertOutput(t, "hello world\nhéllo\n", stdout.String())
	})
	t.Run("stdin with config from stdin", func(t *testing.T) {
		cmd, stdout, _ := setup(t, "-", "a%2Bb\n")
		if err := decode(cmd, nil); err != nil {
			t.Fatal(err)
		}
		assertOutput(t, "a+b\n", stdout.String())
	})
	t.Run("invalid escape", func(t *testing.T) {
		cmd, _, _ := setup(t, "", "")
		if err := decode(cmd, []string{"100%"}); err == nil {
			t.Fatal("no error")
		}
	})
}

func TestSet(t *testing.T) {
	tests := map[string]struct {
		configPath string
		vars       []string
		verbose    bool
		args       []string
		stdin      string
		expect     string
		expectLog  string
	}{
		"no config": {
			args:   []string{"hello world"},
			expect: "expression: hello%20world\n",
		},
		"stdin": {
			stdin:  "a+b=c\n",
			expect: "expression: a%2Bb%3Dc\n",
		},
		"config vars are kept and expression is overwritten": {
			configPath: filepath.Join("testdata", "exprvar.yaml"),
			args:       []string{"a & b"},
			expect:     "baseURL: http://localhost:8000\nexpression: a%20%26%20b\n",
		},
		"config normalization": {
			configPath: filepath.Join("testdata", "exprvar.yaml"),
			args:       []string{"he\u0301llo"},
			expect:     "baseURL: http://localhost:8000\nexpression: h%C3%A9llo\n",
		},
		"flag vars": {
			vars:   []string{"lang=en", "mode=table"},
			args:   []string{"a|b"},
			expect: "lang: en\nmode: table\nexpression: a%7Cb\n",
		},
		"verbose": {
			verbose:   true,
			args:      []string{"x"},
			expect:    "expression: x\n",
			expectLog: "set variable",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, stdout, stderr := setup(t, test.configPath, test.stdin)
			setVars = test.vars
			verbose = test.verbose
			if err := set(cmd, test.args); err != nil {
				t.Fatal(err)
			}
			assertOutput(t, test.expect, stdout.String())
			if test.expectLog != "" && !strings.Contains(stderr.String(), test.expectLog) {
				t.Errorf("log %q does not contain %q", stderr.String(), test.expectLog)
			}
			if test.expectLog == "" && stderr.Len() != 0 {
				t.Errorf("unexpected log: %q", stderr.String())
			}
		})
	}
}

func TestSet_InvalidVar(t *testing.T) {
	cmd, _, _ := setup(t, "", "")
	setVars = []string{"novalue"}
	if err := set(cmd, []string{"x"}); err == nil {
		t.Fatal("no error")
	}
}

func TestSet_StdinConflict(t *testing.T) {
	cmd, _, _ := setup(t, "-", "")
	orig := config.Stdin
	config.Stdin = strings.NewReader("schemaVersion: config/v1\n")
	t.Cleanup(func() { config.Stdin = orig })
	if err := set(cmd, nil); err == nil {
		t.Fatal("no error")
	}
}

// chdir changes the working directory for the duration of the test,
// like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
