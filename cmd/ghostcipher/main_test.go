package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/unkn0wn-root/ghostcipher"
)

func testEnv(stdin string, vars map[string]string) (env, *bytes.Buffer) {
	var out bytes.Buffer
	return env{
		stdin:  strings.NewReader(stdin),
		stdout: &out,
		stderr: &bytes.Buffer{},
		getenv: func(k string) string { return vars[k] },
	}, &out
}

func TestHideThenReveal(t *testing.T) {
	e, out := testEnv("", nil)
	if err := run([]string{"hide", "-c", "Hello", "-s", "Hi"}, e); err != nil {
		t.Fatalf("hide: %v", err)
	}
	combined := out.String()
	if !strings.HasPrefix(combined, "Hello") {
		t.Fatalf("carrier missing: %q", combined)
	}

	e, out = testEnv(combined+"\n", nil)
	if err := run([]string{"reveal", "--length=2"}, e); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if out.String() != "Hi" {
		t.Fatalf("reveal=%q want Hi", out.String())
	}
}

func TestSecretSources(t *testing.T) {
	// env var wins over stdin
	e, out := testEnv("from-stdin", map[string]string{SecretEnvVar: "env"})
	if err := run([]string{"hide", "--carrier=c"}, e); err != nil {
		t.Fatal(err)
	}
	if got, _ := ghostcipher.Reveal(out.String(), 3); got != "env" {
		t.Fatalf("env secret: got %q", got)
	}

	// prompt wins over stdin
	e, out = testEnv("from-stdin", nil)
	e.readSecret = func() (string, error) { return "tty", nil }
	if err := run([]string{"hide", "-c", "c"}, e); err != nil {
		t.Fatal(err)
	}
	if got, _ := ghostcipher.Reveal(out.String(), 3); got != "tty" {
		t.Fatalf("prompt secret: got %q", got)
	}

	// stdin as the last resort
	e, out = testEnv("pipe", nil)
	if err := run([]string{"hide", "-c", "c"}, e); err != nil {
		t.Fatal(err)
	}
	if got, _ := ghostcipher.Reveal(out.String(), 4); got != "pipe" {
		t.Fatalf("stdin secret: got %q", got)
	}
}

func TestStdinSecretKeepsTrailingNewline(t *testing.T) {
	e, out := testEnv("line\n", nil)
	if err := run([]string{"hide", "-c", "c"}, e); err != nil {
		t.Fatal(err)
	}
	combined := out.String()

	// the terminal newline after the invisible text is still dropped
	e, out = testEnv(combined+"\r\n", nil)
	if err := run([]string{"reveal", "-n", "5"}, e); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if out.String() != "line\n" {
		t.Fatalf("reveal=%q want %q", out.String(), "line\n")
	}

	e, out = testEnv("A\n", nil)
	if err := run([]string{"encode"}, e); err != nil {
		t.Fatal(err)
	}
	if want, _ := ghostcipher.Encode("A\n"); out.String() != want {
		t.Fatalf("encode must keep the newline")
	}
}

func TestEncodeDecode(t *testing.T) {
	e, out := testEnv("A", nil)
	if err := run([]string{"encode"}, e); err != nil {
		t.Fatal(err)
	}
	want := string(ghostcipher.Alphabet[4]) + string(ghostcipher.Alphabet[1])
	if out.String() != want {
		t.Fatalf("encode=%q want %q", out.String(), want)
	}

	e, out = testEnv(want, nil)
	if err := run([]string{"-d"}, e); err != nil {
		t.Fatal(err)
	}
	if out.String() != "A" {
		t.Fatalf("decode=%q", out.String())
	}
}

func TestRevealBytes(t *testing.T) {
	combined := "c" + ghostcipher.EncodeBytes([]byte("世"))
	e, out := testEnv(combined, nil)
	if err := run([]string{"reveal", "-n", "3", "-b"}, e); err != nil {
		t.Fatal(err)
	}
	if out.String() != "世" {
		t.Fatalf("reveal -b=%q", out.String())
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		args  []string
		stdin string
		want  string
		is    error
	}{
		{args: nil, want: "no command"},
		{args: []string{"bogus"}, want: "unknown command"},
		{args: []string{"reveal"}, want: "requires -n"},
		{args: []string{"reveal", "-n"}, want: "missing value"},
		{args: []string{"reveal", "-n", "x"}, want: "invalid length"},
		{args: []string{"reveal", "-n", "-1"}, want: "negative"},
		{args: []string{"hide", "--frob"}, want: "unknown option"},
		{args: []string{"reveal", "-n", "5"}, stdin: "short", is: ghostcipher.ErrInsufficientLength},
		{args: []string{"decode"}, stdin: "abc", is: ghostcipher.ErrInvalidLength},
		{args: []string{"hide", "-s", "世"}, is: ghostcipher.ErrOutOfRangeCharacter},
	}
	for _, tc := range cases {
		e, _ := testEnv(tc.stdin, nil)
		err := run(tc.args, e)
		if err == nil {
			t.Fatalf("%v: expected error", tc.args)
		}
		if tc.is != nil && !errors.Is(err, tc.is) {
			t.Fatalf("%v: want %v, got %v", tc.args, tc.is, err)
		}
		if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%v: want error containing %q, got %v", tc.args, tc.want, err)
		}
	}
}
