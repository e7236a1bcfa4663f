package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/unkn0wn-root/ghostcipher"
)

const (
	Version = "1.0.0"

	// Environment variable for the secret when -s is not given
	SecretEnvVar = "GHOSTCIPHER_SECRET"
)

// Options holds parsed command line flags
type Options struct {
	Carrier    string
	Secret     string
	HaveSecret bool
	Length     int
	HaveLength bool
	Bytes      bool // reveal raw bytes instead of text
}

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	// readSecret prompts without echo; nil when stdin is not a terminal
	readSecret func() (string, error)
}

func main() {
	e := env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	}
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		e.readSecret = func() (string, error) {
			fmt.Fprint(os.Stderr, "Secret: ")
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(os.Stderr)
			return string(b), err
		}
	}

	if err := run(os.Args[1:], e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, e env) error {
	if len(args) < 1 {
		printUsage(e.stderr)
		return fmt.Errorf("no command specified")
	}

	command := args[0]
	opts, err := parseFlags(args[1:])
	if err != nil {
		return err
	}

	switch command {
	case "encode", "-e":
		return encode(e)
	case "decode", "-d":
		return decode(e)
	case "hide":
		return hide(opts, e)
	case "reveal":
		return reveal(opts, e)
	case "--help", "-h":
		printUsage(e.stderr)
		return nil
	case "--version", "-v":
		fmt.Fprintf(e.stderr, "ghostcipher version %s\n", Version)
		return nil
	default:
		printUsage(e.stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func parseFlags(args []string) (Options, error) {
	var opts Options
	for i := 0; i < len(args); i++ {
		arg := args[i]

		// value for -x VALUE form
		next := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("missing value for %s", arg)
			}
			i++
			return args[i], nil
		}

		switch {
		case arg == "--bytes" || arg == "-b":
			opts.Bytes = true
		case arg == "-c" || arg == "--carrier":
			v, err := next()
			if err != nil {
				return opts, err
			}
			opts.Carrier = v
		case strings.HasPrefix(arg, "--carrier="):
			opts.Carrier = strings.TrimPrefix(arg, "--carrier=")
		case arg == "-s" || arg == "--secret":
			v, err := next()
			if err != nil {
				return opts, err
			}
			opts.Secret, opts.HaveSecret = v, true
		case strings.HasPrefix(arg, "--secret="):
			opts.Secret, opts.HaveSecret = strings.TrimPrefix(arg, "--secret="), true
		case arg == "-n" || arg == "--length":
			v, err := next()
			if err != nil {
				return opts, err
			}
			if err := setLength(&opts, v); err != nil {
				return opts, err
			}
		case strings.HasPrefix(arg, "--length="):
			if err := setLength(&opts, strings.TrimPrefix(arg, "--length=")); err != nil {
				return opts, err
			}
		default:
			return opts, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

func setLength(opts *Options, s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid length value: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("length must not be negative")
	}
	opts.Length, opts.HaveLength = n, true
	return nil
}

func encode(e env) error {
	in, err := readInput(e.stdin, false)
	if err != nil {
		return err
	}
	out, err := ghostcipher.Encode(in)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.stdout, out)
	return err
}

func decode(e env) error {
	in, err := readInput(e.stdin, true)
	if err != nil {
		return err
	}
	out, err := ghostcipher.Decode(in)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.stdout, out)
	return err
}

func hide(opts Options, e env) error {
	secret, err := secretFrom(opts, e)
	if err != nil {
		return err
	}
	out, err := ghostcipher.Hide(opts.Carrier, secret)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.stdout, out)
	return err
}

func reveal(opts Options, e env) error {
	if !opts.HaveLength {
		return fmt.Errorf("reveal requires -n LENGTH")
	}
	in, err := readInput(e.stdin, true)
	if err != nil {
		return err
	}
	if opts.Bytes {
		p, err := ghostcipher.RevealBytes(in, opts.Length)
		if err != nil {
			return err
		}
		_, err = e.stdout.Write(p)
		return err
	}
	out, err := ghostcipher.Reveal(in, opts.Length)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.stdout, out)
	return err
}

// secretFrom resolves the secret: -s flag, then env var, then prompt, then stdin.
func secretFrom(opts Options, e env) (string, error) {
	if opts.HaveSecret {
		return opts.Secret, nil
	}
	if s := e.getenv(SecretEnvVar); s != "" {
		return s, nil
	}
	if e.readSecret != nil {
		s, err := e.readSecret()
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return s, nil
	}
	return readInput(e.stdin, false)
}

// readInput reads all of r. With trimNewline it drops one trailing "\n" or
// "\r\n", which is only safe for invisible input: no symbol is a newline.
func readInput(r io.Reader, trimNewline bool) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	s := string(b)
	if !trimNewline {
		return s, nil
	}
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(t, "\r"), nil
	}
	return s, nil
}

func printUsage(w io.Writer) {
	usage := `ghostcipher - hide short secrets in text as invisible characters

USAGE:
    ghostcipher <command> [options]

COMMANDS:
    encode, -e          Encode STDIN text to invisible characters on STDOUT
    decode, -d          Decode invisible characters from STDIN to STDOUT
    hide                Append an encoded secret to a carrier text
    reveal              Recover a secret from the end of STDIN
    --help, -h          Show this help message
    --version, -v       Show version information

OPTIONS:
    --carrier=TEXT, -c TEXT   Visible carrier text (hide)
    --secret=TEXT, -s TEXT    Secret text (hide)
    --length=N, -n N          Secret length in characters (reveal, required)
    --bytes, -b               Reveal raw bytes (payloads hidden from UTF-8 bytes)

SECRET:
    hide reads the secret from -s, then GHOSTCIPHER_SECRET, then an
    interactive prompt (no echo), then STDIN.

EXAMPLES:
    ghostcipher hide -c "See you at lunch." -s "Hi" > note.txt
    ghostcipher reveal -n 2 < note.txt

LIMITS:
    - Only characters U+0000..U+00FF can be hidden as text
    - The secret length is not stored; keep it to reveal the secret
    - encode and hide keep STDIN byte for byte, trailing newline included
      (use printf, not echo); decode and reveal drop one trailing newline

`
	fmt.Fprint(w, usage)
}
