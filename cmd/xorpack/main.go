package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/packetmill/xorpack/pkg/combine"
	"github.com/packetmill/xorpack/pkg/keyfile"
	"github.com/packetmill/xorpack/pkg/xor"
)

var version = "dev"

func main() {
	var (
		helpFlag        bool
		versionFlag     bool
		interactiveFlag bool
		keyHex          string
		keyFilePath     string
		genKeyLen       int
		outPath         string
	)
	flags := flag.NewFlagSet("xorpack", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the xorpack version.")
	flags.StringVarP(&keyHex, "key", "k", "", "Hex string to use as the screening key.")
	flags.StringVarP(&keyFilePath, "key-file", "f", "", "Path to a key file. With --gen-key, the generated key is saved here.")
	flags.IntVarP(&genKeyLen, "gen-key", "g", 0, "Generates a fresh key of the given length instead of requiring --key or --key-file.")
	flags.StringVarP(&outPath, "out", "o", "", "Writes packed output to the given file instead of stdout.")
	flags.BoolVarP(&interactiveFlag, "interactive", "i", false, "Collects name/value pairs with a form instead of from arguments, keeping values out of shell history.")
	flags.Usage = func() {
		fmt.Printf(`
xorpack screens each VALUE with a repeating XOR key, Base64 encodes it, and packs NAME followed by the encoded text into one flat output blob.
Pairs are packed in argument order with no delimiters, so the output is intended for obfuscated transport or embedding, not for parsing back.

USAGE:  xorpack [FLAGS] NAME=VALUE [NAME=VALUE ...]

The key comes from --key, --key-file, or --gen-key, in that order of precedence.
A generated key is printed to stderr as hex (with its offset) so it can be shared with the receiving side, and saved to --key-file when given.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
XOR screening hides values from passive observation only, since it is easily reversible with the key.
`, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		echo("xorpack %s", version)
		return
	}

	key, offset := resolveKey(keyHex, keyFilePath, genKeyLen)

	var (
		pairs []pair
		err   error
	)
	if interactiveFlag {
		if flags.NArg() > 0 {
			fatal("NAME=VALUE arguments cannot be combined with --interactive")
		}
		pairs, err = collectPairs()
	} else {
		pairs, err = parsePairs(flags.Args())
	}
	if err != nil {
		fatal("%v", err)
	}
	if len(pairs) == 0 {
		fatal("No NAME=VALUE pairs given")
	}

	acc := combine.NewAccumulator(packedSizeHint(pairs))
	combiner, err := combine.NewCombiner(key, combine.WithOffset(offset))
	if err != nil {
		fatal("Unusable key: %v", err)
	}
	for _, p := range pairs {
		if err := combiner.EncodeAppend(p.name, []byte(p.value), acc); err != nil {
			fatal("Failed to pack %q: %v", p.name, err)
		}
	}

	if err := writeOutput(acc, outPath); err != nil {
		fatal("Failed to write output: %v", err)
	}
}

// resolveKey returns the screening key and starting offset from the first
// source given: literal hex, a key file, or fresh generation.
func resolveKey(keyHex, keyFilePath string, genKeyLen int) (xor.Key, int) {
	switch {
	case len(keyHex) > 0:
		var key bytes.Buffer
		_, err := io.Copy(&key, hex.NewDecoder(strings.NewReader(keyHex)))
		if err != nil {
			fatal("Failed to decode --key, must be a hex string with only the characters a-f, A-F, or 0-9")
		}
		return key.Bytes(), 0
	case genKeyLen > 0:
		kf, err := keyfile.Generate(genKeyLen)
		if err != nil {
			fatal("Failed to generate key: %v", err)
		}
		echo("Generated key %s with offset %d", hex.EncodeToString(kf.Key), kf.Offset)
		if len(keyFilePath) > 0 {
			if err := kf.Save(keyFilePath); err != nil {
				fatal("Failed to save key file: %v", err)
			}
			echo("Saved key to %s", keyFilePath)
		}
		return kf.Key, kf.Offset
	case len(keyFilePath) > 0:
		kf, err := keyfile.Load(keyFilePath)
		if err != nil {
			fatal("Failed to load key file: %v", err)
		}
		return kf.Key, kf.Offset
	default:
		fatal("One of --key, --key-file, or --gen-key is required")
		return nil, 0
	}
}

func packedSizeHint(pairs []pair) int {
	var size int
	for _, p := range pairs {
		size += len(p.name) + base64.StdEncoding.EncodedLen(len(p.value))
	}
	return size
}

func writeOutput(acc *combine.Accumulator, outPath string) error {
	if len(outPath) == 0 {
		_, err := acc.WriteTo(os.Stdout)
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()
	_, err = acc.WriteTo(out)
	return err
}

func fatal(msg string, args ...any) {
	echo(msg, args...)
	os.Exit(1)
}

func echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
