// Command tagdump decodes a chunk of tag text from a file or stdin and
// prints what the library sees: the decoded value, its length in
// UTF-16 code units and the Latin-1/ASCII predicates. It can also
// re-encode the text to another of the supported encodings.
//
//	tagdump -e utf16 comment.bin
//	tagdump -e latin1 -to utf8 title.bin > title.utf8
//
// Besides the five tag encodings it accepts windows1252, the encoding
// real-world ID3v1 tags are so often mislabeled with; that input is
// transcoded to UTF-8 before construction.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/tagcore/ustring"
)

var (
	encName = flag.String("e", "utf8", "input encoding: latin1, utf16, utf16be, utf16le, utf8 or windows1252")
	toName  = flag.String("to", "", "re-encode to this encoding and write the bytes to stdout")
	quiet   = flag.Bool("q", false, "suppress the summary, useful with -to")
)

func readSource(filename string) ([]byte, error) {
	if filename == "" || filename == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}

func encodingByName(name string) (ustring.Encoding, bool) {
	switch name {
	case "latin1":
		return ustring.Latin1, true
	case "utf16":
		return ustring.UTF16, true
	case "utf16be":
		return ustring.UTF16BE, true
	case "utf16le":
		return ustring.UTF16LE, true
	case "utf8":
		return ustring.UTF8, true
	}
	return 0, false
}

func decode(src []byte, name string) (ustring.String, error) {
	if name == "windows1252" {
		utf8Text, err := charmap.Windows1252.NewDecoder().Bytes(src)
		if err != nil {
			return ustring.Null, fmt.Errorf("transcoding windows1252: %w", err)
		}
		return ustring.FromString(string(utf8Text)), nil
	}
	enc, ok := encodingByName(name)
	if !ok {
		return ustring.Null, fmt.Errorf("unknown encoding %q", name)
	}
	return ustring.FromBytes(src, enc)
}

func run() error {
	src, err := readSource(flag.Arg(0))
	if err != nil {
		return err
	}

	s, err := decode(src, *encName)
	if err != nil {
		return err
	}

	if !*quiet {
		fmt.Printf("text:       %s\n", s)
		fmt.Printf("code units: %d\n", s.Len())
		fmt.Printf("latin1:     %v\n", s.IsLatin1())
		fmt.Printf("ascii:      %v\n", s.IsAscii())
	}

	if *toName != "" {
		enc, ok := encodingByName(*toName)
		if !ok {
			return fmt.Errorf("unknown encoding %q", *toName)
		}
		if _, err := os.Stdout.Write(s.Data(enc)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
