// Command rapidoc reformats and converts structured documents using the
// document value model: compact JSON formatting, plus conversion between
// JSON, YAML, and CBOR.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fxamacker/cbor/v2"

	"github.com/Woodsigel/rapid-util/document"
)

var cli struct {
	Fmt     FmtCmd     `cmd:"" help:"Parse a JSON document and print it in compact form."`
	Convert ConvertCmd `cmd:"" help:"Convert a document between JSON, YAML, and CBOR."`
}

// FmtCmd reads JSON from a file or stdin and prints the compact rendering.
type FmtCmd struct {
	Path string `arg:"" optional:"" help:"Input file. Reads stdin when omitted." type:"existingfile"`
	SIMD bool   `help:"Use the SIMD parser backend when available."`
}

func (c *FmtCmd) Run() error {
	data, err := readInput(c.Path)
	if err != nil {
		return err
	}
	parse := document.Parse
	if c.SIMD {
		parse = document.ParseSIMD
	}
	doc, err := parse(data)
	if err != nil {
		return err
	}
	out, err := document.Serialize(doc)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// ConvertCmd parses the input in one format and renders it in another.
type ConvertCmd struct {
	From   string `help:"Input format." enum:"json,yaml" default:"json"`
	To     string `help:"Output format." enum:"json,yaml,cbor" default:"json"`
	Output string `short:"o" help:"Output file. Writes stdout when omitted."`
	Path   string `arg:"" optional:"" help:"Input file. Reads stdin when omitted." type:"existingfile"`
}

func (c *ConvertCmd) Run() error {
	data, err := readInput(c.Path)
	if err != nil {
		return err
	}
	var doc *document.Value
	switch c.From {
	case "json":
		doc, err = document.Parse(data)
	case "yaml":
		doc, err = document.FromYAML(data)
	}
	if err != nil {
		return err
	}

	var out []byte
	switch c.To {
	case "json":
		text, err := document.Serialize(doc)
		if err != nil {
			return err
		}
		out = append([]byte(text), '\n')
	case "yaml":
		out, err = document.ToYAML(doc)
		if err != nil {
			return err
		}
	case "cbor":
		out, err = cbor.Marshal(doc.Interface())
		if err != nil {
			return err
		}
	}

	if c.Output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(c.Output, out, 0o644)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	log.SetFlags(0)
	ctx := kong.Parse(&cli,
		kong.Name("rapidoc"),
		kong.Description("Reformat and convert JSON, YAML, and CBOR documents."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
