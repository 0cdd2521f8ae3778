package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"xdao.co/identicon/blobid"
	"xdao.co/identicon/digest"
	"xdao.co/identicon/identicon"
	"xdao.co/identicon/render"
	"xdao.co/identicon/store/registry"

	_ "xdao.co/identicon/store/fsstore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("identicon", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() { printUsage(errOut, fs) }

	var outPath string
	var hashName string
	var bgName string
	var pin bool
	var cidOnly bool
	var backend string

	fs.StringVar(&outPath, "out", "", "Output PNG path (default <seed>.png in the working directory)")
	fs.StringVar(&hashName, "hash", "md5", "Digest algorithm: md5 or blake2b")
	fs.StringVar(&bgName, "bg", "white", "Canvas background: white or transparent")
	fs.BoolVar(&pin, "pin", false, "Also store the PNG in the selected backend and print its CID")
	fs.BoolVar(&cidOnly, "cid-only", false, "Print the PNG's CID without writing a file")
	fs.StringVar(&backend, "backend", "fs", "Avatar store backend (for -pin)")
	registry.RegisterFlags(fs, registry.UsageCLI)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		printUsage(errOut, fs)
		return 2
	}
	seed := fs.Arg(0)

	hasher, err := digest.ByName(hashName)
	if err != nil {
		fmt.Fprintf(errOut, "invalid -hash: %v\n", err)
		return 2
	}

	var background color.Color
	switch bgName {
	case "", "white":
		background = color.White
	case "transparent":
		background = color.Transparent
	default:
		fmt.Fprintln(errOut, "invalid -bg (expected white or transparent)")
		return 2
	}

	opts := render.Options{Background: background}
	p := identicon.Pipeline{
		Hasher: hasher,
		Render: func(c identicon.Color, regions []identicon.Region) ([]byte, error) {
			return render.PNG(c, regions, opts)
		},
		Write: func(path string, data []byte) error {
			return os.WriteFile(path, data, 0o644)
		},
	}
	if cidOnly {
		p.Write = nil
	}

	name := seed
	if outPath != "" {
		name = strings.TrimSuffix(outPath, ".png")
	}

	data, err := p.Run(seed, name)
	if err != nil {
		fmt.Fprintf(errOut, "identicon: %v\n", err)
		return 1
	}

	if cidOnly {
		_, _ = fmt.Fprintln(out, blobid.String(data))
		return 0
	}
	fmt.Fprintf(out, "wrote %s.png\n", name)

	if pin {
		s, closeFn, err := registry.Open(backend, registry.UsageCLI)
		if err != nil {
			fmt.Fprintf(errOut, "open backend: %v\n", err)
			return 1
		}
		if closeFn != nil {
			defer closeFn()
		}
		id, err := s.Put(data)
		if err != nil {
			fmt.Fprintf(errOut, "pin: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, id.String())
	}
	return 0
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "identicon: derive a deterministic avatar PNG from a seed string")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  identicon [flags] <seed>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The same seed always produces the same image. By default the PNG is")
	fmt.Fprintln(w, "written to <seed>.png in the working directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
