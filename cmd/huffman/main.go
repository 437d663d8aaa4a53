// Command huffman compresses and decompresses files with the canonical
// Huffman codec implemented by github.com/mtanclark/huffman.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mtanclark/huffman"
)

func main() {
	compress := flag.Bool("compress", false, "compress the input file")
	decompress := flag.Bool("decompress", false, "decompress the input file")
	inputFile := flag.String("input", "", "input file path")
	outputFile := flag.String("output", "", "output file path")
	flag.Parse()

	if *compress == *decompress {
		flag.PrintDefaults()
		log.Fatal("exactly one of --compress or --decompress is required")
	}
	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		log.Fatal("--input and --output are required")
	}

	in, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	var out []byte
	if *compress {
		out, err = runCompress(in)
	} else {
		out, err = runDecompress(in)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*outputFile, out, 0o644); err != nil {
		log.Fatal(err)
	}
}

func runCompress(in []byte) ([]byte, error) {
	var dst bytes.Buffer
	src := huffman.NewByteSliceSource(in)
	stats, err := huffman.EncodeWithStats(src, huffman.NewWriterSink(&dst))
	if err != nil {
		return nil, err
	}
	if stats.OriginalSize > 0 {
		ratio := float64(stats.CompressedSize) / float64(stats.OriginalSize)
		fmt.Fprintf(os.Stderr, "%d -> %d bytes (%.1f%%), %d symbols used\n",
			stats.OriginalSize, stats.CompressedSize, ratio*100, stats.SymbolCount)
	}
	return dst.Bytes(), nil
}

func runDecompress(in []byte) ([]byte, error) {
	var dst bytes.Buffer
	src := huffman.NewByteSliceSource(in)
	if err := huffman.Decode(src, huffman.NewWriterSink(&dst)); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}
