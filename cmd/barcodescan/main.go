package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"

	barscan "github.com/rastergrid/barscan"
	"github.com/rastergrid/barscan/binarizer"

	// Register all format readers.
	_ "github.com/rastergrid/barscan/oned"
	_ "github.com/rastergrid/barscan/qrcode"
)

func main() {
	tryHarder := flag.Bool("try-harder", false, "spend more time looking for barcodes")
	pure := flag.Bool("pure", false, "hint that the image is a clean barcode render with minimal border")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: barcodescan [flags] <image-file> [image-file...]\n\n")
		fmt.Fprintf(os.Stderr, "Detect and decode barcodes in image files (PNG, JPEG, GIF, WebP).\n\n")
		fmt.Fprintf(os.Stderr, "Exit codes: 0 success, 1 not found, 2 checksum failure, 3 invalid input.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(3)
	}

	// exitCode tracks the worst outcome seen across all files, where worse
	// means higher per the documented precedence invalid(3) > checksum(2) >
	// not-found(1) > success(0).
	exitCode := 0
	for _, path := range flag.Args() {
		results, err := scanFile(path, *tryHarder, *pure)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, err)
			if errors.Is(err, barscan.ErrChecksum) {
				exitCode = max(exitCode, 2)
			} else {
				exitCode = max(exitCode, 3)
			}
			continue
		}
		if len(results) == 0 {
			fmt.Fprintf(os.Stderr, "%s: no barcodes found\n", path)
			exitCode = max(exitCode, 1)
			continue
		}
		for _, r := range results {
			if flag.NArg() > 1 {
				fmt.Printf("%s: ", path)
			}
			fmt.Printf("[%s] %s\n", r.Format, r.Text)
		}
	}
	os.Exit(exitCode)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// allFormats lists every format to attempt.
var allFormats = []barscan.Format{
	barscan.FormatQRCode,
	barscan.FormatCode128,
	barscan.FormatCode39,
	barscan.FormatEAN13,
	barscan.FormatEAN8,
	barscan.FormatUPCA,
	barscan.FormatUPCE,
}

func scanFile(path string, tryHarder, pure bool) ([]*barscan.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	source := barscan.NewImageLuminanceSource(img)
	opts := &barscan.DecodeOptions{
		TryHarder:   tryHarder,
		PureBarcode: pure,
	}

	// Try GlobalHistogram binarizer first (fast, works well for clean images),
	// then fall back to Hybrid binarizer (local adaptive thresholding, better
	// for photographs with uneven lighting). This mirrors the Java ZXing
	// MultiFormatReader retry strategy.
	bitmaps := []*barscan.BinaryBitmap{
		barscan.NewBinaryBitmap(binarizer.NewGlobalHistogram(source)),
		barscan.NewBinaryBitmap(binarizer.NewHybrid(source)),
	}

	var results []*barscan.Result
	var checksumErr error
	seen := map[string]bool{}

	for _, bitmap := range bitmaps {
		for _, format := range allFormats {
			formatOpts := *opts
			formatOpts.PossibleFormats = []barscan.Format{format}

			result, err := tryDecode(bitmap, &formatOpts)
			if err != nil {
				if errors.Is(err, barscan.ErrChecksum) {
					checksumErr = err
				}
				continue
			}
			key := fmt.Sprintf("%s:%s", result.Format, result.Text)
			if seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, result)
		}
	}

	if len(results) == 0 && checksumErr != nil {
		return nil, checksumErr
	}
	return results, nil
}

// tryDecode calls barscan.Decode but recovers from panics that decoders may
// raise on malformed input, converting them to errors.
func tryDecode(bitmap *barscan.BinaryBitmap, opts *barscan.DecodeOptions) (result *barscan.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return barscan.Decode(bitmap, opts)
}
