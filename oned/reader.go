package oned

import (
	barscan "github.com/rastergrid/barscan"
	"github.com/rastergrid/barscan/bitutil"
)

// MultiFormatOneDReader attempts to decode 1D barcodes by trying multiple
// format-specific readers in sequence.
type MultiFormatOneDReader struct {
	readers         []RowDecoder
	possibleFormats map[barscan.Format]bool
}

// NewMultiFormatOneDReader creates a new multi-format reader configured by opts.
func NewMultiFormatOneDReader(opts *barscan.DecodeOptions) *MultiFormatOneDReader {
	var readers []RowDecoder
	var possibleFormats map[barscan.Format]bool

	if opts != nil && len(opts.PossibleFormats) > 0 {
		possibleFormats = make(map[barscan.Format]bool)
		for _, f := range opts.PossibleFormats {
			possibleFormats[f] = true
		}
		// UPC/EAN readers: match Java's MultiFormatUPCEANReader else-if logic.
		// EAN-13 covers UPC-A, so only add UPCAReader if EAN-13 is not requested.
		if possibleFormats[barscan.FormatEAN13] {
			readers = append(readers, NewEAN13Reader())
		} else if possibleFormats[barscan.FormatUPCA] {
			readers = append(readers, NewUPCAReader())
		}
		if possibleFormats[barscan.FormatEAN8] {
			readers = append(readers, NewEAN8Reader())
		}
		if possibleFormats[barscan.FormatUPCE] {
			readers = append(readers, NewUPCEReader())
		}
		if possibleFormats[barscan.FormatCode39] {
			useCheckDigit := opts.AssumeCode39CheckDigit
			readers = append(readers, NewCode39ReaderWithCheckDigit(useCheckDigit, false))
		}
		if possibleFormats[barscan.FormatCode128] {
			readers = append(readers, NewCode128Reader())
		}
	}

	if len(readers) == 0 {
		// Default: EAN-13 covers UPC-A, so no separate UPCAReader needed.
		readers = []RowDecoder{
			NewEAN13Reader(),
			NewEAN8Reader(),
			NewUPCEReader(),
			NewCode39Reader(),
			NewCode128Reader(),
		}
	}

	return &MultiFormatOneDReader{readers: readers, possibleFormats: possibleFormats}
}

// DecodeRow tries each reader in sequence until one succeeds.
// Includes Java-compatible EAN-13 -> UPC-A conversion when UPC-A was requested.
func (r *MultiFormatOneDReader) DecodeRow(rowNumber int, row *bitutil.BitArray, opts *barscan.DecodeOptions) (*barscan.Result, error) {
	for _, reader := range r.readers {
		result, err := reader.DecodeRow(rowNumber, row, opts)
		if err == nil {
			return r.maybeConvertEAN13ToUPCA(result), nil
		}
	}
	return nil, barscan.ErrNotFound
}

// maybeConvertEAN13ToUPCA converts an EAN-13 result starting with '0' to UPC-A
// if UPC-A was requested. Matches Java MultiFormatUPCEANReader behavior.
func (r *MultiFormatOneDReader) maybeConvertEAN13ToUPCA(result *barscan.Result) *barscan.Result {
	if result.Format != barscan.FormatEAN13 || len(result.Text) == 0 || result.Text[0] != '0' {
		return result
	}
	// Convert if UPC-A was requested, or if no format filter was set (default readers)
	if r.possibleFormats == nil || r.possibleFormats[barscan.FormatUPCA] {
		upcaResult := barscan.NewResult(result.Text[1:], nil, result.Points, barscan.FormatUPCA)
		for k, v := range result.Metadata {
			upcaResult.PutMetadata(k, v)
		}
		return upcaResult
	}
	return result
}

// Decode decodes a 1D barcode from the given image.
// Like Java's OneDReader.decode(), if TryHarder is set and the initial scan
// fails, it tries again with the image rotated 90 degrees counterclockwise.
func (r *MultiFormatOneDReader) Decode(image *barscan.BinaryBitmap, opts *barscan.DecodeOptions) (*barscan.Result, error) {
	result, err := DecodeOneD(image, r, opts)
	if err == nil {
		return result, nil
	}
	tryHarder := opts != nil && opts.TryHarder
	if !tryHarder {
		return nil, err
	}
	// Try with rotated image (90 degrees CCW)
	matrix, mErr := image.BlackMatrix()
	if mErr != nil {
		return nil, err
	}
	rotatedMatrix := matrix.Clone()
	rotatedMatrix.Rotate90()
	rotated := barscan.NewBinaryBitmap(matrixBinarizer{rotatedMatrix})
	result, err2 := DecodeOneD(rotated, r, opts)
	if err2 != nil {
		return nil, err
	}
	// Record that we found it rotated 90 degrees CCW / 270 degrees CW
	orientation := 270
	if existing, ok := result.Metadata[barscan.MetadataOrientation]; ok {
		if existingInt, ok := existing.(int); ok {
			orientation = (orientation + existingInt) % 360
		}
	}
	result.PutMetadata(barscan.MetadataOrientation, orientation)
	// Adjust result points: for a CCW rotation, (x,y) in rotated image
	// maps to (rotatedHeight - 1 - y, x) in the original image
	if result.Points != nil {
		rotatedHeight := rotated.Height()
		for i, p := range result.Points {
			result.Points[i] = barscan.ResultPoint{
				X: float64(rotatedHeight) - p.Y - 1,
				Y: p.X,
			}
		}
	}
	return result, nil
}

// matrixBinarizer serves rows and the matrix of an already-binarized BitMatrix.
type matrixBinarizer struct{ m *bitutil.BitMatrix }

func (b matrixBinarizer) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	return b.m.Row(y, row), nil
}
func (b matrixBinarizer) BlackMatrix() (*bitutil.BitMatrix, error) { return b.m, nil }
func (b matrixBinarizer) LuminanceSource() barscan.LuminanceSource { return nil }
func (b matrixBinarizer) Width() int                             { return b.m.Width() }
func (b matrixBinarizer) Height() int                            { return b.m.Height() }

// Reset is a no-op for 1D readers.
func (r *MultiFormatOneDReader) Reset() {}
