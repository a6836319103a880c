package qrcode

import barscan "github.com/rastergrid/barscan"

func init() {
	barscan.RegisterReader(barscan.FormatQRCode, func(opts *barscan.DecodeOptions) barscan.Reader {
		return NewReader()
	})
	barscan.RegisterWriter(barscan.FormatQRCode, func() barscan.Writer {
		return NewWriter()
	})
}
