package barscan_test

import (
	"testing"

	barscan "github.com/rastergrid/barscan"

	// Register all format readers
	_ "github.com/rastergrid/barscan/oned"
	_ "github.com/rastergrid/barscan/qrcode"
)

func TestBlackBoxQRCode1(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "qrcode-1",
		format: barscan.FormatQRCode,
		tests: []blackboxTestRotation{
			rot(0, 17, 17),
			rot(90, 14, 14),
			rot(180, 17, 17),
			rot(270, 14, 14),
		},
	})
}

func TestBlackBoxQRCode2(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "qrcode-2",
		format: barscan.FormatQRCode,
		tests: []blackboxTestRotation{
			rot(0, 32, 32),
			rot(90, 30, 30),
			rot(180, 31, 31),
			rot(270, 31, 31),
		},
	})
}

func TestBlackBoxQRCode3(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "qrcode-3",
		format: barscan.FormatQRCode,
		tests: []blackboxTestRotation{
			rot(0, 38, 38),
			rot(90, 39, 39),
			rot(180, 36, 36),
			rot(270, 39, 39),
		},
	})
}

func TestBlackBoxQRCode4(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "qrcode-4",
		format: barscan.FormatQRCode,
		tests: []blackboxTestRotation{
			rot(0, 36, 36),
			rot(90, 35, 35),
			rot(180, 35, 35),
			rot(270, 35, 35),
		},
	})
}

func TestBlackBoxQRCode5(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "qrcode-5",
		format: barscan.FormatQRCode,
		tests: []blackboxTestRotation{
			rot(0, 19, 19),
			rot(90, 19, 19),
			rot(180, 19, 19),
			rot(270, 19, 19),
		},
	})
}

func TestBlackBoxQRCode6(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "qrcode-6",
		format: barscan.FormatQRCode,
		tests: []blackboxTestRotation{
			rot(0, 15, 15),
			rot(90, 14, 14),
			rot(180, 13, 13),
			rot(270, 14, 14),
		},
	})
}

func TestBlackBoxCode128_1(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "code128-1",
		format: barscan.FormatCode128,
		tests: []blackboxTestRotation{
			rot(0, 6, 6),
			rot(180, 6, 6),
		},
	})
}

func TestBlackBoxCode128_2(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "code128-2",
		format: barscan.FormatCode128,
		tests: []blackboxTestRotation{
			rot(0, 36, 39),
			rot(180, 36, 39),
		},
	})
}

func TestBlackBoxCode128_3(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "code128-3",
		format: barscan.FormatCode128,
		tests: []blackboxTestRotation{
			rot(0, 2, 2),
			rot(180, 2, 2),
		},
	})
}

func TestBlackBoxCode39_1(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "code39-1",
		format: barscan.FormatCode39,
		tests: []blackboxTestRotation{
			rot(0, 4, 4),
			rot(180, 4, 4),
		},
	})
}

func TestBlackBoxCode39_3(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "code39-3",
		format: barscan.FormatCode39,
		tests: []blackboxTestRotation{
			rot(0, 17, 17),
			rot(180, 17, 17),
		},
	})
}

func TestBlackBoxEAN13_1(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "ean13-1",
		format: barscan.FormatEAN13,
		tests: []blackboxTestRotation{
			rot(0, 30, 32),
			rot(180, 27, 32),
		},
	})
}

func TestBlackBoxEAN13_2(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "ean13-2",
		format: barscan.FormatEAN13,
		tests: []blackboxTestRotation{
			rotM(0, 12, 17, 0, 1),
			rotM(180, 11, 17, 0, 1),
		},
	})
}

func TestBlackBoxEAN13_3(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "ean13-3",
		format: barscan.FormatEAN13,
		tests: []blackboxTestRotation{
			rot(0, 53, 55),
			rot(180, 55, 55),
		},
	})
}

func TestBlackBoxEAN13_4(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "ean13-4",
		format: barscan.FormatEAN13,
		tests: []blackboxTestRotation{
			rotM(0, 6, 13, 1, 1),
			rotM(180, 7, 13, 1, 1),
		},
	})
}

func TestBlackBoxEAN13_5(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "ean13-5",
		format: barscan.FormatEAN13,
		tests: []blackboxTestRotation{
			rot(0, 0, 0),
			rot(180, 0, 0),
		},
	})
}

func TestBlackBoxEAN8_1(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "ean8-1",
		format: barscan.FormatEAN8,
		tests: []blackboxTestRotation{
			rot(0, 8, 8),
			rot(180, 8, 8),
		},
	})
}

func TestBlackBoxUPCA1(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upca-1",
		format: barscan.FormatUPCA,
		tests: []blackboxTestRotation{
			rotM(0, 14, 18, 0, 1),
			rotM(180, 16, 18, 0, 1),
		},
	})
}

func TestBlackBoxUPCA2(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upca-2",
		format: barscan.FormatUPCA,
		tests: []blackboxTestRotation{
			rotM(0, 28, 36, 0, 2),
			rotM(180, 29, 36, 0, 2),
		},
	})
}

func TestBlackBoxUPCA3(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upca-3",
		format: barscan.FormatUPCA,
		tests: []blackboxTestRotation{
			rotM(0, 7, 9, 0, 2),
			rotM(180, 8, 9, 0, 2),
		},
	})
}

func TestBlackBoxUPCA4(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upca-4",
		format: barscan.FormatUPCA,
		tests: []blackboxTestRotation{
			rotM(0, 9, 11, 0, 1),
			rotM(180, 9, 11, 0, 1),
		},
	})
}

func TestBlackBoxUPCA5(t *testing.T) {
	// TODO: thresholds regressed by 1 each after adding UPC/EAN extension support — investigate
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upca-5",
		format: barscan.FormatUPCA,
		tests: []blackboxTestRotation{
			rotM(0, 19, 23, 0, 0),
			rotM(180, 21, 23, 0, 0),
		},
	})
}

func TestBlackBoxUPCA6(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upca-6",
		format: barscan.FormatUPCA,
		tests: []blackboxTestRotation{
			rot(0, 0, 0),
			rot(180, 0, 0),
		},
	})
}

func TestBlackBoxUPCE1(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upce-1",
		format: barscan.FormatUPCE,
		tests: []blackboxTestRotation{
			rot(0, 3, 3),
			rot(180, 3, 3),
		},
	})
}

func TestBlackBoxUPCE2(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upce-2",
		format: barscan.FormatUPCE,
		tests: []blackboxTestRotation{
			rotM(0, 31, 35, 0, 1),
			rotM(180, 31, 35, 1, 1),
		},
	})
}

func TestBlackBoxUPCE3(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upce-3",
		format: barscan.FormatUPCE,
		tests: []blackboxTestRotation{
			rot(0, 6, 8),
			rot(180, 6, 8),
		},
	})
}

func TestBlackBoxCode39_2(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "code39-2",
		format: barscan.FormatCode39,
		tests: []blackboxTestRotation{
			rot(0, 2, 2),
			rot(180, 2, 2),
		},
	})
}

func TestBlackBoxUPCEANExtension1(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "upcean-extension-1",
		format: barscan.FormatEAN13,
		tests: []blackboxTestRotation{
			rot(0, 2, 2),
		},
		opts: &barscan.DecodeOptions{
			AllowedEANExtensions: []int{2, 5},
		},
	})
}
