package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/bmp"
)

var (
	ErrEmptyContent      = errors.New("content cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrFailedToGenerate  = errors.New("failed to generate QR code")
)

// RecoveryLevel is fixed at 25% recovery, QR level Q.
const RecoveryLevel = skipqrcode.High

const (
	defaultModuleSize = 10
	jpegQuality       = 95
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
)

type Options struct {
	// Size is the image width and height in pixels. Values <= 0 size the
	// image from ModuleSize instead.
	Size          int
	ModuleSize    int
	DisableBorder bool
}

type Symbol struct {
	Version int
	Format  Format
	Image   []byte
}

// FormatFromPath picks the image format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	case "bmp":
		return FormatBMP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func newQRCode(content string, opts Options) (*skipqrcode.QRCode, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	qr, err := skipqrcode.New(content, RecoveryLevel)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}

	qr.DisableBorder = opts.DisableBorder
	return qr, nil
}

func pixelSize(opts Options) int {
	if opts.Size > 0 {
		return opts.Size
	}
	moduleSize := opts.ModuleSize
	if moduleSize <= 0 {
		moduleSize = defaultModuleSize
	}
	// Negative sizes are pixels per module
	return -moduleSize
}

// Encode renders content as a QR symbol in the given image format. The
// symbol version grows with the content.
func Encode(content string, format Format, opts Options) (*Symbol, error) {
	qr, err := newQRCode(content, opts)
	if err != nil {
		return nil, err
	}

	size := pixelSize(opts)

	var data []byte
	switch format {
	case FormatPNG, "":
		format = FormatPNG
		data, err = qr.PNG(size)
	case FormatJPEG:
		data, err = encodeImage(qr.Image(size), func(buf *bytes.Buffer, img image.Image) error {
			return jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality})
		})
	case FormatGIF:
		data, err = encodeImage(qr.Image(size), func(buf *bytes.Buffer, img image.Image) error {
			return gif.Encode(buf, img, nil)
		})
	case FormatBMP:
		data, err = encodeImage(qr.Image(size), func(buf *bytes.Buffer, img image.Image) error {
			return bmp.Encode(buf, img)
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}

	return &Symbol{Version: qr.VersionNumber, Format: format, Image: data}, nil
}

func encodeImage(img image.Image, enc func(*bytes.Buffer, image.Image) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes content in the format implied by path and writes it,
// replacing any existing file. Nothing is written if encoding fails.
func WriteFile(path, content string, opts Options) (*Symbol, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	symbol, err := Encode(content, format, opts)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, symbol.Image, 0644); err != nil {
		return nil, err
	}

	return symbol, nil
}

// Terminal renders content as text using half-block characters.
func Terminal(content string, opts Options) (string, error) {
	qr, err := newQRCode(content, opts)
	if err != nil {
		return "", err
	}
	return qr.ToSmallString(false), nil
}
