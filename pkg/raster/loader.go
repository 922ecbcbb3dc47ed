// Package raster acquires the composed source image handed to the encoder.
package raster

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fs:  afero.NewOsFs(),
		cli: resty.New().SetDoNotParseResponse(true),
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Loader opens images from data URIs, HTTP(S) URLs and files.
type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	progress io.Writer
}

// Open loads the image a locator points to.
func (l *Loader) Open(ctx context.Context, locator string) (image.Image, error) {
	bs, err := l.fetch(ctx, locator)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	l.log.With(
		zap.String("locator", short(locator)),
		zap.String("format", format),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Debug("opened")

	return img, nil
}

// Resolve tries the locators in order and returns the first image that
// loads, along with its locator.
func (l *Loader) Resolve(ctx context.Context, locators []string) (image.Image, string, error) {
	if len(locators) == 0 {
		return nil, "", errors.New("no image locators")
	}

	var errs []string
	for _, loc := range locators {
		img, err := l.Open(ctx, loc)
		if err == nil {
			return img, loc, nil
		}
		if ctx.Err() != nil {
			return nil, "", ctx.Err()
		}

		l.log.With(zap.String("locator", short(loc)), zap.Error(err)).Debug("skipped")
		errs = append(errs, fmt.Sprintf("%s: %s", short(loc), err))
	}

	return nil, "", errors.Errorf("no image could be loaded (%s)", strings.Join(errs, "; "))
}

func (l *Loader) fetch(ctx context.Context, locator string) ([]byte, error) {
	switch {
	case strings.HasPrefix(locator, "data:"):
		return decodeDataURI(locator)
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		return l.download(ctx, locator)
	}

	bs, err := afero.ReadFile(l.fs, locator)
	if err != nil {
		return nil, fmt.Errorf("read file failed: %w", err)
	}
	return bs, nil
}

func (l *Loader) download(ctx context.Context, u string) ([]byte, error) {
	resp, err := l.cli.R().SetContext(ctx).Get(u)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.IsError() {
		return nil, errors.Errorf("download failed: %s", resp.Status())
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	if l.progress != nil {
		bar := progressbar.NewOptions64(
			resp.RawResponse.ContentLength,
			progressbar.OptionSetWriter(l.progress),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", short(u))),
		)
		dst = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(dst, resp.RawBody()); err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	return buf.Bytes(), nil
}

// decodeDataURI accepts base64 data URIs, e.g. data:image/png;base64,....
func decodeDataURI(uri string) ([]byte, error) {
	i := strings.IndexByte(uri, ',')
	if i < 0 {
		return nil, errors.New("data uri without payload")
	}

	meta, payload := uri[len("data:"):i], uri[i+1:]
	if !strings.HasSuffix(meta, ";base64") {
		bs, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("data uri decode failed: %w", err)
		}
		return []byte(bs), nil
	}

	bs, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("data uri decode failed: %w", err)
	}
	return bs, nil
}

// short keeps data URIs out of logs and error messages.
func short(locator string) string {
	if strings.HasPrefix(locator, "data:") && len(locator) > 32 {
		return locator[:32] + "..."
	}
	return locator
}
