package virtual

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"doorplate/internal/fsutil"
	"doorplate/pkg/bitmap"
	"doorplate/pkg/palette"
	"doorplate/pkg/proto"
)

func Mock(logger *zap.Logger) proto.Control {
	return &Mocker{l: logger}
}

// Recorder is a mock that also keeps every displayed payload and its
// preview on fs, as <name>.bin and <name>.png.
func Recorder(logger *zap.Logger, fs afero.Fs, name string) proto.Control {
	return &Mocker{l: logger, fs: fs, name: name}
}

type Mocker struct {
	l    *zap.Logger
	fs   afero.Fs
	name string
}

func (m *Mocker) Startup() error {
	m.l.Info("startup")
	return nil
}

func (m *Mocker) Shutdown() error {
	m.l.Info("shutdown")
	return nil
}

func (m *Mocker) Clear() error {
	m.l.Info("clear")
	return nil
}

func (m *Mocker) Display(p *bitmap.Payload) error {
	m.l.With(
		zap.Int("w", p.Width),
		zap.Int("h", p.Height),
		zap.Int("chunk", p.ChunkSize),
		zap.String("size", bytesize.New(float64(len(p.Data))).String()),
	).Info("display")

	if m.fs == nil {
		return nil
	}

	masks, err := p.Masks()
	if err != nil {
		return fmt.Errorf("decode payload failed: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, palette.Preview(masks)); err != nil {
		return err
	}

	if err := fsutil.WriteFile(m.fs, m.name+".bin", p.Data, 0644); err != nil {
		return err
	}

	return fsutil.WriteFile(m.fs, m.name+".png", buf.Bytes(), 0644)
}
