package epd

import (
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"doorplate/pkg/bitmap"
	"doorplate/pkg/proto"
)

const (
	Clear    = 102
	Shutdown = 108
	Startup  = 109
	Display  = 197
)

// Panel geometry of the 7.5" doorplate.
const (
	Width  = 800
	Height = 480
)

// maxArg is the largest value a 10-bit command argument can carry.
const maxArg = 1<<10 - 1

func New(serial *proto.Serial, logger *zap.Logger) (proto.Control, error) {
	dev := newEPD(serial, logger)
	return dev, serial.Open(&proto.Options{
		DTR:         true,
		RTS:         true,
		BaudRate:    115200,
		ReadTimeout: time.Millisecond,
	})
}

func newEPD(port io.Writer, logger *zap.Logger) *EPD {
	return &EPD{
		port:   port,
		logger: logger.With(zap.String("via", "epd")),
		width:  Width,
		height: Height,
	}
}

// EPD is a three-color panel controller attached to a serial port.
type EPD struct {
	sync.Mutex
	port   io.Writer
	logger *zap.Logger
	width  int
	height int
}

func (e *EPD) Startup() error {
	return e.sendCMD(Startup)
}

func (e *EPD) Shutdown() error {
	return e.sendCMD(Shutdown)
}

func (e *EPD) Clear() error {
	return e.sendCMD(Clear)
}

func (e *EPD) Display(p *bitmap.Payload) error {
	if p.Width > e.width {
		return errors.New("width overflow")
	} else if p.Height > e.height {
		return errors.New("height overflow")
	}

	if p.ChunkSize <= 0 {
		return errors.Errorf("invalid chunk size %d", p.ChunkSize)
	}

	if want := 2 * p.PlaneSize(); len(p.Data) != want {
		return errors.Errorf("payload is %d bytes, %dx%d needs %d", len(p.Data), p.Width, p.Height, want)
	}

	e.Lock()
	defer e.Unlock()

	if err := e.sendCMD(Display, p.Width, p.Height, p.ChunkSize); err != nil {
		return err
	}

	return e.sendChunks(p.Data, p.ChunkSize)
}
