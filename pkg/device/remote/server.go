package remote

import (
	"context"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"doorplate/pkg/bitmap"
	"doorplate/pkg/proto"
)

// NewHandler serves dev over net/rpc on the default rpc paths of the
// returned handler.
func NewHandler(dev proto.Control, logger *zap.Logger) (http.Handler, error) {
	srv := rpc.NewServer()
	if err := srv.Register(&Service{dev: dev, log: logger.With(zap.String("via", "remote"))}); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(rpc.DefaultRPCPath, srv)
	return mux, nil
}

func Proxy(dev proto.Control, srv *http.Server, lifecycle fx.Lifecycle, logger *zap.Logger) error {
	h, err := NewHandler(dev, logger)
	if err != nil {
		return err
	}
	srv.Handler = h

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					logger.Fatal("listen failed", zap.Error(err))
				}
			}()
			logger.With(zap.String("addr", srv.Addr)).Info("remote listening")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev proto.Control
	log *zap.Logger
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	s.log.With(zap.String("cmd", name)).Debug("command")

	switch name {
	case "startup":
		return s.dev.Startup()
	case "shutdown":
		return s.dev.Shutdown()
	case "clear":
		return s.dev.Clear()
	}

	return errors.Errorf("unknown command %q", name)
}

func (s *Service) Display(req *DisplayRequest, _ *EmptyResponse) error {
	s.log.With(zap.Int("bytes", len(req.Data))).Debug("display")

	return s.dev.Display(&bitmap.Payload{
		Width:     req.Width,
		Height:    req.Height,
		ChunkSize: req.ChunkSize,
		Data:      req.Data,
	})
}
