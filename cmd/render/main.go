package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"doorplate/internal/fsutil"
	"doorplate/pkg/device/epd"
	"doorplate/pkg/device/remote"
	"doorplate/pkg/device/virtual"
	"doorplate/pkg/proto"
)

var serial = flag.String("serial", "ttyACM0", "serial name")
var listen = flag.String("listen", ":9123", "listen addr")
var mock = flag.String("mock", "", "serve a virtual panel that records payloads into this dir")
var debug = flag.Bool("debug", false, "debug logging")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*zap.Logger, error) {
				if *debug {
					return zap.NewDevelopment()
				}
				return zap.NewProduction()
			},
			func() (*proto.Serial, *http.Server) {
				return proto.NewSerial(*serial),
					&http.Server{Addr: *listen}
			},
			device,
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}

func device(serial *proto.Serial, logger *zap.Logger) (proto.Control, error) {
	if *mock == "" {
		return epd.New(serial, logger)
	}

	fs, err := fsutil.NewFs(*mock)
	if err != nil {
		return nil, err
	}
	return virtual.Recorder(logger, fs, "last"), nil
}
