package remote

import (
	"net/rpc"

	"doorplate/pkg/bitmap"
	"doorplate/pkg/proto"
)

func New(addr string) (proto.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Startup() error {
	return c.rpc.Call("Service.Command", "startup", nil)
}

func (c *Client) Shutdown() error {
	return c.rpc.Call("Service.Command", "shutdown", nil)
}

func (c *Client) Clear() error {
	return c.rpc.Call("Service.Command", "clear", nil)
}

func (c *Client) Display(p *bitmap.Payload) error {
	return c.rpc.Call("Service.Display", &DisplayRequest{
		Width:     p.Width,
		Height:    p.Height,
		ChunkSize: p.ChunkSize,
		Data:      p.Data,
	}, nil)
}

func (c *Client) Close() error {
	return c.rpc.Close()
}
