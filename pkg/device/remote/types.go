package remote

type EmptyResponse struct {
}

type DisplayRequest struct {
	Width     int
	Height    int
	ChunkSize int
	Data      []byte
}
