package http1

import (
	"github.com/indigo-web/docserve/internal/server/tcp"
	"github.com/indigo-web/docserve/internal/transport"
	"github.com/indigo-web/utils/buffer"
)

var _ transport.Transport = new(Transport)

type Transport struct {
	*Framer
	*Serializer
}

func New(client tcp.Client, head *buffer.Buffer, maxBodySize int, respBuff []byte) *Transport {
	return &Transport{
		Framer:     NewFramer(client, head, maxBodySize),
		Serializer: NewSerializer(respBuff),
	}
}
