package notify

import (
	"errors"
	"net/rpc"
	"time"

	gerrors "github.com/blong14/scratch/internal/errors"
	grpc "github.com/blong14/scratch/internal/io/rpc"
	glog "github.com/blong14/scratch/internal/logging"
)

var ErrNilClient = gerrors.NewGError(errors.New("nil client"))

// SubscriberService is the receiving end of a Publisher.
type SubscriberService struct {
	Sink func(*Event)
}

type NotifyRequest struct {
	Event *Event
}

type NotifyResponse struct {
	Success bool
}

func (s *SubscriberService) OnEvent(req *NotifyRequest, resp *NotifyResponse) error {
	start := time.Now()
	if s.Sink != nil {
		s.Sink(req.Event)
	}
	resp.Success = true
	glog.Track("%T %s in %s", req, req.Event, time.Since(start))
	return nil
}

func PublishEvent(client *rpc.Client, events ...*Event) (*NotifyResponse, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	req := new(NotifyRequest)
	req.Event = events[0]
	resp := new(NotifyResponse)
	err := client.Call("SubscriberService.OnEvent", req, resp)
	return resp, err
}

func RpcHandlers(s *SubscriberService) []grpc.Handler {
	return []grpc.Handler{s}
}
