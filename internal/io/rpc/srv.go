package rpc

import (
	"context"
	"log"
	"net/http"
	"net/rpc"
	"time"
)

type Handler any

func Server(port string) *http.Server {
	return &http.Server{Addr: port}
}

func Start(srv *http.Server, services []Handler) {
	for _, service := range services {
		if err := rpc.Register(service); err != nil {
			log.Fatal(err)
		}
	}
	rpc.HandleHTTP()
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Println(err)
	}
}

func Stop(ctx context.Context, srvs ...*http.Server) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	for _, srv := range srvs {
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("rpc server shutdown: %v", err)
		}
	}
}

func Client(addr string) (*rpc.Client, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}
	return client, nil
}
