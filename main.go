package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"

	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"

	genv "github.com/blong14/scratch/internal/environment"
	gerrors "github.com/blong14/scratch/internal/errors"
	grpc "github.com/blong14/scratch/internal/io/rpc"
	glog "github.com/blong14/scratch/internal/logging"
	gnotify "github.com/blong14/scratch/internal/notify"
)

const (
	service     = "scratchd"
	environment = "production"
	id          = 1
)

func tracerProvider(url string) (*tracesdk.TracerProvider, error) {
	// Create the Jaeger exporter
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(url)))
	if err != nil {
		return nil, err
	}
	tp := tracesdk.NewTracerProvider(
		// Always be sure to batch in production.
		tracesdk.WithBatcher(exp),
		// Record information about this application in a Resource.
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(service),
			attribute.String("environment", environment),
			attribute.Int64("ID", id),
		)),
	)
	return tp, nil
}

func main() {
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	tp, err := tracerProvider(genv.TraceEndpoint())
	if err != nil {
		log.Fatal(err)
	}
	otel.SetTracerProvider(tp)

	ctx, cancel := context.WithCancel(context.Background())

	subscriber := &gnotify.SubscriberService{
		Sink: func(event *gnotify.Event) {
			glog.Track("%s", event)
		},
	}
	rpcSRV := grpc.Server(genv.RPCAddr())
	go grpc.Start(rpcSRV, gnotify.RpcHandlers(subscriber))

	s := <-sigint
	log.Printf("received %s signal\n", s)
	grpc.Stop(ctx, rpcSRV)
	errs := gerrors.Append(tp.ForceFlush(ctx), tp.Shutdown(ctx))
	if errs.ErrorOrNil() != nil {
		log.Println(errs)
	}
	cancel()
	time.Sleep(500 * time.Millisecond)
}
