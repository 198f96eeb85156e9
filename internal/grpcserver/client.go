package grpcserver

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	schedulingv1 "github.com/Leganyst/scheduling-core/internal/api/schedulingv1"
)

// Dial открывает соединение к сервису записи без TLS (внутренняя сеть, тесты).
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, schedulingv1.SchedulingServiceClient, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithChainUnaryInterceptor(UnaryClientRequestID()),
	}
	conn, err := grpc.NewClient(addr, append(base, opts...)...)
	if err != nil {
		return nil, nil, err
	}
	return conn, schedulingv1.NewSchedulingServiceClient(conn), nil
}
