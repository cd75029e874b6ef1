package grpc

import (
	"net"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Server struct {
	srv *grpc.Server
}

func NewGrpc() *Server {
	srv := grpc.NewServer()

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthSrv)

	reflection.Register(srv)

	return &Server{srv}
}

func (v *Server) Listen() {
	listener, err := net.Listen("tcp", viper.GetString("grpc_bind"))
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when listening grpc address...")
	}

	if err := v.srv.Serve(listener); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting grpc server...")
	}
}
