package rpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const echoService = "test.EchoService"

type echoRequest struct {
	Name  string    `json:"name"`
	Count int       `json:"count"`
	Tags  []string  `json:"tags"`
	At    time.Time `json:"at"`
}

type echoResponse struct {
	Greeting string    `json:"greeting"`
	Count    int       `json:"count"`
	Tags     []string  `json:"tags"`
	At       time.Time `json:"at"`
}

var errMissing = errors.New("missing name")

func dial(t *testing.T, methods ...grpc.MethodDesc) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	Register(srv, echoService, methods...)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close() })
	return cc
}

func echo(_ context.Context, req *echoRequest) (*echoResponse, error) {
	if req.Name == "" {
		return nil, Status(errMissing, "echo failed", Rule{Err: errMissing, Code: codes.InvalidArgument})
	}
	return &echoResponse{Greeting: "hello " + req.Name, Count: req.Count + 1, Tags: req.Tags, At: req.At}, nil
}

func TestCallRoundTrip(t *testing.T) {
	cc := dial(t, Unary(echoService, "Echo", echo))
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	resp, err := Call[echoRequest, echoResponse](context.Background(), cc, echoService, "Echo",
		&echoRequest{Name: "learner", Count: 41, Tags: []string{"a", "b"}, At: at})
	require.NoError(t, err)
	assert.Equal(t, "hello learner", resp.Greeting)
	assert.Equal(t, 42, resp.Count)
	assert.Equal(t, []string{"a", "b"}, resp.Tags)
	assert.True(t, at.Equal(resp.At))
}

func TestCallPropagatesStatus(t *testing.T) {
	cc := dial(t, Unary(echoService, "Echo", echo))

	_, err := Call[echoRequest, echoResponse](context.Background(), cc, echoService, "Echo", &echoRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, errMissing.Error(), status.Convert(err).Message())
}

func TestCallUnknownMethod(t *testing.T) {
	cc := dial(t, Unary(echoService, "Echo", echo))

	_, err := Call[echoRequest, echoResponse](context.Background(), cc, echoService, "Nope", &echoRequest{Name: "x"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestStatusHidesStoreErrors(t *testing.T) {
	err := Status(errors.New("pq: connection refused"), "store unavailable")
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "store unavailable", status.Convert(err).Message())

	assert.NoError(t, Status(nil, "x"))
	assert.Equal(t, codes.Canceled, status.Code(Status(context.Canceled, "x")))

	already := status.Error(codes.NotFound, "gone")
	assert.Same(t, already, Status(already, "x"))
}

func TestEncodeNil(t *testing.T) {
	msg, err := Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, msg.GetFields())

	var out echoResponse
	require.NoError(t, Decode(msg, &out))
	assert.Equal(t, echoResponse{}, out)
}
