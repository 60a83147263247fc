package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
)

func TestTimeoutInterceptorAddsDeadline(t *testing.T) {
	var got time.Time
	invoker := func(ctx context.Context, _ string, _, _ any, _ *grpc.ClientConn, _ ...grpc.CallOption) error {
		got, _ = ctx.Deadline()
		return nil
	}
	intercept := timeoutInterceptor(time.Second)

	assert.NoError(t, intercept(context.Background(), "/m", nil, nil, nil, invoker))
	assert.WithinDuration(t, time.Now().Add(time.Second), got, 500*time.Millisecond)

	earlier := time.Now().Add(100 * time.Millisecond)
	ctx, cancel := context.WithDeadline(context.Background(), earlier)
	defer cancel()
	assert.NoError(t, intercept(ctx, "/m", nil, nil, nil, invoker))
	assert.Equal(t, earlier, got)
}
