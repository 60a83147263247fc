package client

import (
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"google.golang.org/grpc"
)

type UserClient struct {
	Client userpb.UserServiceClient
	conn   *grpc.ClientConn
}

func NewUserClient(url string) (*UserClient, error) {
	cc, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &UserClient{
		Client: userpb.NewUserServiceClient(cc),
		conn:   cc,
	}, nil
}

func (c *UserClient) Close() error {
	return c.conn.Close()
}
