package client

import (
	"github.com/chooselife/strongfoundations/services/course-service/pkg/coursepb"

	"google.golang.org/grpc"
)

type CourseClient struct {
	Client coursepb.CourseServiceClient
	conn   *grpc.ClientConn
}

func NewCourseClient(url string) (*CourseClient, error) {
	cc, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &CourseClient{
		Client: coursepb.NewCourseServiceClient(cc),
		conn:   cc,
	}, nil
}

func (c *CourseClient) Close() error {
	return c.conn.Close()
}
