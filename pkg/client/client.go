package client

type Client struct {
	opts *Options
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		opts: opts,
	}
}
