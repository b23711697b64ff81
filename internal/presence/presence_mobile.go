//go:build android || ios

package presence

import "errors"

var ErrDisabled = errors.New("presence disabled: no application id")

type Client struct{}

func New(string) *Client { return &Client{} }

func (c *Client) Connect() error            { return ErrDisabled }
func (c *Client) Update(string, bool) error { return nil }
func (c *Client) Clear() error              { return nil }
func (c *Client) Disconnect()               {}
