package transport

import (
	"context"
	"fmt"
)

// Recovery returns middleware that catches panics in the handler and
// converts them to server errors. The server continues to accept new
// requests after a panic is recovered.
func Recovery() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, req *Request, s Sender) (retErr error) {
			defer func() {
				if r := recover(); r != nil {
					retErr = NewServerError(fmt.Sprintf("internal server error: %v", r))
				}
			}()
			return next.ServeStream(ctx, req, s)
		})
	}
}
