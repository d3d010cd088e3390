package response

import "context"

// BackgroundTask is a cleanup hook invoked exactly once after the full
// body and lifecycle hooks have completed, regardless of how long the
// task itself takes. Typical uses: deleting a temporary file after it has
// been downloaded, or releasing a lease on the content.
//
// Anything the task needs beyond a context must be bound at construction
// time, usually with a closure.
type BackgroundTask func(ctx context.Context) error
