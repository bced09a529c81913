package contact

import "context"

// Repository persists contact form submissions.
type Repository interface {
	Create(ctx context.Context, sub *Submission) error
}
