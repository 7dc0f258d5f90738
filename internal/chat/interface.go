package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Send validates the turn, asks the model for a reply and schedules
	// persistence of the turn in the background.
	Send(ctx context.Context, input SendInput) (SendOutput, error)

	// Wait blocks until every scheduled persistence job has finished.
	Wait()

	// Close stops scheduling persistence jobs and waits for the running ones.
	Close()
}
