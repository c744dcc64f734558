package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"svw.info/truthpuzzle/internal/domain"
)

// StartSession generates a first puzzle and stores a new session for it.
func (u *Service) StartSession(ctx context.Context) (*domain.Session, error) {
	if u.Sessions == nil {
		return nil, domain.ErrNotConfigured
	}
	now := time.Now().UnixNano()
	s := &domain.Session{ID: uuid.NewString(), CreatedAt: now}
	if err := u.nextPuzzle(ctx, s); err != nil {
		return nil, err
	}
	if err := u.Sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	u.Logger.Info("session started", zap.String("session", s.ID), zap.Int("size", s.Puzzle.Size()))
	return s, nil
}

func (u *Service) Session(ctx context.Context, id string) (*domain.Session, error) {
	if u.Sessions == nil {
		return nil, domain.ErrNotConfigured
	}
	return u.Sessions.Load(ctx, id)
}

func (u *Service) EndSession(ctx context.Context, id string) error {
	if u.Sessions == nil {
		return domain.ErrNotConfigured
	}
	if err := u.Sessions.Delete(ctx, id); err != nil {
		return err
	}
	u.Logger.Info("session ended", zap.String("session", id))
	return nil
}

// Toggle flips the player's box at a 1-based position.
func (u *Service) Toggle(ctx context.Context, id string, position int) (*domain.Session, error) {
	return u.update(ctx, id, func(s *domain.Session) error {
		if position < 1 || position > len(s.Guess) {
			return fmt.Errorf("%w: position %d out of range 1..%d", domain.ErrInvalidGuess, position, len(s.Guess))
		}
		s.Guess[position-1] = !s.Guess[position-1]
		s.State = domain.AwaitingInput
		return nil
	})
}

// Swap trades two same-category values between statement slots. The bool
// result is false when the request did not match and nothing moved.
func (u *Service) Swap(ctx context.Context, id string, posA, slotA, posB, slotB int) (*domain.Session, bool, error) {
	swapped := false
	s, err := u.update(ctx, id, func(s *domain.Session) error {
		swapped = s.Puzzle.SwapValues(posA, slotA, posB, slotB)
		if swapped {
			s.State = domain.AwaitingInput
		}
		return nil
	})
	return s, swapped, err
}

// Submit evaluates the session's guess. A pass advances the level and deals
// a fresh puzzle with a reset guess; a fail keeps both for revision.
func (u *Service) Submit(ctx context.Context, id string) (domain.Evaluation, *domain.Session, error) {
	if u.Evaluator == nil {
		return domain.Evaluation{}, nil, domain.ErrNotConfigured
	}
	var ev domain.Evaluation
	s, err := u.update(ctx, id, func(s *domain.Session) error {
		var err error
		ev, err = u.Evaluator.Evaluate(ctx, s.Puzzle, s.Guess)
		if err != nil {
			return err
		}
		if !ev.Pass {
			s.State = domain.Failed
			u.Logger.Info("submission failed",
				zap.String("session", s.ID),
				zap.Int("level", s.Level),
				zap.Ints("inconsistent", ev.Inconsistent()),
			)
			return nil
		}
		s.Level++
		u.Logger.Info("submission passed", zap.String("session", s.ID), zap.Int("level", s.Level))
		return u.nextPuzzle(ctx, s)
	})
	if err != nil {
		return domain.Evaluation{}, nil, err
	}
	return ev, s, nil
}

// SessionHint asks the hinter about the session's current guess.
func (u *Service) SessionHint(ctx context.Context, id string) (domain.Hint, bool, error) {
	s, err := u.Session(ctx, id)
	if err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hint(ctx, s.Puzzle, s.Guess)
}

func (u *Service) update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	if u.Sessions == nil {
		return nil, domain.ErrNotConfigured
	}
	u.sessMu.Lock()
	defer u.sessMu.Unlock()
	s, err := u.Sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now().UnixNano()
	if err := u.Sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Service) nextPuzzle(ctx context.Context, s *domain.Session) error {
	p, _, err := u.Generate(ctx, u.NextSeed())
	if err != nil {
		return err
	}
	p.ID = uuid.NewString()
	s.Puzzle = p
	s.Guess = domain.NewGuess(p.Size())
	s.State = domain.AwaitingInput
	s.UpdatedAt = time.Now().UnixNano()
	return nil
}
