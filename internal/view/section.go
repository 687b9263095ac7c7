package view

import (
	"context"
	"sync"

	"github.com/naka-gawa/devfolio/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Source provides the two data sources of the GitHub section. An error
// moves the corresponding slice to Failure.
type Source interface {
	Profile(ctx context.Context, username string) (domain.Profile, error)
	Repositories(ctx context.Context, username string) ([]domain.Repository, error)
}

// Snapshot is the state of both data sources at one instant.
type Snapshot struct {
	Profile Result[domain.Profile]
	Repos   Result[[]domain.Repository]
}

// GitHubSection owns the state of one mounted GitHub activity view.
// Mount fans out one profile request and one repository request; each
// settles its own slice as soon as it resolves, independently of the other.
// Responses arriving after Unmount are discarded.
type GitHubSection struct {
	source   Source
	username string
	logger   zerolog.Logger
	onChange func(Snapshot)

	mu         sync.Mutex
	generation uint64
	mounted    bool
	snapshot   Snapshot
	done       chan struct{}
}

// SectionOption configures a GitHubSection.
type SectionOption func(*GitHubSection)

// WithOnChange registers fn to be called with a fresh snapshot after every
// applied transition. fn may be called concurrently from fetch goroutines.
func WithOnChange(fn func(Snapshot)) SectionOption {
	return func(s *GitHubSection) {
		s.onChange = fn
	}
}

func NewGitHubSection(source Source, username string, logger zerolog.Logger, opts ...SectionOption) *GitHubSection {
	s := &GitHubSection{
		source:   source,
		username: username,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount resets both slices to Loading and issues each request exactly once.
// Mounting an already mounted section does nothing.
func (s *GitHubSection) Mount(ctx context.Context) {
	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return
	}
	s.mounted = true
	s.generation++
	gen := s.generation
	s.snapshot = Snapshot{
		Profile: Pending[domain.Profile](),
		Repos:   Pending[[]domain.Repository](),
	}
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	// Neither goroutine returns an error, so one failing source never
	// cancels the other.
	var eg errgroup.Group
	eg.Go(func() error {
		profile, err := s.source.Profile(ctx, s.username)
		s.apply(gen, "profile", func(snap *Snapshot) (serr error) {
			if err != nil {
				snap.Profile, serr = snap.Profile.Fail(err)
			} else {
				snap.Profile, serr = snap.Profile.Succeed(profile)
			}
			return serr
		})
		return nil
	})
	eg.Go(func() error {
		repos, err := s.source.Repositories(ctx, s.username)
		s.apply(gen, "repos", func(snap *Snapshot) (serr error) {
			if err != nil {
				snap.Repos, serr = snap.Repos.Fail(err)
			} else {
				snap.Repos, serr = snap.Repos.Succeed(repos)
			}
			return serr
		})
		return nil
	})

	go func() {
		_ = eg.Wait()
		close(done)
	}()
}

func (s *GitHubSection) apply(gen uint64, source string, settle func(*Snapshot) error) {
	s.mu.Lock()
	if !s.mounted || gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug().Str("source", source).Msg("discarding response for unmounted view")
		return
	}
	if err := settle(&s.snapshot); err != nil {
		s.mu.Unlock()
		s.logger.Error().Err(err).Str("source", source).Msg("invalid state transition")
		return
	}
	snap := s.snapshot
	s.mu.Unlock()

	s.logger.Debug().
		Str("source", source).
		Stringer("profile", snap.Profile.Status()).
		Stringer("repos", snap.Repos.Status()).
		Msg("GitHub section updated")
	if s.onChange != nil {
		s.onChange(snap)
	}
}

// Unmount detaches the view. Requests still in flight are not cancelled,
// but their responses are dropped.
func (s *GitHubSection) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = false
	s.generation++
}

// Wait blocks until both requests of the current mount have resolved or
// ctx is done. It returns immediately if the section was never mounted.
func (s *GitHubSection) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the current state of both slices.
func (s *GitHubSection) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}
