package placement

import (
	"context"
	"sync"

	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
)

// State is the position of a Run in the placement state machine.
type State int

const (
	StateIdle State = iota
	StateInputsLoaded
	StateValidating
	StateValidationFailed
	StatePlacing
	StatePlaced
	StatePlacementFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInputsLoaded:
		return "inputs_loaded"
	case StateValidating:
		return "validating"
	case StateValidationFailed:
		return "validation_failed"
	case StatePlacing:
		return "placing"
	case StatePlaced:
		return "placed"
	case StatePlacementFailed:
		return "placement_failed"
	default:
		return "unknown"
	}
}

// Submission is what the user confirms.
type Submission struct {
	Quantity string
	Name     string
	Target   Target
	PathTag  AcquisitionPath
}

// Run is one workflow run for a single selection. It is safe for concurrent use,
// but submits are serialized.
type Run struct {
	svc       *Service
	selection ItemSelection

	mu      sync.Mutex
	state   State
	paths   []AcquisitionPath
	mode    Mode
	outcome Outcome
}

// NewRun starts a run in StateIdle.
func (s *Service) NewRun(selection ItemSelection) *Run {
	return &Run{svc: s, selection: selection}
}

// Load resolves paths and the existing wishlists, moving Idle to InputsLoaded.
// On failure the run stays Idle.
func (r *Run) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateIdle {
		return pkgerrors.New(pkgerrors.CodeConflict, "run already loaded")
	}

	paths, err := r.svc.ResolvePaths(ctx, r.selection)
	if err != nil {
		return err
	}
	wishlists, err := r.svc.ListWishlists(ctx)
	if err != nil {
		return err
	}

	r.paths = paths
	r.mode = SelectionModeFor(wishlists)
	r.state = StateInputsLoaded
	return nil
}

// Submit validates the submission and places it. A validation failure returns
// the run to InputsLoaded. A placement failure may be retried. Placed is terminal.
func (r *Run) Submit(ctx context.Context, submission Submission) (Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case StateInputsLoaded, StatePlacementFailed:
	case StatePlaced:
		return Outcome{}, pkgerrors.New(pkgerrors.CodeConflict, "placement already completed")
	default:
		return Outcome{}, pkgerrors.New(pkgerrors.CodeConflict, "run inputs are not loaded")
	}

	r.state = StateValidating
	input, err := r.svc.Validate(submission.Quantity, r.mode, submission.Name)
	if err != nil {
		// ValidationFailed is transient: the user corrects inputs and resubmits.
		r.state = StateInputsLoaded
		return Outcome{}, err
	}

	if err := checkTarget(r.mode, submission.Target); err != nil {
		r.state = StateInputsLoaded
		return Outcome{}, err
	}

	r.state = StatePlacing
	outcome, err := r.svc.Place(ctx, PlaceParams{
		Selection: r.selection,
		Paths:     r.paths,
		Mode:      r.mode,
		Input:     input,
		Target:    submission.Target,
		PathTag:   submission.PathTag,
	})
	if err != nil {
		r.state = StatePlacementFailed
		return Outcome{}, err
	}

	r.outcome = outcome
	r.state = StatePlaced
	return outcome, nil
}

// checkTarget rejects a Position outside the loaded wishlists, which Place
// treats as a programming error.
func checkTarget(mode Mode, target Target) error {
	if mode.RequiresNewName() || target.WishlistID != 0 {
		return nil
	}
	if target.Position < 0 || target.Position >= len(mode.Existing) {
		return errPositionOutOfRange(target.Position, len(mode.Existing))
	}
	return nil
}

// State reports the current state.
func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Paths returns the resolved acquisition paths. The first is the default.
func (r *Run) Paths() []AcquisitionPath {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]AcquisitionPath(nil), r.paths...)
}

// Mode returns the wishlist selection mode captured by Load.
func (r *Run) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Outcome returns the result once the run is Placed.
func (r *Run) Outcome() (Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome, r.state == StatePlaced
}
