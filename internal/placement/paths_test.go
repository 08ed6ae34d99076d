package placement

import (
	"context"
	"errors"
	"reflect"
	"testing"

	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
)

func TestResolvePathsArmorSetIsAlwaysCreate(t *testing.T) {
	store := &fakeStore{
		listPathsFn: func(context.Context, int64) ([]AcquisitionPath, error) {
			t.Fatal("armor sets must not query item paths")
			return nil, nil
		},
	}
	svc := newTestService(t, store)

	for _, id := range []int64{1, 7, 4096} {
		paths, err := svc.ResolvePaths(context.Background(), ArmorSet(id))
		if err != nil {
			t.Fatalf("armor set %d: unexpected error %v", id, err)
		}
		if !reflect.DeepEqual(paths, []AcquisitionPath{CreatePath}) {
			t.Fatalf("armor set %d: expected [Create], got %v", id, paths)
		}
	}
}

func TestResolvePathsPreservesItemOrder(t *testing.T) {
	store := &fakeStore{
		listPathsFn: func(_ context.Context, itemID int64) ([]AcquisitionPath, error) {
			if itemID != 42 {
				t.Fatalf("unexpected item %d", itemID)
			}
			return []AcquisitionPath{"Upgrade", "Create"}, nil
		},
	}
	svc := newTestService(t, store)

	paths, err := svc.ResolvePaths(context.Background(), Item(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(paths, []AcquisitionPath{"Upgrade", "Create"}) {
		t.Fatalf("unexpected paths %v", paths)
	}
}

func TestResolvePathsEmptyFallsBackToCreate(t *testing.T) {
	store := &fakeStore{
		listPathsFn: func(context.Context, int64) ([]AcquisitionPath, error) { return nil, nil },
	}
	paths, err := newTestService(t, store).ResolvePaths(context.Background(), Item(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(paths, []AcquisitionPath{CreatePath}) {
		t.Fatalf("expected [Create], got %v", paths)
	}
}

func TestResolvePathsNotFound(t *testing.T) {
	store := &fakeStore{
		listPathsFn: func(context.Context, int64) ([]AcquisitionPath, error) {
			return nil, notFound("item not found")
		},
		getArmorFamilyFn: func(context.Context, int64) (ArmorFamily, error) {
			return ArmorFamily{}, notFound("armor family not found")
		},
	}
	svc := newTestService(t, store)

	cases := []ItemSelection{Item(9), ArmorSet(9), Item(0), ArmorSet(-1)}
	for _, selection := range cases {
		_, err := svc.ResolvePaths(context.Background(), selection)
		if got := ReasonOf(err); got != ReasonNotFound {
			t.Fatalf("%+v: expected %s, got %s", selection, ReasonNotFound, got)
		}
		if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
			t.Fatalf("%+v: expected not found code, got %s", selection, pkgerrors.CodeOf(err))
		}
	}
}

func TestResolvePathsDependencyFailure(t *testing.T) {
	store := &fakeStore{
		listPathsFn: func(context.Context, int64) ([]AcquisitionPath, error) {
			return nil, errors.New("connection reset")
		},
	}
	_, err := newTestService(t, store).ResolvePaths(context.Background(), Item(1))
	if pkgerrors.CodeOf(err) != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestPickPath(t *testing.T) {
	paths := []AcquisitionPath{"Create", "Upgrade"}
	if got := pickPath(paths, "Upgrade"); got != "Upgrade" {
		t.Fatalf("expected Upgrade, got %s", got)
	}
	if got := pickPath(paths, ""); got != "Create" {
		t.Fatalf("expected default Create, got %s", got)
	}
	if got := pickPath(paths, "Trade"); got != "Create" {
		t.Fatalf("unknown tag should fall back to default, got %s", got)
	}
}
