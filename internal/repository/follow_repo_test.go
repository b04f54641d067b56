package repository

import (
	"errors"
	"testing"
)

func TestFollowSelf(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	if err := repo.Follow(alice.ID, alice.ID); !errors.Is(err, ErrSelfFollow) {
		t.Errorf("self follow error = %v, want ErrSelfFollow", err)
	}

	// Still rejected with prior state present.
	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := repo.Follow(alice.ID, alice.ID); !errors.Is(err, ErrSelfFollow) {
		t.Errorf("self follow after other follows = %v, want ErrSelfFollow", err)
	}
}

func TestFollowDuplicateAndUnknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := repo.Follow(alice.ID, bob.ID); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate follow error = %v, want ErrAlreadyExists", err)
	}
	if err := repo.Follow(alice.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("follow unknown author error = %v, want ErrNotFound", err)
	}

	// The reverse edge is a separate relationship.
	if err := repo.Follow(bob.ID, alice.ID); err != nil {
		t.Errorf("reverse follow error = %v, want nil", err)
	}
}

func TestUnfollow(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	if err := repo.Unfollow(alice.ID, bob.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("unfollow absent edge error = %v, want ErrNotFound", err)
	}

	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := repo.Unfollow(alice.ID, bob.ID); err != nil {
		t.Errorf("unfollow error = %v, want nil", err)
	}

	following, err := repo.IsFollowing(alice.ID, bob.ID)
	if err != nil || following {
		t.Errorf("IsFollowing after unfollow = (%v, %v), want (false, nil)", following, err)
	}
}

func TestFollowedAuthors(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow bob: %v", err)
	}
	if err := repo.Follow(alice.ID, carol.ID); err != nil {
		t.Fatalf("follow carol: %v", err)
	}
	if err := repo.Follow(bob.ID, carol.ID); err != nil {
		t.Fatalf("bob follows carol: %v", err)
	}

	authors, err := repo.FollowedAuthors(alice.ID)
	if err != nil {
		t.Fatalf("followed authors: %v", err)
	}
	if len(authors) != 2 {
		t.Fatalf("expected 2 followed authors, got %d", len(authors))
	}
	seen := map[uint]bool{}
	for _, author := range authors {
		seen[author.ID] = true
	}
	if !seen[bob.ID] || !seen[carol.ID] {
		t.Errorf("followed authors = %v, want bob and carol", seen)
	}

	anonymous, err := repo.IsFollowing(0, bob.ID)
	if err != nil || anonymous {
		t.Errorf("IsFollowing for anonymous = (%v, %v), want (false, nil)", anonymous, err)
	}
}
