package trash

import (
	"errors"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		action  Action
		want    State
		wantErr bool
	}{
		{
			name:   "active to trashed",
			from:   Active,
			action: MoveToTrash,
			want:   Trashed,
		},
		{
			name:   "trashed to active",
			from:   Trashed,
			action: Restore,
			want:   Active,
		},
		{
			name:   "trashed to deleted",
			from:   Trashed,
			action: PurgeForever,
			want:   Deleted,
		},
		{
			name:    "cannot trash twice",
			from:    Trashed,
			action:  MoveToTrash,
			wantErr: true,
		},
		{
			name:    "cannot restore an active entity",
			from:    Active,
			action:  Restore,
			wantErr: true,
		},
		{
			name:    "cannot purge an active entity",
			from:    Active,
			action:  PurgeForever,
			wantErr: true,
		},
		{
			name:    "deleted is terminal for restore",
			from:    Deleted,
			action:  Restore,
			wantErr: true,
		},
		{
			name:    "deleted is terminal for purge",
			from:    Deleted,
			action:  PurgeForever,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.from, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Next(%s, %s) expected error, got %s", tt.from, tt.action, got)
				}
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("error should wrap ErrInvalidTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Next(%s, %s) unexpected error: %v", tt.from, tt.action, err)
			}
			if got != tt.want {
				t.Errorf("Next(%s, %s) = %s, want %s", tt.from, tt.action, got, tt.want)
			}
		})
	}
}

func TestCan(t *testing.T) {
	if !Can(Active, MoveToTrash) {
		t.Error("active entities should be trashable")
	}
	if Can(Active, PurgeForever) {
		t.Error("active entities must not be purgeable")
	}
	if !Can(Trashed, PurgeForever) {
		t.Error("trashed entities should be purgeable")
	}
}

func TestStateOf(t *testing.T) {
	if got := StateOf(false); got != Active {
		t.Errorf("StateOf(false) = %s, want %s", got, Active)
	}
	if got := StateOf(true); got != Trashed {
		t.Errorf("StateOf(true) = %s, want %s", got, Trashed)
	}
}
