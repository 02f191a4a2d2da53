package quota

import (
	"errors"
	"testing"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/plans"
	"lipi/internal/state"
)

func intPtr(v int) *int { return &v }

func freeLimits() plans.PlanLimits {
	return plans.PlanLimits{
		MaxFolders:        intPtr(3),
		MaxFilesPerFolder: intPtr(3),
	}
}

func activeSub() *models.Subscription {
	return &models.Subscription{ID: "sub-1", UserID: "u1", Status: models.SubscriptionActive}
}

func snapshotWithFolders(active, trashed int) state.Snapshot {
	snap := state.Snapshot{}
	for i := 0; i < active; i++ {
		snap.Folders = append(snap.Folders, models.Folder{ID: string(rune('a' + i))})
	}
	for i := 0; i < trashed; i++ {
		snap.Folders = append(snap.Folders, models.Folder{ID: string(rune('z' - i)), InTrash: true})
	}
	return snap
}

func TestCanCreateFolder(t *testing.T) {
	tests := []struct {
		name    string
		snap    state.Snapshot
		sub     *models.Subscription
		limits  plans.PlanLimits
		wantErr bool
	}{
		{
			name:   "under the limit",
			snap:   snapshotWithFolders(2, 0),
			limits: freeLimits(),
		},
		{
			name:    "at the limit",
			snap:    snapshotWithFolders(3, 0),
			limits:  freeLimits(),
			wantErr: true,
		},
		{
			name:   "trashed folders do not count",
			snap:   snapshotWithFolders(2, 4),
			limits: freeLimits(),
		},
		{
			name:   "active subscription is never limited",
			snap:   snapshotWithFolders(10, 0),
			sub:    activeSub(),
			limits: freeLimits(),
		},
		{
			name: "trialing subscription stays limited",
			snap: snapshotWithFolders(3, 0),
			sub: &models.Subscription{
				ID:     "sub-2",
				UserID: "u1",
				Status: models.SubscriptionTrialing,
			},
			limits:  freeLimits(),
			wantErr: true,
		},
		{
			name:   "nil threshold means unlimited",
			snap:   snapshotWithFolders(50, 0),
			limits: plans.PlanLimits{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCreateFolder(tt.snap, tt.sub, tt.limits)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected quota rejection")
				}
				if !errors.Is(err, domain.ErrQuotaExceeded) {
					t.Errorf("error should match ErrQuotaExceeded, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected rejection: %v", err)
			}
		})
	}
}

func TestCanCreateFileCountsPerFolder(t *testing.T) {
	snap := state.Snapshot{
		Files: []models.File{
			{ID: "d1", FolderID: "f1"},
			{ID: "d2", FolderID: "f1"},
			{ID: "d3", FolderID: "f1"},
			{ID: "d4", FolderID: "f1", InTrash: true},
			{ID: "d5", FolderID: "f2"},
		},
	}

	if err := CanCreateFile(snap, nil, freeLimits(), "f1"); err == nil {
		t.Error("folder f1 is full, expected rejection")
	}
	if err := CanCreateFile(snap, nil, freeLimits(), "f2"); err != nil {
		t.Errorf("folder f2 has room, got rejection: %v", err)
	}
	if err := CanCreateFile(snap, activeSub(), freeLimits(), "f1"); err != nil {
		t.Errorf("active subscription should bypass the limit, got %v", err)
	}
}

func TestQuotaErrorMessage(t *testing.T) {
	err := CanCreateFolder(snapshotWithFolders(3, 0), nil, freeLimits())
	if err == nil {
		t.Fatal("expected rejection")
	}

	var qerr *domain.QuotaExceededError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected QuotaExceededError, got %T", err)
	}
	if qerr.Kind != "folder" || qerr.Limit != 3 {
		t.Errorf("QuotaExceededError = %+v, want folder/3", qerr)
	}
}
