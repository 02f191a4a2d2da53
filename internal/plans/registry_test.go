package plans

import (
	"testing"

	"lipi/internal/domain/models"
)

func TestNewRegistryLoadsEmbeddedPlans(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	free, err := r.Get("free")
	if err != nil {
		t.Fatalf("Get(free) error: %v", err)
	}
	if free.Limits.MaxFolders == nil || *free.Limits.MaxFolders != 3 {
		t.Errorf("free.MaxFolders = %v, want 3", free.Limits.MaxFolders)
	}
	if free.Limits.MaxFilesPerFolder == nil || *free.Limits.MaxFilesPerFolder != 3 {
		t.Errorf("free.MaxFilesPerFolder = %v, want 3", free.Limits.MaxFilesPerFolder)
	}

	pro, err := r.Get("pro")
	if err != nil {
		t.Fatalf("Get(pro) error: %v", err)
	}
	if !pro.Limits.Unlimited() {
		t.Errorf("pro plan should be unlimited, got %+v", pro.Limits)
	}

	if _, err := r.Get("enterprise"); err == nil {
		t.Error("Get(enterprise) should fail for an unknown plan")
	}
}

func TestForSubscription(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	tests := []struct {
		name string
		sub  *models.Subscription
		want string
	}{
		{
			name: "nil subscription is free",
			sub:  nil,
			want: "free",
		},
		{
			name: "active subscription is pro",
			sub:  &models.Subscription{Status: models.SubscriptionActive},
			want: "pro",
		},
		{
			name: "trialing is billed as free",
			sub:  &models.Subscription{Status: models.SubscriptionTrialing},
			want: "free",
		},
		{
			name: "past_due is billed as free",
			sub:  &models.Subscription{Status: models.SubscriptionPastDue},
			want: "free",
		},
		{
			name: "canceled is billed as free",
			sub:  &models.Subscription{Status: models.SubscriptionCanceled},
			want: "free",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ForSubscription(tt.sub); got.ID != tt.want {
				t.Errorf("ForSubscription() = %s, want %s", got.ID, tt.want)
			}
		})
	}
}
