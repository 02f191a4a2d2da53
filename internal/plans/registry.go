package plans

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"lipi/internal/domain/models"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the billing plans loaded from the embedded YAML file.
// Plans are immutable after load, so reads need no locking.
type Registry struct {
	plans map[string]Plan
}

// NewRegistry loads the embedded plan definitions.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/plans.yaml")
	if err != nil {
		return nil, fmt.Errorf("read plans config: %w", err)
	}

	var file planFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal plans config: %w", err)
	}

	if _, ok := file.Plans["free"]; !ok {
		return nil, fmt.Errorf("plans config missing required %q plan", "free")
	}
	if _, ok := file.Plans["pro"]; !ok {
		return nil, fmt.Errorf("plans config missing required %q plan", "pro")
	}

	r := &Registry{plans: make(map[string]Plan, len(file.Plans))}
	for id, plan := range file.Plans {
		plan.ID = id
		r.plans[id] = plan
	}

	return r, nil
}

// Get returns a plan by ID.
func (r *Registry) Get(id string) (Plan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return Plan{}, fmt.Errorf("unknown plan: %s", id)
	}
	return plan, nil
}

// ForSubscription maps a subscription to its plan. Only an active
// subscription earns the pro plan; every other status (including trialing,
// past_due and a missing subscription) is billed as free.
func (r *Registry) ForSubscription(sub *models.Subscription) Plan {
	if sub.IsActive() {
		return r.plans["pro"]
	}
	return r.plans["free"]
}

// Limits is a convenience for the quota guard.
func (r *Registry) Limits(sub *models.Subscription) PlanLimits {
	return r.ForSubscription(sub).Limits
}
